package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Recibos-api/docs"
	"github.com/jhoicas/Recibos-api/internal/application/auth"
	"github.com/jhoicas/Recibos-api/internal/application/billing"
	"github.com/jhoicas/Recibos-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Recibos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Recibos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Recibos-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Recibos-api/internal/interfaces/http"
	"github.com/jhoicas/Recibos-api/pkg/config"
	"github.com/jhoicas/Recibos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	challengeRepo := postgres.NewChallengeRepository(pool)

	fileStore, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de uploads")
	}

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	businessUC := usecase.NewBusinessUseCase(businessRepo)
	uploadUC := usecase.NewUploadUseCase(fileStore, businessRepo, cfg.Upload.MaxSizeBytes(), cfg.Upload.PublicPath)

	receiptUC := billing.NewReceiptUseCase(receiptRepo, businessRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, businessRepo)
	shareUC := billing.NewShareUseCase(receiptRepo, invoiceRepo, businessRepo)
	historyUC := billing.NewHistoryUseCase(receiptRepo, invoiceRepo)
	challengeUC := billing.NewChallengeUseCase(challengeRepo, receiptRepo, invoiceRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(receiptRepo, invoiceRepo, businessRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Upload.MaxSizeBytes()) + 1024*1024, // logo + margen para el resto del form
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Recibos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BusinessUC:  businessUC,
		UploadUC:    uploadUC,
		ReceiptUC:   receiptUC,
		InvoiceUC:   invoiceUC,
		ShareUC:     shareUC,
		PDFUC:       pdfUC,
		HistoryUC:   historyUC,
		ChallengeUC: challengeUC,
		JWTSecret:   cfg.JWT.Secret,
		UploadsDir:  fileStore.Root(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
