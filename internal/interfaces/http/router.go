package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recibos-api/internal/application/auth"
	"github.com/jhoicas/Recibos-api/internal/application/billing"
	"github.com/jhoicas/Recibos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	BusinessUC  *usecase.BusinessUseCase
	UploadUC    *usecase.UploadUseCase
	ReceiptUC   *billing.ReceiptUseCase
	InvoiceUC   *billing.InvoiceUseCase
	ShareUC     *billing.ShareUseCase
	PDFUC       *billing.PDFUseCase
	HistoryUC   *billing.HistoryUseCase
	ChallengeUC *billing.ChallengeUseCase
	JWTSecret   string
	UploadsDir  string // raíz de archivos subidos, servida bajo /api/uploads
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: registro y login públicos, /me protegido
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Archivos subidos (logos) servidos como estáticos
	if deps.UploadsDir != "" {
		api.Static("/uploads", deps.UploadsDir)
	}

	// Disputas: la presentación es pública (el tercero no tiene cuenta)
	historyHandler := NewHistoryHandler(deps.HistoryUC, deps.ChallengeUC)
	api.Post("/history/challenge", historyHandler.CreateChallenge)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Business (protegido)
	business := protected.Group("/business")
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	business.Get("/", businessHandler.Get)
	business.Post("/", businessHandler.Upsert)
	business.Patch("/", businessHandler.Patch)

	// Upload (protegido)
	uploadHandler := NewUploadHandler(deps.UploadUC)
	protected.Post("/upload/logo", uploadHandler.Logo)

	// Receipts (protegido)
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC, deps.ShareUC, deps.PDFUC)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Get("/:id/share", receiptHandler.Share)
	receipts.Get("/:id/pdf", receiptHandler.PDF)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ShareUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id", invoiceHandler.Patch)
	invoices.Get("/:id/share", invoiceHandler.Share)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// History (protegido)
	history := protected.Group("/history")
	history.Get("/", historyHandler.Get)
	history.Get("/challenges", historyHandler.ListChallenges)
	history.Patch("/challenges/:id", historyHandler.ResolveChallenge)
}
