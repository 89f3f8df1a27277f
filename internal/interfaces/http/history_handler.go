package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recibos-api/internal/application/billing"
	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
)

// HistoryHandler maneja el historial combinado y las disputas.
type HistoryHandler struct {
	history    *billing.HistoryUseCase
	challenges *billing.ChallengeUseCase
}

// NewHistoryHandler construye el handler de historial.
func NewHistoryHandler(history *billing.HistoryUseCase, challenges *billing.ChallengeUseCase) *HistoryHandler {
	return &HistoryHandler{history: history, challenges: challenges}
}

// Get godoc
// @Summary      Historial de recibos y facturas del usuario
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.HistoryResponse
// @Router       /api/history/ [get]
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.history.Get(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateChallenge godoc
// @Summary      Presentar una disputa sobre un documento (público)
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChallengeRequest  true  "exactamente uno de receipt_id/invoice_id"
// @Success      201   {object}  dto.ChallengeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/history/challenge [post]
func (h *HistoryHandler) CreateChallenge(c *fiber.Ctx) error {
	var in dto.CreateChallengeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.challenges.Create(in)
	if err != nil {
		return challengeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListChallenges godoc
// @Summary      Disputas sobre documentos del usuario
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}  dto.ChallengeResponse
// @Router       /api/history/challenges [get]
func (h *HistoryHandler) ListChallenges(c *fiber.Ctx) error {
	out, err := h.challenges.ListForUser(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ResolveChallenge godoc
// @Summary      Resolver o rechazar una disputa
// @Tags         history
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id de la disputa"
// @Param        body  body  dto.ResolveChallengeRequest  true  "status y notas de resolución"
// @Success      200   {object}  dto.ChallengeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/history/challenges/{id} [patch]
func (h *HistoryHandler) ResolveChallenge(c *fiber.Ctx) error {
	var in dto.ResolveChallengeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.challenges.Resolve(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return challengeError(c, err)
	}
	return c.JSON(out)
}

func challengeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "disputa o documento no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
