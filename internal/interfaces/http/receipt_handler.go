package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recibos-api/internal/application/billing"
	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
)

// ReceiptHandler maneja creación, consulta, share y PDF de recibos.
type ReceiptHandler struct {
	uc    *billing.ReceiptUseCase
	share *billing.ShareUseCase
	pdf   *billing.PDFUseCase
}

// NewReceiptHandler construye el handler de recibos.
func NewReceiptHandler(uc *billing.ReceiptUseCase, share *billing.ShareUseCase, pdf *billing.PDFUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc, share: share, pdf: pdf}
}

// Create godoc
// @Summary      Crear recibo
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateReceiptRequest  true  "datos del recibo; los totales se recalculan en el servidor"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/receipts/ [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return documentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar recibos del usuario
// @Tags         receipts
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}  dto.ReceiptResponse
// @Router       /api/receipts/ [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener recibo por ID
// @Tags         receipts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del recibo"
// @Success      200   {object}  dto.ReceiptResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return documentError(c, err)
	}
	return c.JSON(out)
}

// Share godoc
// @Summary      Texto compartible y enlace de WhatsApp del recibo
// @Tags         receipts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del recibo"
// @Success      200   {object}  dto.ShareResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/share [get]
func (h *ReceiptHandler) Share(c *fiber.Ctx) error {
	out, err := h.share.ShareReceipt(GetUserID(c), c.Params("id"))
	if err != nil {
		return documentError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar PDF del recibo
// @Tags         receipts
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "id del recibo"
// @Success      200
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/pdf [get]
func (h *ReceiptHandler) PDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdf.ReceiptPDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return documentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// documentError mapea errores de dominio de recibos/facturas a HTTP.
func documentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
	case errors.Is(err, domain.ErrBusinessNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BUSINESS_REQUIRED", Message: "configura el perfil de negocio primero"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
