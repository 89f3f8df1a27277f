package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recibos-api/internal/application/billing"
	"github.com/jhoicas/Recibos-api/internal/application/dto"
)

// InvoiceHandler maneja creación, consulta, actualización, share y PDF de facturas.
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	share *billing.ShareUseCase
	pdf   *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler de facturas.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, share *billing.ShareUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, share: share, pdf: pdf}
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInvoiceRequest  true  "datos de la factura; los totales se recalculan en el servidor"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/ [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
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
// @Summary      Listar facturas del usuario
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}  dto.InvoiceResponse
// @Router       /api/invoices/ [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura por ID
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la factura"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return documentError(c, err)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Actualizar estado y/o notas de una factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id de la factura"
// @Param        body  body  dto.PatchInvoiceRequest  true  "status y/o notes"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [patch]
func (h *InvoiceHandler) Patch(c *fiber.Ctx) error {
	var in dto.PatchInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Patch(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return documentError(c, err)
	}
	return c.JSON(out)
}

// Share godoc
// @Summary      Texto compartible y enlace de WhatsApp de la factura
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la factura"
// @Success      200   {object}  dto.ShareResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/share [get]
func (h *InvoiceHandler) Share(c *fiber.Ctx) error {
	out, err := h.share.ShareInvoice(GetUserID(c), c.Params("id"))
	if err != nil {
		return documentError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar PDF de la factura
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la factura"
// @Success      200
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdf.InvoicePDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return documentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
