package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/document"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

// Plazo por defecto cuando la factura no trae fecha de vencimiento.
const defaultDueDays = 30

// InvoiceUseCase crea, consulta y actualiza facturas del usuario autenticado.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	businessRepo repository.BusinessRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, businessRepo repository.BusinessRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, businessRepo: businessRepo}
}

// Create valida y persiste una factura. Además de lo que exige un recibo,
// la factura requiere nombre de cliente no vacío. Sin due_date se asume
// emisión + 30 días; sin status se asume pending.
func (uc *InvoiceUseCase) Create(userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	business, err := uc.businessRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrBusinessNotFound
	}

	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, domain.ErrInvalidInput
	}
	items := itemsFromRequest(in.Items)
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	issueDate, err := parseDate(in.IssueDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if issueDate == nil {
		issueDate = &now
	}
	dueDate, err := parseDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate == nil {
		d := issueDate.AddDate(0, 0, defaultDueDays)
		dueDate = &d
	}

	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPending
	}
	if !entity.ValidInvoiceStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	totals := document.ComputeTotals(items, in.Discount, in.TaxRate)

	invoice := &entity.Invoice{
		ID:              uuid.New().String(),
		InvoiceNumber:   document.NewNumber(document.PrefixInvoice),
		UserID:          userID,
		BusinessID:      business.ID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		CustomerTaxID:   in.CustomerTaxID,
		IssueDate:       *issueDate,
		DueDate:         dueDate,
		Subtotal:        totals.Subtotal,
		TaxRate:         totals.TaxRate,
		TaxAmount:       totals.TaxAmount,
		Discount:        totals.Discount,
		Total:           totals.Total,
		Status:          status,
		PaymentTerms:    in.PaymentTerms,
		Notes:           in.Notes,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// List devuelve las facturas del usuario, más recientes primero.
func (uc *InvoiceUseCase) List(userID string) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, *toInvoiceResponse(i))
	}
	return out, nil
}

// GetByID devuelve una factura del usuario.
func (uc *InvoiceUseCase) GetByID(userID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Patch actualiza estado y/o notas de una factura existente.
func (uc *InvoiceUseCase) Patch(userID, id string, in dto.PatchInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		if !entity.ValidInvoiceStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		invoice.Status = *in.Status
	}
	if in.Notes != nil {
		invoice.Notes = *in.Notes
	}
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

func (uc *InvoiceUseCase) getOwned(userID, id string) (*entity.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}
