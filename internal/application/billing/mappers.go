package billing

import (
	"fmt"
	"time"

	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/document"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

// parseDate acepta RFC3339 o fecha simple YYYY-MM-DD (lo que manda el
// date picker del cliente). Cadena vacía devuelve (nil, nil).
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, s)
	}
	return &t, nil
}

// itemsFromRequest convierte las líneas del cable a dominio, descartando las
// que tienen nombre en blanco y recalculando cada total.
func itemsFromRequest(in []dto.ItemRequest) []document.LineItem {
	items := make([]document.LineItem, 0, len(in))
	for _, it := range in {
		items = append(items, document.LineItem{
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return document.ValidItems(items)
}

func itemsToResponse(items []document.LineItem) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ItemResponse{
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return out
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	if r == nil {
		return nil
	}
	return &dto.ReceiptResponse{
		ID:              r.ID,
		ReceiptNumber:   r.ReceiptNumber,
		UserID:          r.UserID,
		BusinessID:      r.BusinessID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		Date:            r.Date,
		Subtotal:        r.Subtotal,
		TaxRate:         r.TaxRate,
		TaxAmount:       r.TaxAmount,
		Discount:        r.Discount,
		Total:           r.Total,
		PaymentMethod:   r.PaymentMethod,
		Notes:           r.Notes,
		Items:           itemsToResponse(r.Items),
		CreatedAt:       r.CreatedAt,
	}
}

func toInvoiceResponse(i *entity.Invoice) *dto.InvoiceResponse {
	if i == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:              i.ID,
		InvoiceNumber:   i.InvoiceNumber,
		UserID:          i.UserID,
		BusinessID:      i.BusinessID,
		CustomerName:    i.CustomerName,
		CustomerEmail:   i.CustomerEmail,
		CustomerPhone:   i.CustomerPhone,
		CustomerAddress: i.CustomerAddress,
		CustomerTaxID:   i.CustomerTaxID,
		IssueDate:       i.IssueDate,
		DueDate:         i.DueDate,
		Subtotal:        i.Subtotal,
		TaxRate:         i.TaxRate,
		TaxAmount:       i.TaxAmount,
		Discount:        i.Discount,
		Total:           i.Total,
		Status:          i.Status,
		PaymentTerms:    i.PaymentTerms,
		Notes:           i.Notes,
		Items:           itemsToResponse(i.Items),
		CreatedAt:       i.CreatedAt,
	}
}

// receiptShareDoc arma la vista plana que consume el serializador de texto.
func receiptShareDoc(r *entity.Receipt, b *entity.Business) document.Document {
	return document.Document{
		Type:            document.TypeReceipt,
		Number:          r.ReceiptNumber,
		BusinessName:    b.Name,
		BusinessAddress: b.Address,
		BusinessPhone:   b.Phone,
		CustomerName:    r.CustomerName,
		Date:            r.Date,
		PaymentMethod:   r.PaymentMethod,
		Notes:           r.Notes,
		Items:           r.Items,
		Totals: document.Totals{
			Subtotal:  r.Subtotal,
			Discount:  r.Discount,
			TaxRate:   r.TaxRate,
			TaxAmount: r.TaxAmount,
			Total:     r.Total,
		},
	}
}

func invoiceShareDoc(i *entity.Invoice, b *entity.Business) document.Document {
	return document.Document{
		Type:            document.TypeInvoice,
		Number:          i.InvoiceNumber,
		BusinessName:    b.Name,
		BusinessAddress: b.Address,
		BusinessPhone:   b.Phone,
		CustomerName:    i.CustomerName,
		Date:            i.IssueDate,
		DueDate:         i.DueDate,
		PaymentTerms:    i.PaymentTerms,
		Status:          i.Status,
		Notes:           i.Notes,
		Items:           i.Items,
		Totals: document.Totals{
			Subtotal:  i.Subtotal,
			Discount:  i.Discount,
			TaxRate:   i.TaxRate,
			TaxAmount: i.TaxAmount,
			Total:     i.Total,
		},
	}
}
