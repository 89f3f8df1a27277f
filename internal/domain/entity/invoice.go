package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recibos-api/internal/domain/document"
)

// Estados de una factura.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// ValidInvoiceStatus indica si s es uno de los estados conocidos.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Invoice representa una factura persistida con totales ya calculados.
type Invoice struct {
	ID            string
	InvoiceNumber string // INV-XXXXXXXX, asignado por el servidor al persistir
	UserID        string
	BusinessID    string

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	CustomerTaxID   string

	IssueDate    time.Time
	DueDate      *time.Time // nil = sin vencimiento explícito
	Subtotal     decimal.Decimal
	TaxRate      decimal.Decimal
	TaxAmount    decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
	Status       string // ver constantes InvoiceStatus*
	PaymentTerms string // ej. "Net 30"
	Notes        string

	Items []document.LineItem

	CreatedAt time.Time
	UpdatedAt time.Time
}
