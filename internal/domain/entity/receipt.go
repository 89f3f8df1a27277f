package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recibos-api/internal/domain/document"
)

// Receipt representa un recibo persistido con totales ya calculados.
// Los ítems se guardan embebidos (jsonb) porque solo se leen junto con la cabecera.
type Receipt struct {
	ID            string
	ReceiptNumber string // RCP-XXXXXXXX, asignado por el servidor al persistir
	UserID        string
	BusinessID    string

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string

	Date          time.Time
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Notes         string

	Items []document.LineItem

	CreatedAt time.Time
	UpdatedAt time.Time
}
