package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest línea de documento tal como viaja por el cable.
// Total viene del cliente pero el servidor lo recalcula siempre.
type ItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// CreateReceiptRequest body para POST /api/receipts/.
// Los totales (subtotal, tax_amount, total) se aceptan por compatibilidad con
// el cliente pero los valores persistidos son los que recalcula el servidor.
type CreateReceiptRequest struct {
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	Date            string          `json:"date,omitempty"` // RFC3339 o YYYY-MM-DD; vacío = ahora
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Items           []ItemRequest   `json:"items"`
}

// CreateInvoiceRequest body para POST /api/invoices/.
type CreateInvoiceRequest struct {
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	CustomerTaxID   string          `json:"customer_tax_id,omitempty"`
	IssueDate       string          `json:"issue_date,omitempty"` // vacío = ahora
	DueDate         string          `json:"due_date,omitempty"`   // vacío = emisión + 30 días
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status,omitempty"`
	PaymentTerms    string          `json:"payment_terms,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Items           []ItemRequest   `json:"items"`
}

// PatchInvoiceRequest body para PATCH /api/invoices/:id (estado y notas).
type PatchInvoiceRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// ItemResponse línea en respuestas.
type ItemResponse struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// ReceiptResponse recibo en respuestas.
type ReceiptResponse struct {
	ID              string          `json:"id"`
	ReceiptNumber   string          `json:"receipt_number"`
	UserID          string          `json:"user_id"`
	BusinessID      string          `json:"business_id"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	Date            time.Time       `json:"date"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Items           []ItemResponse  `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID              string          `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	UserID          string          `json:"user_id"`
	BusinessID      string          `json:"business_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	CustomerTaxID   string          `json:"customer_tax_id,omitempty"`
	IssueDate       time.Time       `json:"issue_date"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	PaymentTerms    string          `json:"payment_terms,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Items           []ItemResponse  `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ShareResponse texto compartible y enlace wa.me de un documento.
type ShareResponse struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// HistoryResponse respuesta de GET /api/history/.
type HistoryResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Invoices []InvoiceResponse `json:"invoices"`
}
