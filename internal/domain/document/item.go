// Package document contiene la lógica pura de documentos comerciales:
// ítems de línea, cálculo de totales, normalización de teléfono y la
// serialización de texto compartible (WhatsApp). Sin efectos secundarios
// y sin dependencias de infraestructura.
package document

import "github.com/shopspring/decimal"

// Tipos de documento.
const (
	TypeReceipt = "receipt"
	TypeInvoice = "invoice"
)

// LineItem es una línea facturable. Total es derivado: siempre
// Quantity × UnitPrice, nunca editable de forma independiente.
type LineItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Recalc recalcula Total a partir de Quantity y UnitPrice.
// Debe invocarse tras cualquier mutación de esos campos y antes de
// agregar la línea a un cálculo de totales.
func (it *LineItem) Recalc() {
	it.Total = it.Quantity.Mul(it.UnitPrice)
}

// Valid indica si la línea cuenta para cálculo y despliegue:
// solo las líneas con nombre no vacío (tras recortar espacios) son válidas.
func (it LineItem) Valid() bool {
	return trimmed(it.Name) != ""
}

// ValidItems filtra las líneas con nombre en blanco, preservando el orden.
// El Total de cada línea devuelta está recién recalculado.
func ValidItems(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if !it.Valid() {
			continue
		}
		it.Recalc()
		out = append(out, it)
	}
	return out
}
