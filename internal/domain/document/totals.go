package document

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals agrupa los montos derivados de un documento. Ningún valor viene
// redondeado: el redondeo a 2 decimales es responsabilidad exclusiva del
// formateo (StringFixed(2) al mostrar).
type Totals struct {
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	TaxRate   decimal.Decimal // porcentaje, ej. 8.25 significa 8.25%
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeTotals calcula subtotal, impuesto y total a partir de las líneas.
//
//	subtotal = Σ (quantity × unit_price) sobre líneas con nombre no vacío
//	taxAmount = (subtotal - discount) × taxRate/100
//	total = subtotal - discount + taxAmount
//
// Las líneas con nombre en blanco se excluyen ANTES de sumar. El total de
// cada línea se recalcula siempre; nunca se confía en un Total entrante
// posiblemente desactualizado.
//
// Si discount > subtotal, taxAmount y total resultan negativos. Eso es
// comportamiento aceptado del negocio, no un error: no se aplica clamp.
func ComputeTotals(items []LineItem, discount, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		if !it.Valid() {
			continue
		}
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}

	base := subtotal.Sub(discount)
	taxAmount := base.Mul(taxRate).Div(hundred)

	return Totals{
		Subtotal:  subtotal,
		Discount:  discount,
		TaxRate:   taxRate,
		TaxAmount: taxAmount,
		Total:     base.Add(taxAmount),
	}
}

func trimmed(s string) string { return strings.TrimSpace(s) }
