package document_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recibos-api/internal/domain/document"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de ShareText: el texto compartible es un contrato de cable consumido
// por WhatsApp; estos tests fijan la salida byte a byte. Si alguien toca el
// orden de secciones, los separadores o el formato de montos, fallan de
// inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func baseReceipt() document.Document {
	items := []document.LineItem{
		{Name: "Widget", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(5.00)},
		{Name: "Gadget", Description: "blue", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(10.00)},
	}
	return document.Document{
		Type:            document.TypeReceipt,
		Number:          "RCP-12345678",
		BusinessName:    "Acme Store",
		BusinessAddress: "123 Main St",
		BusinessPhone:   "555-0100",
		CustomerName:    "John Doe",
		Date:            time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
		Items:           items,
		Totals:          document.ComputeTotals(items, decimal.Zero, decimal.NewFromInt(10)),
	}
}

func TestShareText_ReciboCompleto(t *testing.T) {
	want := strings.Join([]string{
		"*RECEIPT*",
		"",
		"*Acme Store*",
		"123 Main St",
		"Phone: 555-0100",
		"",
		"Receipt #: RCP-12345678",
		"Date: March 15, 2024",
		"Customer: John Doe",
		"",
		"*Items:*",
		"• Widget",
		"  Qty: 2 × $5.00 = $10.00",
		"• Gadget - blue",
		"  Qty: 1 × $10.00 = $10.00",
		"",
		"Subtotal: $20.00",
		"Tax (10%): $2.00",
		"*Total: $22.00*",
		"",
		"Thank you for your business!",
	}, "\n")

	assert.Equal(t, want, document.ShareText(baseReceipt()))
}

func TestShareText_FacturaCompleta(t *testing.T) {
	due := time.Date(2024, time.April, 14, 0, 0, 0, 0, time.UTC)
	items := []document.LineItem{
		{Name: "Consulting", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromFloat(125.00)},
	}
	doc := document.Document{
		Type:         document.TypeInvoice,
		Number:       "INV-00AB12CD",
		BusinessName: "Acme Store",
		CustomerName: "Globex Corp",
		Date:         time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		DueDate:      &due,
		PaymentTerms: "Net 30",
		Status:       "pending",
		Notes:        "PO #4455",
		Items:        items,
		Totals:       document.ComputeTotals(items, decimal.NewFromFloat(50.00), decimal.NewFromFloat(8.25)),
	}

	want := strings.Join([]string{
		"*INVOICE*",
		"",
		"*Acme Store*",
		"",
		"Invoice #: INV-00AB12CD",
		"Issue Date: March 15, 2024",
		"Due Date: April 14, 2024",
		"Bill To: Globex Corp",
		"Payment Terms: Net 30",
		"Status: PENDING",
		"",
		"*Items:*",
		"• Consulting",
		"  Qty: 4 × $125.00 = $500.00",
		"",
		"Subtotal: $500.00",
		"Discount: -$50.00",
		"Tax (8.25%): $37.13",
		"*Total Due: $487.13*",
		"",
		"Notes: PO #4455",
		"",
		"Please remit payment by the due date.",
	}, "\n")

	assert.Equal(t, want, document.ShareText(doc))
}

// TestShareText_Idempotente: el mismo documento produce siempre bytes idénticos.
func TestShareText_Idempotente(t *testing.T) {
	doc := baseReceipt()
	first := document.ShareText(doc)
	second := document.ShareText(doc)
	assert.Equal(t, first, second)
}

// TestShareText_OmisionDeOpcionales: un recibo sin descuento, sin impuesto y
// sin notas no contiene las líneas "Discount:", "Tax (" ni "Notes".
func TestShareText_OmisionDeOpcionales(t *testing.T) {
	items := []document.LineItem{
		{Name: "Thing", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(9.99)},
	}
	doc := document.Document{
		Type:         document.TypeReceipt,
		Number:       "RCP-00000001",
		BusinessName: "Acme Store",
		Date:         time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		Items:        items,
		Totals:       document.ComputeTotals(items, decimal.Zero, decimal.Zero),
	}

	got := document.ShareText(doc)

	assert.NotContains(t, got, "Discount:")
	assert.NotContains(t, got, "Tax (")
	assert.NotContains(t, got, "Notes")
	assert.NotContains(t, got, "Customer:")
	assert.NotContains(t, got, "Payment Method:")
}

// TestShareText_LeyDeOmision: quitar un campo opcional elimina exactamente su
// línea (y su separador propio), sin dejar líneas en blanco residuales.
func TestShareText_LeyDeOmision(t *testing.T) {
	withNotes := baseReceipt()
	withNotes.Notes = "Handle with care"

	without := baseReceipt()

	gotWith := document.ShareText(withNotes)
	gotWithout := document.ShareText(without)

	require.Contains(t, gotWith, "\nNotes: Handle with care\n")
	assert.Equal(t, gotWithout,
		strings.Replace(gotWith, "\n\nNotes: Handle with care", "", 1),
		"remover las notas debe quitar solo su bloque")
	assert.NotContains(t, gotWithout, "\n\n\n", "no debe haber líneas en blanco dobles residuales")
}

func TestShareText_ItemsSinNombreNoSeImprimen(t *testing.T) {
	doc := baseReceipt()
	doc.Items = append([]document.LineItem{
		{Name: "", Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(100)},
	}, doc.Items...)

	got := document.ShareText(doc)

	assert.NotContains(t, got, "$500.00", "una línea sin nombre no debe aparecer en el texto")
	assert.Contains(t, got, "• Widget")
}

func TestShareText_NegocioSinNombreUsaFallback(t *testing.T) {
	doc := baseReceipt()
	doc.BusinessName = "  "

	assert.Contains(t, document.ShareText(doc), "*Business*")
}

// ── ShareLink ─────────────────────────────────────────────────────────────────

func TestShareLink_ConDestinatario(t *testing.T) {
	got := document.ShareLink("+1 (234) 567-8900", "hola mundo")

	assert.Equal(t, "https://wa.me/12345678900?text=hola%20mundo", got,
		"wa.me lleva el número solo con dígitos y el texto con %20 para espacios")
}

func TestShareLink_SinDestinatario(t *testing.T) {
	got := document.ShareLink("", "x")
	assert.Equal(t, "https://wa.me/?text=x", got)
}

// ── Números de documento ──────────────────────────────────────────────────────

func TestDisplayNumber_Formato(t *testing.T) {
	ts := time.UnixMilli(1700000012345)
	got := document.DisplayNumber(document.PrefixReceipt, ts)

	assert.Equal(t, "RCP-00012345", got, "últimos 8 dígitos del timestamp en ms")
}

func TestNewNumber_Formato(t *testing.T) {
	got := document.NewNumber(document.PrefixInvoice)

	require.Len(t, got, 4+8)
	assert.True(t, strings.HasPrefix(got, "INV-"))
	assert.Equal(t, strings.ToUpper(got), got, "el sufijo va en mayúsculas")
}
