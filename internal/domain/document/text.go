package document

import (
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formato de fecha del texto compartible (en-US largo).
const shareDateLayout = "January 2, 2006"

// Document reúne los campos que necesita el serializador de texto. Es una
// vista plana sobre Receipt/Invoice: el caller copia aquí lo que aplica y
// deja en cero lo demás.
//
// El texto resultante es un contrato de cable consumido por una plataforma
// externa de mensajería: cualquier cambio rompe a los receptores. No debe
// unificarse con el render presentacional (PDF), que formatea por su cuenta.
type Document struct {
	Type   string // TypeReceipt | TypeInvoice
	Number string // RCP-XXXXXXXX / INV-XXXXXXXX

	BusinessName    string
	BusinessAddress string
	BusinessPhone   string

	CustomerName string

	Date    time.Time  // fecha del recibo o fecha de emisión de la factura
	DueDate *time.Time // solo factura, opcional

	PaymentTerms  string // solo factura
	Status        string // solo factura; se imprime en mayúsculas
	PaymentMethod string // solo recibo
	Notes         string

	Items  []LineItem
	Totals Totals
}

// money formatea un monto a exactamente 2 decimales con prefijo '$' literal.
// StringFixed redondea half-away-from-zero, aceptable para entradas
// decimales de usuario; no hay fracciones sub-centavo reales.
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// ShareText serializa el documento al bloque de texto plano usado para
// compartir por WhatsApp y para el preview línea a línea.
//
// Estructura fija (secciones separadas por línea en blanco): título,
// bloque del negocio, metadatos, *Items:*, totales, notas opcionales y
// línea de cortesía. Los campos opcionales se omiten por completo: nunca
// se inserta una línea vacía de relleno ni texto placeholder.
//
// La función es pura e idempotente: el mismo Document produce siempre
// bytes idénticos.
func ShareText(doc Document) string {
	invoice := doc.Type == TypeInvoice

	var b strings.Builder

	if invoice {
		b.WriteString("*INVOICE*\n\n")
	} else {
		b.WriteString("*RECEIPT*\n\n")
	}

	// Bloque del negocio
	name := doc.BusinessName
	if trimmed(name) == "" {
		name = "Business"
	}
	b.WriteString("*" + name + "*\n")
	if doc.BusinessAddress != "" {
		b.WriteString(doc.BusinessAddress + "\n")
	}
	if doc.BusinessPhone != "" {
		b.WriteString("Phone: " + doc.BusinessPhone + "\n")
	}
	b.WriteString("\n")

	// Metadatos
	if invoice {
		b.WriteString("Invoice #: " + doc.Number + "\n")
		b.WriteString("Issue Date: " + doc.Date.Format(shareDateLayout) + "\n")
		if doc.DueDate != nil {
			b.WriteString("Due Date: " + doc.DueDate.Format(shareDateLayout) + "\n")
		}
		if doc.CustomerName != "" {
			b.WriteString("Bill To: " + doc.CustomerName + "\n")
		}
		if doc.PaymentTerms != "" {
			b.WriteString("Payment Terms: " + doc.PaymentTerms + "\n")
		}
		b.WriteString("Status: " + strings.ToUpper(doc.Status) + "\n")
	} else {
		b.WriteString("Receipt #: " + doc.Number + "\n")
		b.WriteString("Date: " + doc.Date.Format(shareDateLayout) + "\n")
		if doc.CustomerName != "" {
			b.WriteString("Customer: " + doc.CustomerName + "\n")
		}
	}
	b.WriteString("\n")

	// Ítems: solo líneas con nombre; cada una con su total recién derivado
	b.WriteString("*Items:*\n")
	for _, it := range doc.Items {
		if !it.Valid() {
			continue
		}
		it.Recalc()
		b.WriteString("• " + it.Name)
		if it.Description != "" {
			b.WriteString(" - " + it.Description)
		}
		b.WriteString("\n  Qty: " + it.Quantity.String() + " × " + money(it.UnitPrice) + " = " + money(it.Total) + "\n")
	}
	b.WriteString("\n")

	// Totales
	b.WriteString("Subtotal: " + money(doc.Totals.Subtotal) + "\n")
	if doc.Totals.Discount.GreaterThan(decimal.Zero) {
		b.WriteString("Discount: -" + money(doc.Totals.Discount) + "\n")
	}
	if doc.Totals.TaxRate.GreaterThan(decimal.Zero) {
		b.WriteString("Tax (" + doc.Totals.TaxRate.String() + "%): " + money(doc.Totals.TaxAmount) + "\n")
	}
	if invoice {
		b.WriteString("*Total Due: " + money(doc.Totals.Total) + "*\n")
	} else {
		b.WriteString("*Total: " + money(doc.Totals.Total) + "*\n")
	}

	if !invoice && doc.PaymentMethod != "" {
		b.WriteString("\nPayment Method: " + doc.PaymentMethod + "\n")
	}
	if doc.Notes != "" {
		b.WriteString("\nNotes: " + doc.Notes + "\n")
	}

	if invoice {
		b.WriteString("\nPlease remit payment by the due date.")
	} else {
		b.WriteString("\nThank you for your business!")
	}

	return b.String()
}

// ShareLink construye la URL de compartir por WhatsApp.
// wa.me exige el número como solo dígitos (sin '+'); con teléfono vacío o
// sin dígitos se abre el composer genérico sin destinatario.
func ShareLink(phone, text string) string {
	encoded := encodeShareText(text)
	digits := digitsOnly(phone)
	if digits == "" {
		return "https://wa.me/?text=" + encoded
	}
	return "https://wa.me/" + digits + "?text=" + encoded
}

// encodeShareText codifica el cuerpo como query. QueryEscape usa '+' para
// el espacio; WhatsApp espera %20, como encodeURIComponent.
func encodeShareText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
