// Package pdf implementa la representación gráfica descargable de recibos
// y facturas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio + Tax ID   │  RECEIPT/INVOICE + N° + Fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email                            │
//	│  CLIENTE: Nombre + contacto                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Impuesto / TOTAL           │
//	│  FOOTER: método de pago o términos + notas + cortesía       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appbilling "github.com/jhoicas/Recibos-api/internal/application/billing"
	"github.com/jhoicas/Recibos-api/internal/domain/document"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

var _ appbilling.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const pdfDateLayout = "January 2, 2006"

// moneyPrinter formatea montos con separador de miles según locale. Es solo
// presentacional: el texto compartible usa su propio formato fijo.
var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

func money(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("$%v", number.Decimal(
		d.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReceiptPDF genera el PDF de un recibo y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(
	_ context.Context,
	receipt *entity.Receipt,
	business *entity.Business,
) ([]byte, error) {
	m := newDocument("Receipt "+receipt.ReceiptNumber, business.Name)

	m.AddRows(headerRow("RECEIPT", receipt.ReceiptNumber, receipt.Date.Format(pdfDateLayout), business))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(businessRow(business))
	if receipt.CustomerName != "" {
		m.AddRows(customerRow("CUSTOMER", receipt.CustomerName, receipt.CustomerEmail, receipt.CustomerPhone))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(receipt.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(document.Totals{
		Subtotal:  receipt.Subtotal,
		Discount:  receipt.Discount,
		TaxRate:   receipt.TaxRate,
		TaxAmount: receipt.TaxAmount,
		Total:     receipt.Total,
	}, "TOTAL:")...)

	footer := make([]string, 0, 2)
	if receipt.PaymentMethod != "" {
		footer = append(footer, "Payment method: "+receipt.PaymentMethod)
	}
	if receipt.Notes != "" {
		footer = append(footer, "Notes: "+receipt.Notes)
	}
	m.AddRows(footerRows(footer, "Thank you for your business!")...)

	return render(m)
}

// GenerateInvoicePDF genera el PDF de una factura y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	business *entity.Business,
) ([]byte, error) {
	m := newDocument("Invoice "+invoice.InvoiceNumber, business.Name)

	dateLine := "Issued: " + invoice.IssueDate.Format(pdfDateLayout)
	if invoice.DueDate != nil {
		dateLine += "   Due: " + invoice.DueDate.Format(pdfDateLayout)
	}
	m.AddRows(headerRow("INVOICE", invoice.InvoiceNumber, dateLine, business))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(businessRow(business))
	m.AddRows(customerRow("BILL TO", invoice.CustomerName, invoice.CustomerEmail, invoice.CustomerPhone))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(document.Totals{
		Subtotal:  invoice.Subtotal,
		Discount:  invoice.Discount,
		TaxRate:   invoice.TaxRate,
		TaxAmount: invoice.TaxAmount,
		Total:     invoice.Total,
	}, "TOTAL DUE:")...)

	footer := make([]string, 0, 3)
	if invoice.PaymentTerms != "" {
		footer = append(footer, "Payment terms: "+invoice.PaymentTerms)
	}
	if invoice.Status != "" {
		footer = append(footer, "Status: "+invoice.Status)
	}
	if invoice.Notes != "" {
		footer = append(footer, "Notes: "+invoice.Notes)
	}
	m.AddRows(footerRows(footer, "Thank you for your business!")...)

	return render(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio + tax id (izq) y tipo + número + fecha (der).
func headerRow(kind, num, dateLine string, business *entity.Business) core.Row {
	left := col.New(7).Add(
		text.New(business.Name, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	)
	if business.TaxID != "" {
		left.Add(text.New("Tax ID: "+business.TaxID, props.Text{
			Size: 9, Top: 9, Color: colorGray,
		}))
	}
	return row.New(18).Add(
		left,
		col.New(5).Add(
			text.New(kind, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(num, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
			text.New(dateLine, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// businessRow: dirección y contacto del emisor.
func businessRow(business *entity.Business) core.Row {
	addr := business.Address
	if business.City != "" {
		addr += ", " + business.City
	}
	if business.State != "" {
		addr += ", " + business.State
	}
	if business.ZipCode != "" {
		addr += " " + business.ZipCode
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s   |   Email: %s",
				nonEmpty(addr, "—"),
				nonEmpty(business.Phone, "—"),
				nonEmpty(business.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(label, name, email, phone string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(email, "—"),
				nonEmpty(phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 6, align.Left),
		h("Unit Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea del documento.
func tableItemRows(items []document.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		desc := it.Name
		if it.Description != "" {
			desc += " — " + it.Description
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money(it.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: bloque de totales alineado a la derecha. Descuento e impuesto
// solo aparecen cuando son distintos de cero, igual que en el texto compartible.
func totalsRows(t document.Totals, grandLabel string) []core.Row {
	pair := func(label, value string) core.Row {
		return row.New(5).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			})),
			col.New(3).Add(text.New(value, props.Text{
				Size: 9, Align: align.Right, Right: 1,
			})),
		)
	}

	rows := []core.Row{pair("Subtotal:", money(t.Subtotal))}
	if !t.Discount.IsZero() {
		rows = append(rows, pair("Discount:", "-"+money(t.Discount)))
	}
	if !t.TaxRate.IsZero() {
		rows = append(rows, pair(fmt.Sprintf("Tax (%s%%):", t.TaxRate.String()), money(t.TaxAmount)))
	}
	rows = append(rows, row.New(8).Add(
		col.New(6),
		col.New(3).Add(text.New(grandLabel, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 1,
		})),
		col.New(3).Add(text.New(money(t.Total), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 1,
		})),
	))
	return rows
}

// footerRows: método de pago o términos + notas + línea de cortesía.
func footerRows(lines []string, courtesy string) []core.Row {
	rows := []core.Row{line.NewRow(3)}
	for _, l := range lines {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New(courtesy, props.Text{
			Style: fontstyle.Italic, Size: 9, Align: align.Center,
			Color: colorPrimary, Top: 3,
		}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
