package billing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recibos-api/internal/application/billing"
	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
)

func newShareFixture(t *testing.T) (*billing.ShareUseCase, *billing.ReceiptUseCase, *billing.InvoiceUseCase) {
	t.Helper()
	receipts := newFakeReceiptRepo()
	invoices := newFakeInvoiceRepo()
	businesses := newFakeBusinessRepo()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	return billing.NewShareUseCase(receipts, invoices, businesses),
		billing.NewReceiptUseCase(receipts, businesses),
		billing.NewInvoiceUseCase(invoices, businesses)
}

// El share de un recibo produce el texto del documento y un enlace wa.me al
// teléfono del cliente (solo dígitos, sin '+').
func TestShareReceipt_TextoYEnlace(t *testing.T) {
	share, receiptUC, _ := newShareFixture(t)

	created, err := receiptUC.Create(testUser, dto.CreateReceiptRequest{
		CustomerName:  "John Doe",
		CustomerPhone: "+1 (555) 123-4567",
		Items:         []dto.ItemRequest{{Name: "Mantenimiento", Quantity: dec("1"), UnitPrice: dec("80")}},
	})
	require.NoError(t, err)

	out, err := share.ShareReceipt(testUser, created.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Text, "*RECEIPT*"), "el texto abre con el tipo de documento")
	assert.Contains(t, out.Text, "Acme Design Studio")
	assert.Contains(t, out.Text, created.ReceiptNumber)
	assert.True(t, strings.HasPrefix(out.URL, "https://wa.me/15551234567?text="),
		"el enlace apunta al teléfono del cliente en dígitos: %s", out.URL)
	assert.NotContains(t, out.URL, "+", "el enlace codifica espacios como %20, nunca '+'")
}

// Sin teléfono del cliente el enlace abre el composer genérico de WhatsApp.
func TestShareInvoice_SinTelefono(t *testing.T) {
	share, _, invoiceUC := newShareFixture(t)

	created, err := invoiceUC.Create(testUser, validInvoiceRequest())
	require.NoError(t, err)

	out, err := share.ShareInvoice(testUser, created.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Text, "*INVOICE*"))
	assert.True(t, strings.HasPrefix(out.URL, "https://wa.me/?text="), "sin destinatario: %s", out.URL)
}

// Documentos ajenos o inexistentes no se comparten.
func TestShare_OtroUsuario_NotFound(t *testing.T) {
	share, receiptUC, _ := newShareFixture(t)

	created, err := receiptUC.Create(testUser, dto.CreateReceiptRequest{
		Items: []dto.ItemRequest{{Name: "Item", Quantity: dec("1"), UnitPrice: dec("10")}},
	})
	require.NoError(t, err)

	_, err = share.ShareReceipt("user-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = share.ShareInvoice(testUser, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
