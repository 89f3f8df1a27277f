package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recibos-api/internal/application/billing"
	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
)

const testUser = "user-1"

func newReceiptUC() (*billing.ReceiptUseCase, *fakeReceiptRepo, *fakeBusinessRepo) {
	receipts := newFakeReceiptRepo()
	businesses := newFakeBusinessRepo()
	return billing.NewReceiptUseCase(receipts, businesses), receipts, businesses
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Sin perfil de negocio no se puede emitir.
func TestReceiptCreate_SinNegocio_Falla(t *testing.T) {
	uc, _, _ := newReceiptUC()

	_, err := uc.Create(testUser, dto.CreateReceiptRequest{
		Items: []dto.ItemRequest{{Name: "Consultoría", Quantity: dec("1"), UnitPrice: dec("100")}},
	})
	assert.ErrorIs(t, err, domain.ErrBusinessNotFound)
}

// Los totales del body se descartan: el servidor recalcula desde las líneas.
func TestReceiptCreate_RecalculaTotales(t *testing.T) {
	uc, _, businesses := newReceiptUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	out, err := uc.Create(testUser, dto.CreateReceiptRequest{
		Subtotal:  dec("999999"), // mentira del cliente
		TaxAmount: dec("999999"),
		Total:     dec("999999"),
		TaxRate:   dec("10"),
		Discount:  dec("5"),
		Items: []dto.ItemRequest{
			{Name: "Diseño de logo", Quantity: dec("2"), UnitPrice: dec("50"), Total: dec("777")},
		},
	})
	require.NoError(t, err)

	// subtotal 100, base 95, tax 9.5, total 104.5
	assert.True(t, out.Subtotal.Equal(dec("100")), "subtotal recalculado, got %s", out.Subtotal)
	assert.True(t, out.TaxAmount.Equal(dec("9.5")), "tax recalculado, got %s", out.TaxAmount)
	assert.True(t, out.Total.Equal(dec("104.5")), "total recalculado, got %s", out.Total)
	assert.True(t, out.Items[0].Total.Equal(dec("100")), "total de línea recalculado")
	assert.NotEmpty(t, out.ReceiptNumber)
	assert.Equal(t, "RCP-", out.ReceiptNumber[:4])
}

// Líneas con nombre en blanco se descartan; si no queda ninguna es inválido.
func TestReceiptCreate_SoloLineasEnBlanco_Falla(t *testing.T) {
	uc, _, businesses := newReceiptUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	_, err := uc.Create(testUser, dto.CreateReceiptRequest{
		Items: []dto.ItemRequest{
			{Name: "", Quantity: dec("1"), UnitPrice: dec("10")},
			{Name: "   ", Quantity: dec("2"), UnitPrice: dec("20")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Fecha inválida en el body es un error de entrada.
func TestReceiptCreate_FechaInvalida_Falla(t *testing.T) {
	uc, _, businesses := newReceiptUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	_, err := uc.Create(testUser, dto.CreateReceiptRequest{
		Date:  "ayer",
		Items: []dto.ItemRequest{{Name: "Item", Quantity: dec("1"), UnitPrice: dec("10")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID — propiedad del documento
// ──────────────────────────────────────────────────────────────────────────────

// Un recibo de otro usuario se reporta como inexistente.
func TestReceiptGetByID_OtroUsuario_NotFound(t *testing.T) {
	uc, _, businesses := newReceiptUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	created, err := uc.Create(testUser, dto.CreateReceiptRequest{
		Items: []dto.ItemRequest{{Name: "Item", Quantity: dec("1"), UnitPrice: dec("10")}},
	})
	require.NoError(t, err)

	_, err = uc.GetByID("user-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.GetByID(testUser, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestReceiptGetByID_Inexistente_NotFound(t *testing.T) {
	uc, _, _ := newReceiptUC()
	_, err := uc.GetByID(testUser, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
