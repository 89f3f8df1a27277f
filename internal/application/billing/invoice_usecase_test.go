package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recibos-api/internal/application/billing"
	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

func newInvoiceUC() (*billing.InvoiceUseCase, *fakeInvoiceRepo, *fakeBusinessRepo) {
	invoices := newFakeInvoiceRepo()
	businesses := newFakeBusinessRepo()
	return billing.NewInvoiceUseCase(invoices, businesses), invoices, businesses
}

func validInvoiceRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		CustomerName: "Jane Cooper",
		Items: []dto.ItemRequest{
			{Name: "Website redesign", Quantity: dec("1"), UnitPrice: dec("500")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — defaults y validaciones
// ──────────────────────────────────────────────────────────────────────────────

// La factura exige nombre de cliente.
func TestInvoiceCreate_SinCliente_Falla(t *testing.T) {
	uc, _, businesses := newInvoiceUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	in := validInvoiceRequest()
	in.CustomerName = "   "
	_, err := uc.Create(testUser, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin status se asume pending; sin due_date se asume emisión + 30 días.
func TestInvoiceCreate_Defaults(t *testing.T) {
	uc, _, businesses := newInvoiceUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	out, err := uc.Create(testUser, validInvoiceRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPending, out.Status)
	require.NotNil(t, out.DueDate)
	expected := out.IssueDate.AddDate(0, 0, 30)
	assert.WithinDuration(t, expected, *out.DueDate, time.Second,
		"due date por defecto debe ser emisión + 30 días")
	assert.Equal(t, "INV-", out.InvoiceNumber[:4])
}

// due_date explícito en formato simple se respeta.
func TestInvoiceCreate_DueDateExplicito(t *testing.T) {
	uc, _, businesses := newInvoiceUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	in := validInvoiceRequest()
	in.IssueDate = "2026-03-01"
	in.DueDate = "2026-03-15"
	out, err := uc.Create(testUser, in)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), out.IssueDate)
	require.NotNil(t, out.DueDate)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *out.DueDate)
}

// Status desconocido es inválido.
func TestInvoiceCreate_StatusDesconocido_Falla(t *testing.T) {
	uc, _, businesses := newInvoiceUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	in := validInvoiceRequest()
	in.Status = "archived"
	_, err := uc.Create(testUser, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Patch
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoicePatch_ActualizaStatusYNotas(t *testing.T) {
	uc, _, businesses := newInvoiceUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	created, err := uc.Create(testUser, validInvoiceRequest())
	require.NoError(t, err)

	status := entity.InvoiceStatusPaid
	notes := "pagada por transferencia"
	out, err := uc.Patch(testUser, created.ID, dto.PatchInvoiceRequest{Status: &status, Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPaid, out.Status)
	assert.Equal(t, notes, out.Notes)
}

// Patch con solo notas no toca el status.
func TestInvoicePatch_SoloNotas(t *testing.T) {
	uc, _, businesses := newInvoiceUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	created, err := uc.Create(testUser, validInvoiceRequest())
	require.NoError(t, err)

	notes := "cliente pidió extensión"
	out, err := uc.Patch(testUser, created.ID, dto.PatchInvoiceRequest{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPending, out.Status, "status no debe cambiar")
	assert.Equal(t, notes, out.Notes)
}

func TestInvoicePatch_StatusInvalido_Falla(t *testing.T) {
	uc, _, businesses := newInvoiceUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	created, err := uc.Create(testUser, validInvoiceRequest())
	require.NoError(t, err)

	bad := "whatever"
	_, err = uc.Patch(testUser, created.ID, dto.PatchInvoiceRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una factura ajena no se puede modificar: se reporta como inexistente.
func TestInvoicePatch_OtroUsuario_NotFound(t *testing.T) {
	uc, _, businesses := newInvoiceUC()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	created, err := uc.Create(testUser, validInvoiceRequest())
	require.NoError(t, err)

	status := entity.InvoiceStatusCancelled
	_, err = uc.Patch("user-2", created.ID, dto.PatchInvoiceRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
