package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recibos-api/internal/application/billing"
	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

type challengeFixture struct {
	challenges *billing.ChallengeUseCase
	receipts   *billing.ReceiptUseCase
	invoices   *billing.InvoiceUseCase
}

func newChallengeFixture(t *testing.T) challengeFixture {
	t.Helper()
	receiptRepo := newFakeReceiptRepo()
	invoiceRepo := newFakeInvoiceRepo()
	challengeRepo := newFakeChallengeRepo()
	businesses := newFakeBusinessRepo()
	require.NoError(t, businesses.Create(testBusiness(testUser)))

	return challengeFixture{
		challenges: billing.NewChallengeUseCase(challengeRepo, receiptRepo, invoiceRepo),
		receipts:   billing.NewReceiptUseCase(receiptRepo, businesses),
		invoices:   billing.NewInvoiceUseCase(invoiceRepo, businesses),
	}
}

func (f challengeFixture) newReceipt(t *testing.T) *dto.ReceiptResponse {
	t.Helper()
	r, err := f.receipts.Create(testUser, dto.CreateReceiptRequest{
		Items: []dto.ItemRequest{{Name: "Servicio", Quantity: dec("1"), UnitPrice: dec("100")}},
	})
	require.NoError(t, err)
	return r
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Una disputa referencia exactamente un documento.
func TestChallengeCreate_AmbosIDs_Falla(t *testing.T) {
	f := newChallengeFixture(t)
	r := f.newReceipt(t)

	_, err := f.challenges.Create(dto.CreateChallengeRequest{
		ReceiptID:      r.ID,
		InvoiceID:      "inv-1",
		ChallengerName: "Pedro",
		Reason:         "monto incorrecto",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.challenges.Create(dto.CreateChallengeRequest{
		ChallengerName: "Pedro",
		Reason:         "monto incorrecto",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin documento tampoco es válido")
}

func TestChallengeCreate_DocumentoInexistente_NotFound(t *testing.T) {
	f := newChallengeFixture(t)

	_, err := f.challenges.Create(dto.CreateChallengeRequest{
		ReceiptID:      "no-existe",
		ChallengerName: "Pedro",
		Reason:         "nunca recibí este servicio",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La disputa nace pending y sin resolved_at.
func TestChallengeCreate_NacePending(t *testing.T) {
	f := newChallengeFixture(t)
	r := f.newReceipt(t)

	out, err := f.challenges.Create(dto.CreateChallengeRequest{
		ReceiptID:      r.ID,
		ChallengerName: "Pedro Gómez",
		Reason:         "el monto no coincide con lo acordado",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ChallengeStatusPending, out.Status)
	assert.Nil(t, out.ResolvedAt)
	assert.NotEmpty(t, out.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListForUser / Resolve
// ──────────────────────────────────────────────────────────────────────────────

// Solo el dueño del documento ve la disputa.
func TestChallengeList_SoloDelDueno(t *testing.T) {
	f := newChallengeFixture(t)
	r := f.newReceipt(t)

	_, err := f.challenges.Create(dto.CreateChallengeRequest{
		ReceiptID:      r.ID,
		ChallengerName: "Pedro",
		Reason:         "monto incorrecto",
	})
	require.NoError(t, err)

	mine, err := f.challenges.ListForUser(testUser)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	others, err := f.challenges.ListForUser("user-2")
	require.NoError(t, err)
	assert.Empty(t, others)
}

// Resolver estampa resolved_at; volver a pending lo limpia.
func TestChallengeResolve_EstampaResolvedAt(t *testing.T) {
	f := newChallengeFixture(t)
	r := f.newReceipt(t)

	created, err := f.challenges.Create(dto.CreateChallengeRequest{
		ReceiptID:      r.ID,
		ChallengerName: "Pedro",
		Reason:         "monto incorrecto",
	})
	require.NoError(t, err)

	resolved, err := f.challenges.Resolve(testUser, created.ID, dto.ResolveChallengeRequest{
		Status:          entity.ChallengeStatusResolved,
		ResolutionNotes: "se emitió nota de crédito",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ChallengeStatusResolved, resolved.Status)
	assert.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, "se emitió nota de crédito", resolved.ResolutionNotes)

	reopened, err := f.challenges.Resolve(testUser, created.ID, dto.ResolveChallengeRequest{
		Status: entity.ChallengeStatusPending,
	})
	require.NoError(t, err)
	assert.Nil(t, reopened.ResolvedAt, "reabrir limpia resolved_at")
}

// Un usuario que no es dueño del documento no puede resolver.
func TestChallengeResolve_OtroUsuario_NotFound(t *testing.T) {
	f := newChallengeFixture(t)
	r := f.newReceipt(t)

	created, err := f.challenges.Create(dto.CreateChallengeRequest{
		ReceiptID:      r.ID,
		ChallengerName: "Pedro",
		Reason:         "monto incorrecto",
	})
	require.NoError(t, err)

	_, err = f.challenges.Resolve("user-2", created.ID, dto.ResolveChallengeRequest{
		Status: entity.ChallengeStatusRejected,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChallengeResolve_StatusInvalido_Falla(t *testing.T) {
	f := newChallengeFixture(t)

	_, err := f.challenges.Resolve(testUser, "cualquiera", dto.ResolveChallengeRequest{Status: "escalated"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
