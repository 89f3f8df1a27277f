package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/application/usecase"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

const testUser = "user-1"

type fakeBusinessRepo struct {
	byUser map[string]*entity.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{byUser: map[string]*entity.Business{}}
}

func (f *fakeBusinessRepo) Create(b *entity.Business) error {
	f.byUser[b.UserID] = b
	return nil
}

func (f *fakeBusinessRepo) GetByUserID(userID string) (*entity.Business, error) {
	return f.byUser[userID], nil
}

func (f *fakeBusinessRepo) Update(b *entity.Business) error {
	f.byUser[b.UserID] = b
	return nil
}

func validUpsert() dto.UpsertBusinessRequest {
	return dto.UpsertBusinessRequest{
		Name:    "Acme Design Studio",
		Address: "123 Main Street",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62704",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Upsert
// ──────────────────────────────────────────────────────────────────────────────

func TestBusinessUpsert_CreaConCountryPorDefecto(t *testing.T) {
	uc := usecase.NewBusinessUseCase(newFakeBusinessRepo())

	out, err := uc.Upsert(testUser, validUpsert())
	require.NoError(t, err)

	assert.Equal(t, "USA", out.Country, "country por defecto")
	assert.Equal(t, testUser, out.UserID)
	assert.NotEmpty(t, out.ID)
}

// El POST reemplaza el perfil existente conservando el ID.
func TestBusinessUpsert_ReemplazaExistente(t *testing.T) {
	uc := usecase.NewBusinessUseCase(newFakeBusinessRepo())

	first, err := uc.Upsert(testUser, validUpsert())
	require.NoError(t, err)

	in := validUpsert()
	in.Name = "Acme Rebrand LLC"
	in.Country = "Canada"
	second, err := uc.Upsert(testUser, in)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "mismo perfil, no uno nuevo")
	assert.Equal(t, "Acme Rebrand LLC", second.Name)
	assert.Equal(t, "Canada", second.Country)
}

func TestBusinessUpsert_CamposRequeridos(t *testing.T) {
	uc := usecase.NewBusinessUseCase(newFakeBusinessRepo())

	in := validUpsert()
	in.ZipCode = "  "
	_, err := uc.Upsert(testUser, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "zip_code")
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / Patch
// ──────────────────────────────────────────────────────────────────────────────

func TestBusinessGet_SinPerfil_NotFound(t *testing.T) {
	uc := usecase.NewBusinessUseCase(newFakeBusinessRepo())
	_, err := uc.Get(testUser)
	assert.ErrorIs(t, err, domain.ErrBusinessNotFound)
}

func TestBusinessPatch_ActualizaSoloLoPedido(t *testing.T) {
	uc := usecase.NewBusinessUseCase(newFakeBusinessRepo())
	_, err := uc.Upsert(testUser, validUpsert())
	require.NoError(t, err)

	phone := "+1 555 010 9999"
	out, err := uc.Patch(testUser, dto.PatchBusinessRequest{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, phone, out.Phone)
	assert.Equal(t, "Acme Design Studio", out.Name, "los campos no enviados quedan igual")
}

// Un obligatorio no puede quedar en blanco vía PATCH.
func TestBusinessPatch_ObligatorioEnBlanco_Falla(t *testing.T) {
	uc := usecase.NewBusinessUseCase(newFakeBusinessRepo())
	_, err := uc.Upsert(testUser, validUpsert())
	require.NoError(t, err)

	blank := ""
	_, err = uc.Patch(testUser, dto.PatchBusinessRequest{Name: &blank})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBusinessPatch_SinPerfil_NotFound(t *testing.T) {
	uc := usecase.NewBusinessUseCase(newFakeBusinessRepo())
	name := "X"
	_, err := uc.Patch(testUser, dto.PatchBusinessRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrBusinessNotFound)
}
