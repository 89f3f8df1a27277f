package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

// BusinessUseCase administra el perfil de negocio del usuario (uno por cuenta).
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso con el puerto de persistencia.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// requiredFields valida que los campos obligatorios del perfil no estén en blanco.
func requiredFields(name, address, city, state, zipCode string) error {
	for _, f := range []struct{ label, value string }{
		{"name", name},
		{"address", address},
		{"city", city},
		{"state", state},
		{"zip_code", zipCode},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, f.label)
		}
	}
	return nil
}

// Upsert crea el perfil si no existe o lo reemplaza si ya existe (POST /api/business/).
func (uc *BusinessUseCase) Upsert(userID string, in dto.UpsertBusinessRequest) (*dto.BusinessResponse, error) {
	if err := requiredFields(in.Name, in.Address, in.City, in.State, in.ZipCode); err != nil {
		return nil, err
	}
	country := in.Country
	if country == "" {
		country = "USA"
	}

	now := time.Now()
	existing, err := uc.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Name = in.Name
		existing.Address = in.Address
		existing.City = in.City
		existing.State = in.State
		existing.ZipCode = in.ZipCode
		existing.Country = country
		existing.Phone = in.Phone
		existing.Email = in.Email
		existing.Website = in.Website
		existing.TaxID = in.TaxID
		existing.LogoURL = in.LogoURL
		existing.UpdatedAt = now
		if err := uc.repo.Update(existing); err != nil {
			return nil, err
		}
		return toBusinessResponse(existing), nil
	}

	business := &entity.Business{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		Country:   country,
		Phone:     in.Phone,
		Email:     in.Email,
		Website:   in.Website,
		TaxID:     in.TaxID,
		LogoURL:   in.LogoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(business); err != nil {
		return nil, err
	}
	return toBusinessResponse(business), nil
}

// Get devuelve el perfil del usuario. Un perfil aún no configurado es un
// estado normal, no una falla: se señala con ErrBusinessNotFound para que el
// handler lo distinga de un error real.
func (uc *BusinessUseCase) Get(userID string) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrBusinessNotFound
	}
	return toBusinessResponse(business), nil
}

// Patch actualiza campos individuales. Los obligatorios pueden cambiarse pero
// no quedar en blanco.
func (uc *BusinessUseCase) Patch(userID string, in dto.PatchBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrBusinessNotFound
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&business.Name, in.Name)
	apply(&business.Address, in.Address)
	apply(&business.City, in.City)
	apply(&business.State, in.State)
	apply(&business.ZipCode, in.ZipCode)
	apply(&business.Country, in.Country)
	apply(&business.Phone, in.Phone)
	apply(&business.Email, in.Email)
	apply(&business.Website, in.Website)
	apply(&business.TaxID, in.TaxID)
	apply(&business.LogoURL, in.LogoURL)

	if err := requiredFields(business.Name, business.Address, business.City, business.State, business.ZipCode); err != nil {
		return nil, err
	}

	business.UpdatedAt = time.Now()
	if err := uc.repo.Update(business); err != nil {
		return nil, err
	}
	return toBusinessResponse(business), nil
}

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		Name:      b.Name,
		Address:   b.Address,
		City:      b.City,
		State:     b.State,
		ZipCode:   b.ZipCode,
		Country:   b.Country,
		Phone:     b.Phone,
		Email:     b.Email,
		Website:   b.Website,
		TaxID:     b.TaxID,
		LogoURL:   b.LogoURL,
		CreatedAt: b.CreatedAt,
	}
}
