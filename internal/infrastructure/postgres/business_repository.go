package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL.
// La tabla tiene constraint único sobre user_id (un perfil por cuenta).
type BusinessRepo struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository construye el adaptador de persistencia para perfiles de negocio.
func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepo {
	return &BusinessRepo{pool: pool}
}

// Create persiste un nuevo perfil de negocio.
func (r *BusinessRepo) Create(business *entity.Business) error {
	query := `
		INSERT INTO businesses (id, user_id, name, address, city, state, zip_code, country,
			phone, email, website, tax_id, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(context.Background(), query,
		business.ID, business.UserID, business.Name, business.Address, business.City,
		business.State, business.ZipCode, business.Country,
		nullIfEmpty(business.Phone), nullIfEmpty(business.Email), nullIfEmpty(business.Website),
		nullIfEmpty(business.TaxID), nullIfEmpty(business.LogoURL),
		business.CreatedAt, business.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil del usuario. Devuelve (nil, nil) si no existe.
func (r *BusinessRepo) GetByUserID(userID string) (*entity.Business, error) {
	query := `
		SELECT id, user_id, name, address, city, state, zip_code, country,
		       phone, email, website, tax_id, logo_url, created_at, updated_at
		FROM businesses WHERE user_id = $1`
	var b entity.Business
	var phone, email, website, taxID, logoURL *string
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(
		&b.ID, &b.UserID, &b.Name, &b.Address, &b.City, &b.State, &b.ZipCode, &b.Country,
		&phone, &email, &website, &taxID, &logoURL,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business by user: %w", err)
	}
	b.Phone = derefStr(phone)
	b.Email = derefStr(email)
	b.Website = derefStr(website)
	b.TaxID = derefStr(taxID)
	b.LogoURL = derefStr(logoURL)
	return &b, nil
}

// Update actualiza un perfil existente.
func (r *BusinessRepo) Update(business *entity.Business) error {
	query := `
		UPDATE businesses
		SET name = $2, address = $3, city = $4, state = $5, zip_code = $6, country = $7,
		    phone = $8, email = $9, website = $10, tax_id = $11, logo_url = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		business.ID, business.Name, business.Address, business.City, business.State,
		business.ZipCode, business.Country,
		nullIfEmpty(business.Phone), nullIfEmpty(business.Email), nullIfEmpty(business.Website),
		nullIfEmpty(business.TaxID), nullIfEmpty(business.LogoURL),
		business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}
