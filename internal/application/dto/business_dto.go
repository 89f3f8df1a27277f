package dto

import "time"

// UpsertBusinessRequest body para POST /api/business/ (crea o reemplaza el
// perfil del usuario autenticado). Los campos name/address/city/state/zip_code
// son obligatorios; country por defecto "USA".
type UpsertBusinessRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

// PatchBusinessRequest body para PATCH /api/business/ (actualización parcial).
// nil = no tocar el campo; los obligatorios no pueden quedar en blanco.
type PatchBusinessRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Website *string `json:"website"`
	TaxID   *string `json:"tax_id"`
	LogoURL *string `json:"logo_url"`
}

// BusinessResponse perfil de negocio en respuestas.
type BusinessResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zip_code,omitempty"`
	Country   string    `json:"country,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Website   string    `json:"website,omitempty"`
	TaxID     string    `json:"tax_id,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadLogoResponse respuesta de POST /api/upload/logo.
type UploadLogoResponse struct {
	LogoURL  string `json:"logo_url"`
	Filename string `json:"filename"`
}
