package entity

import "time"

// Business representa el perfil del negocio emisor (uno por usuario).
// Es la identidad que aparece como emisor en recibos y facturas.
type Business struct {
	ID        string
	UserID    string
	Name      string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	Phone     string
	Email     string
	Website   string
	TaxID     string // Tax ID o EIN
	LogoURL   string // ruta relativa del logo subido
	CreatedAt time.Time
	UpdatedAt time.Time
}
