package repository

import "github.com/jhoicas/Recibos-api/internal/domain/entity"

// InvoiceRepository puerto de persistencia para facturas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByUser(userID string) ([]*entity.Invoice, error)
	ListByBusiness(businessID string) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
}
