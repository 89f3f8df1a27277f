package repository

import "github.com/jhoicas/Recibos-api/internal/domain/entity"

// ReceiptRepository puerto de persistencia para recibos.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	ListByUser(userID string) ([]*entity.Receipt, error)
	ListByBusiness(businessID string) ([]*entity.Receipt, error)
}
