package repository

import "github.com/jhoicas/Recibos-api/internal/domain/entity"

// BusinessRepository puerto de persistencia para el perfil de negocio
// (a lo sumo uno por usuario).
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByUserID(userID string) (*entity.Business, error)
	Update(business *entity.Business) error
}
