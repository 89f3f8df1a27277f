package repository

import "github.com/jhoicas/Recibos-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
