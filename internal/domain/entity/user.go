package entity

import "time"

// User representa una cuenta del sistema. Cada usuario tiene a lo sumo un Business.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
