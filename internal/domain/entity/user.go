package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleComprador = "comprador"
	RoleAuditor   = "auditor" // solo lectura
)

// Estados de usuario. Solo los activos pueden iniciar sesión.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario de la API.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, comprador, auditor
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
