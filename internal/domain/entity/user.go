package entity

import "time"

// La aplicación opera con un único actor administrador autenticado; el enum de
// roles existe solo para no romper el token si algún día se agregan cuentas.
const (
	RoleAdmin = "admin"
)

// User cuenta de acceso al panel de administración.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
