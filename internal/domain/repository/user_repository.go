package repository

import "github.com/Andryxsh/sabor-real-api/internal/domain/entity"

// UserRepository puerto de persistencia para las cuentas de acceso (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
