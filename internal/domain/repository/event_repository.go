package repository

import "github.com/Andryxsh/sabor-real-api/internal/domain/entity"

// EventRepository puerto de persistencia para eventos.
// ListAll devuelve la agenda completa: la regla de chofer y el ledger derivan
// siempre sobre la colección materializada entera.
type EventRepository interface {
	Create(e *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	List(limit, offset int) ([]*entity.Event, error)
	ListAll() ([]*entity.Event, error)
	Update(e *entity.Event) error
	Delete(id string) error
}
