package repository

import "github.com/Andryxsh/sabor-real-api/internal/domain/entity"

// MusicianRepository puerto de persistencia para el roster.
type MusicianRepository interface {
	Create(m *entity.Musician) error
	GetByID(id string) (*entity.Musician, error)
	List(limit, offset int) ([]*entity.Musician, error)
	ListAll() ([]*entity.Musician, error)
	Update(m *entity.Musician) error
	Delete(id string) error
}
