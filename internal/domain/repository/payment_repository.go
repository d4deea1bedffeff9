package repository

import "github.com/Andryxsh/sabor-real-api/internal/domain/entity"

// PaymentRepository puerto de persistencia para pagos a músicos.
type PaymentRepository interface {
	Create(p *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	List(limit, offset int) ([]*entity.Payment, error)
	ListAll() ([]*entity.Payment, error)
	ListByMusician(musicianID string) ([]*entity.Payment, error)
	Update(p *entity.Payment) error
	Delete(id string) error
}
