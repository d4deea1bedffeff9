package repository

import "github.com/Andryxsh/sabor-real-api/internal/domain/entity"

// ExpenseRepository puerto de persistencia para gastos generales.
type ExpenseRepository interface {
	Create(x *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(limit, offset int) ([]*entity.Expense, error)
	ListAll() ([]*entity.Expense, error)
	Update(x *entity.Expense) error
	Delete(id string) error
}
