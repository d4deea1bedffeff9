package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Andryxsh/sabor-real-api/internal/application/dto"
	"github.com/Andryxsh/sabor-real-api/internal/domain"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
)

// ExpenseUseCase registro de gastos generales de la agencia.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. Monto negativo se rechaza antes de persistir.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Amount.IsNegative() {
		return nil, domain.ErrMontoInvalido
	}
	date, err := entity.NewISODate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	x := &entity.Expense{
		ID:        uuid.New().String(),
		Concept:   in.Concept,
		Amount:    in.Amount,
		Category:  in.Category,
		EventID:   in.EventID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(x); err != nil {
		return nil, err
	}
	return toExpenseResponse(x), nil
}

// GetByID obtiene un gasto.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	x, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, nil
	}
	return toExpenseResponse(x), nil
}

// List lista gastos con paginación.
func (uc *ExpenseUseCase) List(limit, offset int) (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, x := range list {
		items = append(items, *toExpenseResponse(x))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial.
func (uc *ExpenseUseCase) Update(id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	x, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, nil
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrMontoInvalido
		}
		x.Amount = *in.Amount
	}
	if in.Concept != nil {
		x.Concept = *in.Concept
	}
	if in.Category != nil {
		x.Category = *in.Category
	}
	if in.EventID != nil {
		x.EventID = *in.EventID
	}
	if in.Date != nil {
		date, err := entity.NewISODate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		x.Date = date
	}
	x.UpdatedAt = time.Now()
	if err := uc.repo.Update(x); err != nil {
		return nil, err
	}
	return toExpenseResponse(x), nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toExpenseResponse(x *entity.Expense) *dto.ExpenseResponse {
	if x == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:        x.ID,
		Concept:   x.Concept,
		Amount:    x.Amount,
		Category:  x.Category,
		EventID:   x.EventID,
		Date:      x.Date.String(),
		CreatedAt: x.CreatedAt,
		UpdatedAt: x.UpdatedAt,
	}
}
