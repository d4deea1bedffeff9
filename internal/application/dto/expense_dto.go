package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest registro de un gasto general.
type CreateExpenseRequest struct {
	Concept  string          `json:"concept" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	EventID  string          `json:"event_id"`
	Date     string          `json:"date" validate:"required"` // YYYY-MM-DD
}

// UpdateExpenseRequest actualización parcial.
type UpdateExpenseRequest struct {
	Concept  *string          `json:"concept"`
	Amount   *decimal.Decimal `json:"amount"`
	Category *string          `json:"category"`
	EventID  *string          `json:"event_id"`
	Date     *string          `json:"date"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Concept   string          `json:"concept"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	EventID   string          `json:"event_id,omitempty"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ExpenseListResponse listado paginado.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
