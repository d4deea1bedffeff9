package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
)

// CreateMusicianRequest alta de un integrante del roster.
type CreateMusicianRequest struct {
	Name          string                               `json:"name" validate:"required"`
	Nickname      string                               `json:"nickname"`
	Role          string                               `json:"role"`
	Category      string                               `json:"category" validate:"required"`
	Status        string                               `json:"status"`
	Rates         map[entity.EventType]decimal.Decimal `json:"rates"`
	ChoferExtra   *decimal.Decimal                     `json:"chofer_extra"`
	PaymentMethod string                               `json:"payment_method"`
}

// UpdateMusicianRequest actualización parcial (solo campos presentes).
type UpdateMusicianRequest struct {
	Name          *string                              `json:"name"`
	Nickname      *string                              `json:"nickname"`
	Role          *string                              `json:"role"`
	Category      *string                              `json:"category"`
	Status        *string                              `json:"status"`
	Rates         map[entity.EventType]decimal.Decimal `json:"rates"`
	ChoferExtra   *decimal.Decimal                     `json:"chofer_extra"`
	PaymentMethod *string                              `json:"payment_method"`
}

// MusicianResponse salida de un integrante. Debt es la proyección del ledger,
// nunca un valor almacenado.
type MusicianResponse struct {
	ID            string                               `json:"id"`
	Name          string                               `json:"name"`
	Nickname      string                               `json:"nickname"`
	Role          string                               `json:"role"`
	Category      string                               `json:"category"`
	Status        string                               `json:"status"`
	Rates         map[entity.EventType]decimal.Decimal `json:"rates"`
	ChoferExtra   *decimal.Decimal                     `json:"chofer_extra,omitempty"`
	PaymentMethod string                               `json:"payment_method"`
	CreatedAt     time.Time                            `json:"created_at"`
	UpdatedAt     time.Time                            `json:"updated_at"`
}

// MusicianListResponse listado paginado.
type MusicianListResponse struct {
	Items []MusicianResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// DebtResponse saldo neto de un músico (positivo = la agencia debe).
type DebtResponse struct {
	MusicianID string          `json:"musician_id"`
	Earned     decimal.Decimal `json:"earned"`
	Paid       decimal.Decimal `json:"paid"`
	Debt       decimal.Decimal `json:"debt"`
}
