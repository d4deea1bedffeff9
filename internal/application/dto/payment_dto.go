package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest registro de un pago a músico.
type CreatePaymentRequest struct {
	MusicianID string          `json:"musician_id" validate:"required"`
	EventID    string          `json:"event_id"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type" validate:"required,oneof=event advance adjustment discount"`
	Date       string          `json:"date" validate:"required"` // YYYY-MM-DD
	Method     string          `json:"method" validate:"required,oneof=cash transfer"`
	Note       string          `json:"note"`
}

// UpdatePaymentRequest actualización parcial.
type UpdatePaymentRequest struct {
	EventID *string          `json:"event_id"`
	Amount  *decimal.Decimal `json:"amount"`
	Type    *string          `json:"type"`
	Date    *string          `json:"date"`
	Method  *string          `json:"method"`
	Note    *string          `json:"note"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID         string          `json:"id"`
	MusicianID string          `json:"musician_id"`
	EventID    string          `json:"event_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Date       string          `json:"date"`
	Method     string          `json:"method"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// PaymentListResponse listado paginado.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
