package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrewAssignmentRequest asignación de un músico al evento. Amount es el
// override manual: si viene, reemplaza la tarifa calculada (esperado en
// eventos travel, donde el resolver solo sugiere).
type CrewAssignmentRequest struct {
	MusicianID string           `json:"musician_id" validate:"required"`
	Amount     *decimal.Decimal `json:"amount"`
}

// EventExpenseDTO gasto embebido en el evento.
type EventExpenseDTO struct {
	Concept  string          `json:"concept"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

// CreateEventRequest alta de un evento. Balance se calcula como price - advance.
type CreateEventRequest struct {
	Name     string                  `json:"name" validate:"required"`
	Type     string                  `json:"type" validate:"required"`
	Date     string                  `json:"date" validate:"required"` // YYYY-MM-DD
	Status   string                  `json:"status"`
	Price    decimal.Decimal         `json:"price"`
	Advance  decimal.Decimal         `json:"advance"`
	Crew     []CrewAssignmentRequest `json:"crew"`
	Expenses []EventExpenseDTO       `json:"expenses"`
}

// UpdateEventRequest actualización parcial. Advance no se toca por aquí:
// siempre vía el endpoint de anticipo, que recalcula balance en el mismo paso.
type UpdateEventRequest struct {
	Name     *string           `json:"name"`
	Type     *string           `json:"type"`
	Date     *string           `json:"date"`
	Status   *string           `json:"status"`
	Price    *decimal.Decimal  `json:"price"`
	Expenses []EventExpenseDTO `json:"expenses"`
}

// ApplyAdvanceRequest aplicación de anticipo: mode "add" suma, "fix" corrige.
type ApplyAdvanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Mode   string          `json:"mode" validate:"required,oneof=add fix"`
}

// AttendanceRequest marca asistencia de un integrante asignado.
type AttendanceRequest struct {
	MusicianID string `json:"musician_id" validate:"required"`
	Attended   bool   `json:"attended"`
}

// CrewPaidRequest marca una asignación como pagada.
type CrewPaidRequest struct {
	MusicianID string `json:"musician_id" validate:"required"`
	Paid       bool   `json:"paid"`
}

// LockRequest bloquea o desbloquea un evento.
type LockRequest struct {
	Locked bool `json:"locked"`
}

// CrewMemberDTO asignación en la respuesta.
type CrewMemberDTO struct {
	MusicianID  string          `json:"musician_id"`
	Attended    bool            `json:"attended"`
	AmountToPay decimal.Decimal `json:"amount_to_pay"`
	Paid        bool            `json:"paid"`
}

// EventResponse salida de un evento.
type EventResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	Date         string            `json:"date"`
	Status       string            `json:"status"`
	Locked       bool              `json:"locked"`
	Price        decimal.Decimal   `json:"price"`
	Advance      decimal.Decimal   `json:"advance"`
	Balance      decimal.Decimal   `json:"balance"`
	Expenses     []EventExpenseDTO `json:"expenses"`
	AssignedCrew []CrewMemberDTO   `json:"assigned_crew"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// EventListResponse listado paginado.
type EventListResponse struct {
	Items []EventResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// EventSummaryResponse resumen financiero del evento.
type EventSummaryResponse struct {
	EventID      string          `json:"event_id"`
	CrewCost     decimal.Decimal `json:"crew_cost"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	IsProfitable bool            `json:"is_profitable"`
	Balance      decimal.Decimal `json:"balance"`
}
