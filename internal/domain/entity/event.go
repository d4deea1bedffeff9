package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento (enum cerrado). La familia "travel" se reconoce por el
// substring: su compensación se negocia por contratación, no por tabla.
type EventType string

const (
	EventClub       EventType = "club"
	EventPrivate    EventType = "private"
	EventTravel     EventType = "travel"
	EventRehearsal  EventType = "rehearsal"
	EventPrivate3H  EventType = "private_3h"
	EventTravel3H   EventType = "travel_3h"
	EventTravelClub EventType = "travel_club"
)

// ValidEventType indica si el tipo pertenece al enum cerrado.
func ValidEventType(t EventType) bool {
	switch t {
	case EventClub, EventPrivate, EventTravel, EventRehearsal,
		EventPrivate3H, EventTravel3H, EventTravelClub:
		return true
	}
	return false
}

// IsTravel indica si el tipo pertenece a la familia travel.
func (t EventType) IsTravel() bool {
	return strings.Contains(string(t), "travel")
}

// Estados del evento.
type EventStatus string

const (
	EventConfirmed EventStatus = "Confirmed"
	EventPending   EventStatus = "Pending"
	EventCompleted EventStatus = "Completed"
	EventCancelled EventStatus = "Cancelled"
)

// ValidEventStatus indica si el estado pertenece al enum cerrado.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventConfirmed, EventPending, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// CrewMember asignación de un integrante a un evento. AmountToPay queda
// congelado al momento de la asignación: cambios posteriores en las tarifas
// del músico NO reescriben asignaciones existentes (protege la nómina
// histórica).
type CrewMember struct {
	MusicianID  string          `json:"musicianId"`
	Attended    bool            `json:"attended"`
	AmountToPay decimal.Decimal `json:"amountToPay"`
	Paid        bool            `json:"paid"`
}

// EventExpense gasto embebido en el evento (viáticos, transporte, etc.).
type EventExpense struct {
	Concept  string          `json:"concept"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

// Event una fecha/toque de la agrupación.
// Invariante: Balance == Price - Advance siempre; se recalcula dentro de la
// misma actualización que toca Advance, nunca queda desfasado.
// Locked congela toda mutación (registro histórico cerrado).
type Event struct {
	ID           string
	Name         string
	Type         EventType
	Date         ISODate
	Status       EventStatus
	Locked       bool
	Price        decimal.Decimal // monto total contratado
	Advance      decimal.Decimal // anticipo cobrado al cliente
	Balance      decimal.Decimal // Price - Advance
	Expenses     []EventExpense
	AssignedCrew []CrewMember
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CrewEntry devuelve la asignación del músico en este evento, si existe.
func (e *Event) CrewEntry(musicianID string) (CrewMember, bool) {
	for _, c := range e.AssignedCrew {
		if c.MusicianID == musicianID {
			return c, true
		}
	}
	return CrewMember{}, false
}

// HasCrew indica si el músico está asignado a este evento.
func (e *Event) HasCrew(musicianID string) bool {
	_, ok := e.CrewEntry(musicianID)
	return ok
}
