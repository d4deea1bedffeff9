package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías del roster. `driver` tiene regla de tarifa propia (ver domain/booking).
type MusicianCategory string

const (
	CategoryMusician MusicianCategory = "musician"
	CategoryStaff    MusicianCategory = "staff"
	CategoryDriver   MusicianCategory = "driver"
	CategoryCamera   MusicianCategory = "camera-operator"
	CategoryAdmin    MusicianCategory = "admin"
)

// ValidCategory indica si la categoría pertenece al enum cerrado.
func ValidCategory(c MusicianCategory) bool {
	switch c {
	case CategoryMusician, CategoryStaff, CategoryDriver, CategoryCamera, CategoryAdmin:
		return true
	}
	return false
}

// Estados del músico. Solo `active` puede ser ofrecido al asignar crew.
type MusicianStatus string

const (
	MusicianActive    MusicianStatus = "active"
	MusicianInactive  MusicianStatus = "inactive"
	MusicianVacation  MusicianStatus = "vacation"
	MusicianSuspended MusicianStatus = "suspended"
)

// ValidMusicianStatus indica si el estado pertenece al enum cerrado.
func ValidMusicianStatus(s MusicianStatus) bool {
	switch s {
	case MusicianActive, MusicianInactive, MusicianVacation, MusicianSuspended:
		return true
	}
	return false
}

// RateCard tarifas por tipo de evento, con clave tipada (nada de acceso por
// string libre). La ausencia de un tipo resuelve a cero.
type RateCard map[EventType]decimal.Decimal

// For devuelve la tarifa para un tipo de evento; cero si no está definida.
func (r RateCard) For(t EventType) decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	if v, ok := r[t]; ok {
		return v
	}
	return decimal.Zero
}

// Valid verifica que todas las tarifas sean no negativas y de tipos conocidos.
func (r RateCard) Valid() bool {
	for t, v := range r {
		if !ValidEventType(t) || v.IsNegative() {
			return false
		}
	}
	return true
}

// Musician integrante del roster: músicos, staff, choferes, camarógrafos.
// Debt NO se persiste: es siempre una proyección del ledger (ver domain/finance).
type Musician struct {
	ID            string
	Name          string
	Nickname      string
	Role          string // instrumento o función ("trompeta", "sonido", ...)
	Category      MusicianCategory
	Status        MusicianStatus
	Rates         RateCard
	ChoferExtra   *decimal.Decimal // tarifa reducida de segunda salida del día; solo choferes
	PaymentMethod PaymentMethod    // preferencia de cobro
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive indica si el músico puede ser asignado a un evento.
func (m *Musician) IsActive() bool { return m.Status == MusicianActive }

// IsDriver indica si aplica la regla de chofer (ver booking.ResolveRate).
func (m *Musician) IsDriver() bool { return m.Category == CategoryDriver }
