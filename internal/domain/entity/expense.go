package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto general de la agencia (ensayo, equipo, transporte...).
// EventID es opcional: un gasto puede o no estar ligado a un evento.
type Expense struct {
	ID        string
	Concept   string
	Amount    decimal.Decimal
	Category  string
	EventID   string // opcional
	Date      ISODate
	CreatedAt time.Time
	UpdatedAt time.Time
}
