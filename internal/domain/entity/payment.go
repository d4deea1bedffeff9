package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago a un músico.
type PaymentType string

const (
	PaymentEvent      PaymentType = "event"      // pago por un evento concreto
	PaymentAdvance    PaymentType = "advance"    // adelanto a cuenta
	PaymentAdjustment PaymentType = "adjustment" // ajuste manual
	PaymentDiscount   PaymentType = "discount"   // descuento aplicado
)

// ValidPaymentType indica si el tipo pertenece al enum cerrado.
func ValidPaymentType(t PaymentType) bool {
	switch t {
	case PaymentEvent, PaymentAdvance, PaymentAdjustment, PaymentDiscount:
		return true
	}
	return false
}

// Métodos de pago.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
)

// ValidPaymentMethod indica si el método pertenece al enum cerrado.
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == MethodCash || m == MethodTransfer
}

// Payment dinero entregado a un músico. EventID es un vínculo opcional y no
// se garantiza estructuralmente: el ledger solo agrupa por MusicianID.
type Payment struct {
	ID         string
	MusicianID string
	EventID    string // opcional
	Amount     decimal.Decimal
	Type       PaymentType
	Date       ISODate
	Method     PaymentMethod
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
