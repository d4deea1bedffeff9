// Package finance contiene los cálculos financieros derivados: resumen de
// dinero por evento, aplicación de anticipos y el ledger de deudas con los
// músicos. Todo es puro: opera sobre colecciones ya materializadas en memoria
// y se recalcula completo en cada snapshot (nada incremental).
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/Andryxsh/sabor-real-api/internal/domain"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
)

// EventSummary resumen de flujo de dinero de un evento.
type EventSummary struct {
	CrewCost     decimal.Decimal // suma de AmountToPay de los que asistieron
	NetProfit    decimal.Decimal // Price - CrewCost
	IsProfitable bool            // NetProfit >= 0
}

// Summarize calcula el resumen financiero de un evento.
//
// Solo las asignaciones con Attended == true cuestan: los no-show no se pagan.
// El invariante Balance == Price - Advance no se recalcula aquí; se valida y
// si está roto se devuelve ErrBalanceInconsistente para que el flujo lo
// repare en vez de reportar cifras sobre datos corruptos.
func Summarize(e *entity.Event) (EventSummary, error) {
	if !e.Balance.Equal(e.Price.Sub(e.Advance)) {
		return EventSummary{}, domain.ErrBalanceInconsistente
	}
	crewCost := decimal.Zero
	for _, c := range e.AssignedCrew {
		if c.Attended {
			crewCost = crewCost.Add(c.AmountToPay)
		}
	}
	net := e.Price.Sub(crewCost)
	return EventSummary{
		CrewCost:     crewCost,
		NetProfit:    net,
		IsProfitable: !net.IsNegative(),
	}, nil
}

// Modos de aplicación de anticipo.
type AdvanceMode string

const (
	AdvanceAdd AdvanceMode = "add" // suma al anticipo actual
	AdvanceFix AdvanceMode = "fix" // corrección absoluta
)

// ApplyAdvance devuelve una copia del evento con el anticipo aplicado y el
// balance recalculado como Price - Advance en el mismo paso (nunca queda
// desfasado). Montos negativos se rechazan con ErrMontoInvalido antes de que
// el llamador intente persistir nada.
func ApplyAdvance(e *entity.Event, amount decimal.Decimal, mode AdvanceMode) (*entity.Event, error) {
	if amount.IsNegative() {
		return nil, domain.ErrMontoInvalido
	}
	updated := *e
	switch mode {
	case AdvanceAdd:
		updated.Advance = e.Advance.Add(amount)
	case AdvanceFix:
		updated.Advance = amount
	default:
		return nil, domain.ErrInvalidInput
	}
	updated.Balance = updated.Price.Sub(updated.Advance)
	return &updated, nil
}
