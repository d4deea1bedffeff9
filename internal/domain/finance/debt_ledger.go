package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
)

// DebtTotal agregados de un músico: lo ganado por asistencias y lo cobrado.
type DebtTotal struct {
	Earned decimal.Decimal
	Paid   decimal.Decimal
}

// Debt saldo neto: positivo = la agencia le debe al músico. Un sobrepago
// produce saldo negativo y se conserva tal cual (no se recorta a cero): señala
// que se le adelantó más de lo ganado.
func (t DebtTotal) Debt() decimal.Decimal {
	return t.Earned.Sub(t.Paid)
}

// DebtTotals construye los agregados por músico en una sola pasada sobre los
// eventos y una sola pasada sobre los pagos: O(eventos + pagos + músicos),
// nunca músicos × eventos. Referencias a músicos ya borrados quedan en el mapa
// sin romper nada; quien consulte el roster simplemente no las encontrará.
func DebtTotals(events []*entity.Event, payments []*entity.Payment) map[string]DebtTotal {
	totals := make(map[string]DebtTotal)

	for _, e := range events {
		if e.Status == entity.EventCancelled {
			continue
		}
		for _, c := range e.AssignedCrew {
			if !c.Attended {
				continue
			}
			t := totals[c.MusicianID]
			t.Earned = t.Earned.Add(c.AmountToPay)
			totals[c.MusicianID] = t
		}
	}
	for _, p := range payments {
		t := totals[p.MusicianID]
		t.Paid = t.Paid.Add(p.Amount)
		totals[p.MusicianID] = t
	}
	return totals
}

// ComputeDebt saldo neto de un músico sobre toda la historia cargada.
func ComputeDebt(musicianID string, events []*entity.Event, payments []*entity.Payment) decimal.Decimal {
	return DebtTotals(events, payments)[musicianID].Debt()
}

// Debtor un músico con saldo a favor.
type Debtor struct {
	Musician *entity.Musician
	Debt     decimal.Decimal
}

// Debtors devuelve todos los músicos con deuda > 0, ordenados de mayor a menor
// deuda. Los empates conservan el orden de entrada (sort estable). Saldos cero
// o negativos quedan fuera.
func Debtors(musicians []*entity.Musician, events []*entity.Event, payments []*entity.Payment) []Debtor {
	totals := DebtTotals(events, payments)

	debtors := make([]Debtor, 0, len(musicians))
	for _, m := range musicians {
		debt := totals[m.ID].Debt()
		if debt.IsPositive() {
			debtors = append(debtors, Debtor{Musician: m, Debt: debt})
		}
	}
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].Debt.GreaterThan(debtors[j].Debt)
	})
	return debtors
}

// RankDebtors top N de Debtors.
func RankDebtors(musicians []*entity.Musician, events []*entity.Event, payments []*entity.Payment, topN int) []Debtor {
	debtors := Debtors(musicians, events, payments)
	if topN >= 0 && len(debtors) > topN {
		debtors = debtors[:topN]
	}
	return debtors
}
