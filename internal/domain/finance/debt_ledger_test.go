package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/finance"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ledger de deudas: deuda = ganado (asistencias en eventos no cancelados)
// menos pagado. Sin recortes: el sobrepago queda negativo.
// ──────────────────────────────────────────────────────────────────────────────

func TestDebtTotals_GanadoSoloPorAsistencias(t *testing.T) {
	events := []*entity.Event{
		ledgerEvent("e1", entity.EventConfirmed,
			crew("m1", true, 150),
			crew("m2", false, 200), // no-show: no gana
		),
	}

	totals := finance.DebtTotals(events, nil)

	assert.True(t, totals["m1"].Earned.Equal(decimal.NewFromInt(150)))
	assert.True(t, totals["m2"].Earned.IsZero(),
		"una asignación sin asistencia no genera ganancia")
}

func TestDebtTotals_EventoCanceladoNoGenera(t *testing.T) {
	events := []*entity.Event{
		ledgerEvent("e1", entity.EventCancelled, crew("m1", true, 150)),
	}

	totals := finance.DebtTotals(events, nil)

	assert.True(t, totals["m1"].Earned.IsZero(),
		"los eventos cancelados quedan fuera del ledger")
}

func TestDebtTotals_AcumulaVariosEventosYPagos(t *testing.T) {
	events := []*entity.Event{
		ledgerEvent("e1", entity.EventConfirmed, crew("m1", true, 150)),
		ledgerEvent("e2", entity.EventCompleted, crew("m1", true, 120)),
	}
	payments := []*entity.Payment{
		payment("m1", 100),
		payment("m1", 50),
	}

	totals := finance.DebtTotals(events, payments)

	require.Contains(t, totals, "m1")
	assert.True(t, totals["m1"].Earned.Equal(decimal.NewFromInt(270)))
	assert.True(t, totals["m1"].Paid.Equal(decimal.NewFromInt(150)))
	assert.True(t, totals["m1"].Debt().Equal(decimal.NewFromInt(120)))
}

func TestDebtTotals_SobrepagoQuedaNegativo(t *testing.T) {
	events := []*entity.Event{
		ledgerEvent("e1", entity.EventConfirmed, crew("m1", true, 100)),
	}
	payments := []*entity.Payment{payment("m1", 150)}

	debt := finance.ComputeDebt("m1", events, payments)

	assert.True(t, debt.Equal(decimal.NewFromInt(-50)),
		"el sobrepago se conserva tal cual, nunca se recorta a cero")
}

func TestDebtTotals_MusicoSinHistoriaDebeCero(t *testing.T) {
	debt := finance.ComputeDebt("fantasma", nil, nil)
	assert.True(t, debt.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Debtors / RankDebtors: filtro deuda > 0, orden descendente estable.
// ──────────────────────────────────────────────────────────────────────────────

func TestDebtors_ExcluyeSaldosCeroYNegativos(t *testing.T) {
	musicians := []*entity.Musician{
		{ID: "m1", Name: "Uno"},
		{ID: "m2", Name: "Dos"},
		{ID: "m3", Name: "Tres"},
	}
	events := []*entity.Event{
		ledgerEvent("e1", entity.EventConfirmed,
			crew("m1", true, 100), // deuda 100
			crew("m2", true, 100), // deuda 0 (pagado completo)
			crew("m3", true, 100), // deuda -50 (sobrepagado)
		),
	}
	payments := []*entity.Payment{
		payment("m2", 100),
		payment("m3", 150),
	}

	debtors := finance.Debtors(musicians, events, payments)

	require.Len(t, debtors, 1, "solo deuda > 0 entra al ranking")
	assert.Equal(t, "m1", debtors[0].Musician.ID)
}

func TestDebtors_OrdenDescendenteYEstable(t *testing.T) {
	musicians := []*entity.Musician{
		{ID: "m1", Name: "Uno"},
		{ID: "m2", Name: "Dos"},
		{ID: "m3", Name: "Tres"},
		{ID: "m4", Name: "Cuatro"},
	}
	events := []*entity.Event{
		ledgerEvent("e1", entity.EventConfirmed,
			crew("m1", true, 50),
			crew("m2", true, 200),
			crew("m3", true, 50), // empata con m1: debe quedar después
			crew("m4", true, 120),
		),
	}

	debtors := finance.Debtors(musicians, events, nil)

	require.Len(t, debtors, 4)
	assert.Equal(t, "m2", debtors[0].Musician.ID)
	assert.Equal(t, "m4", debtors[1].Musician.ID)
	assert.Equal(t, "m1", debtors[2].Musician.ID, "los empates conservan el orden del roster")
	assert.Equal(t, "m3", debtors[3].Musician.ID)
}

func TestRankDebtors_TopeN(t *testing.T) {
	musicians := []*entity.Musician{
		{ID: "m1"}, {ID: "m2"}, {ID: "m3"},
	}
	events := []*entity.Event{
		ledgerEvent("e1", entity.EventConfirmed,
			crew("m1", true, 10),
			crew("m2", true, 30),
			crew("m3", true, 20),
		),
	}

	top := finance.RankDebtors(musicians, events, nil, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "m2", top[0].Musician.ID)
	assert.Equal(t, "m3", top[1].Musician.ID)
}

func TestRankDebtors_ListaVacia(t *testing.T) {
	top := finance.RankDebtors(nil, nil, nil, 5)
	assert.Empty(t, top)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func ledgerEvent(id string, status entity.EventStatus, crew ...entity.CrewMember) *entity.Event {
	return &entity.Event{
		ID:           id,
		Name:         "Evento " + id,
		Type:         entity.EventClub,
		Date:         "2026-05-10",
		Status:       status,
		AssignedCrew: crew,
	}
}

func crew(musicianID string, attended bool, amount int64) entity.CrewMember {
	return entity.CrewMember{
		MusicianID:  musicianID,
		Attended:    attended,
		AmountToPay: decimal.NewFromInt(amount),
	}
}

func payment(musicianID string, amount int64) *entity.Payment {
	return &entity.Payment{
		ID:         "p-" + musicianID,
		MusicianID: musicianID,
		Amount:     decimal.NewFromInt(amount),
		Type:       entity.PaymentEvent,
		Date:       "2026-05-11",
		Method:     entity.MethodCash,
	}
}
