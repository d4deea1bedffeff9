package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/state"
)

// Test interno al paquete para poder fijar el reloj del caso de uso.

func fixedClock(iso string) func() time.Time {
	d, _ := time.ParseInLocation("2006-01-02", iso, time.Local)
	return func() time.Time { return d }
}

func dashUC(cols state.Collections, today string) *DashboardUseCase {
	store := state.New()
	store.SetEvents(cols.Events)
	store.SetMusicians(cols.Musicians)
	store.SetPayments(cols.Payments)
	store.SetExpenses(cols.Expenses)
	uc := NewDashboardUseCase(store)
	uc.now = fixedClock(today)
	return uc
}

func dashEvent(id, date string, status entity.EventStatus, price int64) *entity.Event {
	p := decimal.NewFromInt(price)
	return &entity.Event{
		ID:      id,
		Name:    "Evento " + id,
		Type:    entity.EventClub,
		Date:    entity.ISODate(date),
		Status:  status,
		Price:   p,
		Balance: p,
	}
}

func TestBuildSnapshot_EstadoVacio(t *testing.T) {
	uc := dashUC(state.Collections{}, "2026-05-10")

	snap := uc.BuildSnapshot()

	assert.Empty(t, snap.UpcomingEvents)
	assert.Zero(t, snap.TotalUpcomingCount)
	assert.Zero(t, snap.ActiveMusiciansCount)
	assert.True(t, snap.TotalIncome.IsZero())
	assert.True(t, snap.Balance.IsZero(), "con todo en cero el balance es cero")
	assert.Empty(t, snap.TopDebtors)
}

func TestBuildSnapshot_ProximosEventosFiltroYTope(t *testing.T) {
	locked := dashEvent("e-locked", "2026-05-12", entity.EventConfirmed, 100)
	locked.Locked = true
	cols := state.Collections{
		Events: []*entity.Event{
			dashEvent("e-pasado", "2026-05-09", entity.EventConfirmed, 100),
			dashEvent("e-hoy", "2026-05-10", entity.EventPending, 100),
			dashEvent("e-cancelado", "2026-05-11", entity.EventCancelled, 100),
			dashEvent("e-completado", "2026-05-11", entity.EventCompleted, 100),
			locked,
			dashEvent("e4", "2026-05-14", entity.EventConfirmed, 100),
			dashEvent("e2", "2026-05-11", entity.EventConfirmed, 100),
			dashEvent("e3", "2026-05-13", entity.EventConfirmed, 100),
		},
	}
	uc := dashUC(cols, "2026-05-10")

	snap := uc.BuildSnapshot()

	// e-hoy, e2, e3, e4 califican; el widget muestra los 3 más próximos.
	assert.Equal(t, 4, snap.TotalUpcomingCount, "el contador no tiene tope")
	require.Len(t, snap.UpcomingEvents, 3)
	assert.Equal(t, "e-hoy", snap.UpcomingEvents[0].ID, "hoy cuenta como próximo")
	assert.Equal(t, "e2", snap.UpcomingEvents[1].ID)
	assert.Equal(t, "e3", snap.UpcomingEvents[2].ID)
}

func TestBuildSnapshot_TotalesYBalance(t *testing.T) {
	cols := state.Collections{
		Events: []*entity.Event{
			dashEvent("e1", "2026-05-01", entity.EventConfirmed, 1000),
			dashEvent("e2", "2026-05-02", entity.EventCompleted, 500),
			dashEvent("e3", "2026-05-03", entity.EventPending, 999),   // no suma
			dashEvent("e4", "2026-05-04", entity.EventCancelled, 999), // no suma
		},
		Payments: []*entity.Payment{
			{ID: "p1", MusicianID: "m1", Amount: decimal.NewFromInt(300), Type: entity.PaymentEvent, Method: entity.MethodCash, Date: "2026-05-02"},
		},
		Expenses: []*entity.Expense{
			{ID: "x1", Concept: "ensayo", Amount: decimal.NewFromInt(200), Date: "2026-05-02"},
		},
	}
	uc := dashUC(cols, "2026-05-10")

	snap := uc.BuildSnapshot()

	assert.True(t, snap.TotalIncome.Equal(decimal.NewFromInt(1500)),
		"solo Confirmed y Completed generan ingreso")
	assert.True(t, snap.TotalExpenses.Equal(decimal.NewFromInt(200)))
	assert.True(t, snap.TotalPaidToMusicians.Equal(decimal.NewFromInt(300)))
	assert.True(t, snap.Balance.Equal(decimal.NewFromInt(1000)),
		"balance = income - expenses - paid")
	// Identidad del balance contra los otros tres campos del snapshot.
	assert.True(t, snap.Balance.Equal(
		snap.TotalIncome.Sub(snap.TotalExpenses).Sub(snap.TotalPaidToMusicians)))
}

func TestBuildSnapshot_TopDeudoresConTope5(t *testing.T) {
	musicians := make([]*entity.Musician, 0, 7)
	crew := make([]entity.CrewMember, 0, 7)
	for i, id := range []string{"m1", "m2", "m3", "m4", "m5", "m6", "m7"} {
		musicians = append(musicians, &entity.Musician{ID: id, Name: id, Status: entity.MusicianActive})
		crew = append(crew, entity.CrewMember{
			MusicianID:  id,
			Attended:    true,
			AmountToPay: decimal.NewFromInt(int64((i + 1) * 10)), // m7 debe 70 ... m1 debe 10
		})
	}
	e := dashEvent("e1", "2026-05-01", entity.EventCompleted, 1000)
	e.AssignedCrew = crew
	uc := dashUC(state.Collections{Events: []*entity.Event{e}, Musicians: musicians}, "2026-05-10")

	snap := uc.BuildSnapshot()

	require.Len(t, snap.TopDebtors, 5, "el widget muestra a lo sumo 5 deudores")
	assert.Equal(t, "m7", snap.TopDebtors[0].MusicianID)
	assert.Equal(t, "m3", snap.TopDebtors[4].MusicianID)
	assert.Equal(t, 7, snap.TotalDebtorsCount, "el contador incluye a todos los deudores")
	assert.True(t, snap.TotalOutstandingDebt.Equal(decimal.NewFromInt(280)),
		"la suma de deuda es sobre el ranking completo, no sobre el top")
	assert.Equal(t, 7, snap.ActiveMusiciansCount)
}
