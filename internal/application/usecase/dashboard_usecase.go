package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Andryxsh/sabor-real-api/internal/application/dto"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/finance"
	"github.com/Andryxsh/sabor-real-api/internal/state"
)

const (
	upcomingCap = 3
	topDebtorsN = 5
)

// DashboardUseCase compone el snapshot de la pantalla principal a partir del
// estado vigente: próximos eventos, totales y top de deudas. Se recalcula
// completo en cada llamada; nada se memoriza entre snapshots.
type DashboardUseCase struct {
	store *state.Store
	now   func() time.Time // inyectable en tests
}

// NewDashboardUseCase construye el caso de uso con el reloj del sistema.
func NewDashboardUseCase(store *state.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store, now: time.Now}
}

// BuildSnapshot arma el resumen del dashboard.
//
// "Hoy" es el día de calendario LOCAL del proceso, no UTC: las fechas son
// ISO YYYY-MM-DD y se comparan lexicográficamente (ver entity.ISODate).
func (uc *DashboardUseCase) BuildSnapshot() *dto.DashboardSnapshotDTO {
	cols := uc.store.Snapshot()
	today := entity.DateOf(uc.now())

	// Próximos eventos: fecha >= hoy, ni cancelados ni completados, no
	// bloqueados; ascendente por fecha, tope 3, contador sin tope.
	upcoming := make([]*entity.Event, 0)
	for _, e := range cols.Events {
		if e.Date < today || e.Locked {
			continue
		}
		if e.Status == entity.EventCancelled || e.Status == entity.EventCompleted {
			continue
		}
		upcoming = append(upcoming, e)
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })
	totalUpcoming := len(upcoming)
	if len(upcoming) > upcomingCap {
		upcoming = upcoming[:upcomingCap]
	}
	upcomingDTOs := make([]dto.EventResponse, 0, len(upcoming))
	for _, e := range upcoming {
		upcomingDTOs = append(upcomingDTOs, *toEventResponse(e))
	}

	activeCount := 0
	for _, m := range cols.Musicians {
		if m.Status == entity.MusicianActive {
			activeCount++
		}
	}

	totalIncome := decimal.Zero
	for _, e := range cols.Events {
		if e.Status == entity.EventConfirmed || e.Status == entity.EventCompleted {
			totalIncome = totalIncome.Add(e.Price)
		}
	}
	totalExpenses := decimal.Zero
	for _, x := range cols.Expenses {
		totalExpenses = totalExpenses.Add(x.Amount)
	}
	totalPaid := decimal.Zero
	for _, p := range cols.Payments {
		totalPaid = totalPaid.Add(p.Amount)
	}
	balance := totalIncome.Sub(totalExpenses).Sub(totalPaid)

	// Deudas: el ranking completo para contadores y suma, el top 5 para el widget.
	debtors := finance.Debtors(cols.Musicians, cols.Events, cols.Payments)
	totalOutstanding := decimal.Zero
	for _, d := range debtors {
		totalOutstanding = totalOutstanding.Add(d.Debt)
	}
	top := debtors
	if len(top) > topDebtorsN {
		top = top[:topDebtorsN]
	}
	topDTOs := make([]dto.DebtorDTO, 0, len(top))
	for _, d := range top {
		topDTOs = append(topDTOs, dto.DebtorDTO{
			MusicianID: d.Musician.ID,
			Name:       d.Musician.Name,
			Nickname:   d.Musician.Nickname,
			Debt:       d.Debt,
		})
	}

	return &dto.DashboardSnapshotDTO{
		UpcomingEvents:       upcomingDTOs,
		TotalUpcomingCount:   totalUpcoming,
		ActiveMusiciansCount: activeCount,
		TotalIncome:          totalIncome,
		TotalExpenses:        totalExpenses,
		TotalPaidToMusicians: totalPaid,
		Balance:              balance,
		TopDebtors:           topDTOs,
		TotalDebtorsCount:    len(debtors),
		TotalOutstandingDebt: totalOutstanding,
	}
}
