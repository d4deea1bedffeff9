package dto

import "github.com/shopspring/decimal"

// DashboardSnapshotDTO respuesta de GET /api/dashboard/snapshot.
// Es la composición de las vistas derivadas para la pantalla principal:
// próximos eventos, totales de dinero y top de deudas con músicos.
type DashboardSnapshotDTO struct {
	// Próximos eventos (fecha >= hoy, no cancelados/completados, no bloqueados),
	// ascendente por fecha, tope 3; el contador no tiene tope.
	UpcomingEvents     []EventResponse `json:"upcoming_events"`
	TotalUpcomingCount int             `json:"total_upcoming_count"`

	ActiveMusiciansCount int `json:"active_musicians_count"`

	// Totales: income = precios de eventos Confirmed+Completed; balance =
	// income - expenses - paid_to_musicians.
	TotalIncome          decimal.Decimal `json:"total_income"`
	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	TotalPaidToMusicians decimal.Decimal `json:"total_paid_to_musicians"`
	Balance              decimal.Decimal `json:"balance"`

	// Top 5 deudas (deuda > 0, descendente); contadores y suma sin tope.
	TopDebtors           []DebtorDTO     `json:"top_debtors"`
	TotalDebtorsCount    int             `json:"total_debtors_count"`
	TotalOutstandingDebt decimal.Decimal `json:"total_outstanding_debt"`
}

// DebtorDTO un músico con saldo a favor, para el widget de deudas.
type DebtorDTO struct {
	MusicianID string          `json:"musician_id"`
	Name       string          `json:"name"`
	Nickname   string          `json:"nickname,omitempty"`
	Debt       decimal.Decimal `json:"debt"`
}
