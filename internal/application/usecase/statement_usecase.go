package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Andryxsh/sabor-real-api/internal/domain"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/finance"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
	"github.com/Andryxsh/sabor-real-api/internal/state"
)

// StatementLine línea del estado de cuenta: lo ganado por un evento asistido
// o un pago recibido.
type StatementLine struct {
	Date    entity.ISODate
	Concept string
	Earned  decimal.Decimal // monto ganado (cero en líneas de pago)
	Paid    decimal.Decimal // monto pagado (cero en líneas de evento)
}

// Statement estado de cuenta de un músico: historial y saldo final.
type Statement struct {
	Musician    *entity.Musician
	Lines       []StatementLine
	TotalEarned decimal.Decimal
	TotalPaid   decimal.Decimal
	Debt        decimal.Decimal
	GeneratedAt time.Time
}

// StatementPDFGenerator puerto de render del estado de cuenta.
type StatementPDFGenerator interface {
	GenerateStatementPDF(st *Statement) ([]byte, error)
}

// StatementUseCase genera el estado de cuenta en PDF de un músico: cada
// asistencia con su monto congelado, cada pago, y el saldo del ledger.
type StatementUseCase struct {
	musicians repository.MusicianRepository
	store     *state.Store
	pdf       StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(musicians repository.MusicianRepository, store *state.Store, pdf StatementPDFGenerator) *StatementUseCase {
	return &StatementUseCase{musicians: musicians, store: store, pdf: pdf}
}

// Generate arma el estado de cuenta y lo renderiza a PDF.
func (uc *StatementUseCase) Generate(musicianID string) ([]byte, error) {
	m, err := uc.musicians.GetByID(musicianID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	st := uc.build(m)
	return uc.pdf.GenerateStatementPDF(st)
}

func (uc *StatementUseCase) build(m *entity.Musician) *Statement {
	cols := uc.store.Snapshot()

	lines := make([]StatementLine, 0)
	for _, e := range cols.Events {
		if e.Status == entity.EventCancelled {
			continue
		}
		c, ok := e.CrewEntry(m.ID)
		if !ok || !c.Attended {
			continue
		}
		lines = append(lines, StatementLine{
			Date:    e.Date,
			Concept: e.Name,
			Earned:  c.AmountToPay,
		})
	}
	for _, p := range cols.Payments {
		if p.MusicianID != m.ID {
			continue
		}
		concept := "Pago " + string(p.Type) + " (" + string(p.Method) + ")"
		lines = append(lines, StatementLine{
			Date:    p.Date,
			Concept: concept,
			Paid:    p.Amount,
		})
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Date < lines[j].Date })

	t := finance.DebtTotals(cols.Events, cols.Payments)[m.ID]
	return &Statement{
		Musician:    m,
		Lines:       lines,
		TotalEarned: t.Earned,
		TotalPaid:   t.Paid,
		Debt:        t.Debt(),
		GeneratedAt: time.Now(),
	}
}
