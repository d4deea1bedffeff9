package usecase

import (
	"github.com/Andryxsh/sabor-real-api/internal/application/dto"
	"github.com/Andryxsh/sabor-real-api/internal/domain/finance"
	"github.com/Andryxsh/sabor-real-api/internal/state"
)

// DebtUseCase vistas del ledger de deudas. Lee siempre el snapshot vigente del
// contenedor de estado y recalcula desde cero: la deuda jamás se persiste ni
// se confía en un valor guardado.
type DebtUseCase struct {
	store *state.Store
}

// NewDebtUseCase construye el caso de uso.
func NewDebtUseCase(store *state.Store) *DebtUseCase {
	return &DebtUseCase{store: store}
}

// GetDebt saldo neto de un músico. Positivo = la agencia le debe; un sobrepago
// da negativo y se reporta tal cual.
func (uc *DebtUseCase) GetDebt(musicianID string) *dto.DebtResponse {
	cols := uc.store.Snapshot()
	t := finance.DebtTotals(cols.Events, cols.Payments)[musicianID]
	return &dto.DebtResponse{
		MusicianID: musicianID,
		Earned:     t.Earned,
		Paid:       t.Paid,
		Debt:       t.Debt(),
	}
}

// Ranking todos los deudores (deuda > 0) ordenados de mayor a menor.
func (uc *DebtUseCase) Ranking() []dto.DebtorDTO {
	cols := uc.store.Snapshot()
	debtors := finance.Debtors(cols.Musicians, cols.Events, cols.Payments)
	out := make([]dto.DebtorDTO, 0, len(debtors))
	for _, d := range debtors {
		out = append(out, dto.DebtorDTO{
			MusicianID: d.Musician.ID,
			Name:       d.Musician.Name,
			Nickname:   d.Musician.Nickname,
			Debt:       d.Debt,
		})
	}
	return out
}
