package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andryxsh/sabor-real-api/internal/domain"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/finance"
)

// ──────────────────────────────────────────────────────────────────────────────
// Summarize: costo de crew, ganancia neta y validación del invariante
// Balance == Price - Advance.
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_SoloAsistentesCuestan(t *testing.T) {
	e := buildPricedEvent(1000, 0)
	e.AssignedCrew = []entity.CrewMember{
		{MusicianID: "m1", Attended: true, AmountToPay: decimal.NewFromInt(150)},
		{MusicianID: "m2", Attended: true, AmountToPay: decimal.NewFromInt(120)},
		{MusicianID: "m3", Attended: false, AmountToPay: decimal.NewFromInt(200)}, // no-show
	}

	s, err := finance.Summarize(e)
	require.NoError(t, err)

	assert.True(t, s.CrewCost.Equal(decimal.NewFromInt(270)),
		"los no-show no se pagan; costo esperado 270, se obtuvo %s", s.CrewCost)
	assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(730)))
	assert.True(t, s.IsProfitable)
}

func TestSummarize_SinCrewGananciaEsElPrecio(t *testing.T) {
	e := buildPricedEvent(500, 0)

	s, err := finance.Summarize(e)
	require.NoError(t, err)

	assert.True(t, s.CrewCost.IsZero())
	assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(500)))
}

func TestSummarize_EventoAPerdida(t *testing.T) {
	e := buildPricedEvent(100, 0)
	e.AssignedCrew = []entity.CrewMember{
		{MusicianID: "m1", Attended: true, AmountToPay: decimal.NewFromInt(150)},
	}

	s, err := finance.Summarize(e)
	require.NoError(t, err)

	assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(-50)))
	assert.False(t, s.IsProfitable, "ganancia negativa no es rentable")
}

func TestSummarize_GananciaCeroEsRentable(t *testing.T) {
	e := buildPricedEvent(150, 0)
	e.AssignedCrew = []entity.CrewMember{
		{MusicianID: "m1", Attended: true, AmountToPay: decimal.NewFromInt(150)},
	}

	s, err := finance.Summarize(e)
	require.NoError(t, err)

	assert.True(t, s.NetProfit.IsZero())
	assert.True(t, s.IsProfitable, "quedar a mano cuenta como rentable")
}

func TestSummarize_BalanceInconsistenteRechazado(t *testing.T) {
	e := buildPricedEvent(1000, 200)
	e.Balance = decimal.NewFromInt(999) // roto a propósito

	_, err := finance.Summarize(e)

	assert.ErrorIs(t, err, domain.ErrBalanceInconsistente,
		"no se reportan cifras sobre un evento con balance desfasado")
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyAdvance: modos add y fix, recalculo de balance en el mismo paso.
//
// Escenario de referencia: evento de 1000 con anticipo 200 (balance 800).
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyAdvance_AddSumaAlAnticipo(t *testing.T) {
	e := buildPricedEvent(1000, 200)

	out, err := finance.ApplyAdvance(e, decimal.NewFromInt(200), finance.AdvanceAdd)
	require.NoError(t, err)

	assert.True(t, out.Advance.Equal(decimal.NewFromInt(400)))
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(600)),
		"el balance se recalcula en la misma operación")
}

func TestApplyAdvance_FixCorrigeAbsoluto(t *testing.T) {
	e := buildPricedEvent(1000, 200)

	out, err := finance.ApplyAdvance(e, decimal.NewFromInt(150), finance.AdvanceFix)
	require.NoError(t, err)

	assert.True(t, out.Advance.Equal(decimal.NewFromInt(150)))
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(850)))
}

func TestApplyAdvance_FixEsIdempotente(t *testing.T) {
	e := buildPricedEvent(1000, 200)

	once, err := finance.ApplyAdvance(e, decimal.NewFromInt(150), finance.AdvanceFix)
	require.NoError(t, err)
	twice, err := finance.ApplyAdvance(once, decimal.NewFromInt(150), finance.AdvanceFix)
	require.NoError(t, err)

	assert.True(t, twice.Advance.Equal(once.Advance))
	assert.True(t, twice.Balance.Equal(once.Balance))
}

func TestApplyAdvance_AddCeroNoCambiaNada(t *testing.T) {
	e := buildPricedEvent(1000, 200)

	out, err := finance.ApplyAdvance(e, decimal.Zero, finance.AdvanceAdd)
	require.NoError(t, err)

	assert.True(t, out.Advance.Equal(e.Advance))
	assert.True(t, out.Balance.Equal(e.Balance))
}

func TestApplyAdvance_MontoNegativoRechazado(t *testing.T) {
	e := buildPricedEvent(1000, 200)

	_, err := finance.ApplyAdvance(e, decimal.NewFromInt(-10), finance.AdvanceAdd)

	assert.ErrorIs(t, err, domain.ErrMontoInvalido)
}

func TestApplyAdvance_ModoDesconocidoRechazado(t *testing.T) {
	e := buildPricedEvent(1000, 200)

	_, err := finance.ApplyAdvance(e, decimal.NewFromInt(10), finance.AdvanceMode("merge"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyAdvance_NoMutaElOriginal(t *testing.T) {
	e := buildPricedEvent(1000, 200)

	_, err := finance.ApplyAdvance(e, decimal.NewFromInt(300), finance.AdvanceAdd)
	require.NoError(t, err)

	assert.True(t, e.Advance.Equal(decimal.NewFromInt(200)),
		"ApplyAdvance devuelve una copia; el original no se toca")
	assert.True(t, e.Balance.Equal(decimal.NewFromInt(800)))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func buildPricedEvent(price, advance int64) *entity.Event {
	p := decimal.NewFromInt(price)
	a := decimal.NewFromInt(advance)
	return &entity.Event{
		ID:      "e1",
		Name:    "Toque de prueba",
		Type:    entity.EventClub,
		Date:    "2026-05-10",
		Status:  entity.EventConfirmed,
		Price:   p,
		Advance: a,
		Balance: p.Sub(a),
	}
}
