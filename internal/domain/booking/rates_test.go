package booking_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Andryxsh/sabor-real-api/internal/domain/booking"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ResolveRate: regla base y regla de chofer.
//
// Escenario de referencia (Ana, chofer): tarifa club 50, ChoferExtra 20. Su
// primera salida del día paga 50; cualquier contratación adicional ese mismo
// día en evento no-travel paga 20.
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveRate_TarifaBaseNoChofer(t *testing.T) {
	m := buildMusician(entity.CategoryMusician, nil)

	rate := booking.ResolveRate(m, entity.EventClub, "2026-05-10", nil)

	assert.True(t, rate.Equal(decimal.NewFromInt(50)),
		"un no-chofer siempre cobra su tarifa de tabla, se obtuvo %s", rate)
}

func TestResolveRate_TipoSinTarifaResuelveCero(t *testing.T) {
	m := buildMusician(entity.CategoryMusician, nil)

	rate := booking.ResolveRate(m, entity.EventRehearsal, "2026-05-10", nil)

	assert.True(t, rate.IsZero(), "tipo sin tarifa definida debe resolver a cero")
}

func TestResolveRate_NoChoferNoAfectadoPorAgendaDelDia(t *testing.T) {
	m := buildMusician(entity.CategoryMusician, nil)
	agenda := []*entity.Event{
		buildEvent("e1", "2026-05-10", entity.EventConfirmed, m.ID),
	}

	rate := booking.ResolveRate(m, entity.EventClub, "2026-05-10", agenda)

	assert.True(t, rate.Equal(decimal.NewFromInt(50)),
		"la regla de segunda salida solo aplica a choferes")
}

func TestResolveRate_ChoferPrimeraSalidaCobraTabla(t *testing.T) {
	veinte := decimal.NewFromInt(20)
	m := buildMusician(entity.CategoryDriver, &veinte)

	rate := booking.ResolveRate(m, entity.EventClub, "2026-05-10", nil)

	assert.True(t, rate.Equal(decimal.NewFromInt(50)),
		"sin otra asignación ese día, el chofer cobra tarifa de tabla")
}

func TestResolveRate_ChoferSegundaSalidaCobraChoferExtra(t *testing.T) {
	veinte := decimal.NewFromInt(20)
	m := buildMusician(entity.CategoryDriver, &veinte)
	agenda := []*entity.Event{
		buildEvent("e1", "2026-05-10", entity.EventConfirmed, m.ID),
	}

	rate := booking.ResolveRate(m, entity.EventClub, "2026-05-10", agenda)

	assert.True(t, rate.Equal(veinte),
		"segunda salida del día debe pagar ChoferExtra, se obtuvo %s", rate)
}

func TestResolveRate_ChoferTerceraSalidaTambienCobraChoferExtra(t *testing.T) {
	veinte := decimal.NewFromInt(20)
	m := buildMusician(entity.CategoryDriver, &veinte)
	agenda := []*entity.Event{
		buildEvent("e1", "2026-05-10", entity.EventConfirmed, m.ID),
		buildEvent("e2", "2026-05-10", entity.EventConfirmed, m.ID),
	}

	rate := booking.ResolveRate(m, entity.EventClub, "2026-05-10", agenda)

	assert.True(t, rate.Equal(veinte),
		"la regla se re-dispara en cada contratación adicional del día")
}

func TestResolveRate_ChoferSinChoferExtraUsaDefault100(t *testing.T) {
	m := buildMusician(entity.CategoryDriver, nil)
	agenda := []*entity.Event{
		buildEvent("e1", "2026-05-10", entity.EventConfirmed, m.ID),
	}

	rate := booking.ResolveRate(m, entity.EventClub, "2026-05-10", agenda)

	assert.True(t, rate.Equal(decimal.NewFromInt(100)),
		"sin ChoferExtra configurado aplica la tarifa por defecto de 100")
}

func TestResolveRate_EventoTravelIgnoraReglaDeChofer(t *testing.T) {
	veinte := decimal.NewFromInt(20)
	m := buildMusician(entity.CategoryDriver, &veinte)
	m.Rates[entity.EventTravel] = decimal.NewFromInt(200)
	agenda := []*entity.Event{
		buildEvent("e1", "2026-05-10", entity.EventConfirmed, m.ID),
	}

	for _, tipo := range []entity.EventType{entity.EventTravel, entity.EventTravel3H, entity.EventTravelClub} {
		rate := booking.ResolveRate(m, tipo, "2026-05-10", agenda)
		assert.True(t, rate.Equal(m.Rates.For(tipo)),
			"la familia travel (%s) nunca pasa por la regla de chofer", tipo)
	}
}

func TestResolveRate_EventoCanceladoNoCuentaComoSalida(t *testing.T) {
	veinte := decimal.NewFromInt(20)
	m := buildMusician(entity.CategoryDriver, &veinte)
	agenda := []*entity.Event{
		buildEvent("e1", "2026-05-10", entity.EventCancelled, m.ID),
	}

	rate := booking.ResolveRate(m, entity.EventClub, "2026-05-10", agenda)

	assert.True(t, rate.Equal(decimal.NewFromInt(50)),
		"un evento cancelado no cuenta para la regla de segunda salida")
}

func TestResolveRate_OtroDiaNoCuentaComoSalida(t *testing.T) {
	veinte := decimal.NewFromInt(20)
	m := buildMusician(entity.CategoryDriver, &veinte)
	agenda := []*entity.Event{
		buildEvent("e1", "2026-05-09", entity.EventConfirmed, m.ID),
	}

	rate := booking.ResolveRate(m, entity.EventClub, "2026-05-10", agenda)

	assert.True(t, rate.Equal(decimal.NewFromInt(50)),
		"una asignación de otro día no dispara la regla")
}

// TestResolveRate_ChoferAsistenciaIrrelevante fija que la regla cuenta
// asignaciones, no asistencias: antes del evento `attended` aún no existe.
func TestResolveRate_ChoferAsistenciaIrrelevante(t *testing.T) {
	veinte := decimal.NewFromInt(20)
	m := buildMusician(entity.CategoryDriver, &veinte)

	e := buildEvent("e1", "2026-05-10", entity.EventConfirmed, m.ID)
	e.AssignedCrew[0].Attended = false

	rate := booking.ResolveRate(m, entity.EventClub, "2026-05-10", []*entity.Event{e})

	assert.True(t, rate.Equal(veinte),
		"la asignación cuenta aunque la asistencia no esté marcada")
}

// ── helpers ───────────────────────────────────────────────────────────────────

func buildMusician(cat entity.MusicianCategory, choferExtra *decimal.Decimal) *entity.Musician {
	return &entity.Musician{
		ID:       "ana",
		Name:     "Ana",
		Category: cat,
		Status:   entity.MusicianActive,
		Rates: entity.RateCard{
			entity.EventClub:    decimal.NewFromInt(50),
			entity.EventPrivate: decimal.NewFromInt(80),
		},
		ChoferExtra: choferExtra,
	}
}

func buildEvent(id string, date entity.ISODate, status entity.EventStatus, crewIDs ...string) *entity.Event {
	crew := make([]entity.CrewMember, 0, len(crewIDs))
	for _, mid := range crewIDs {
		crew = append(crew, entity.CrewMember{MusicianID: mid, AmountToPay: decimal.NewFromInt(50)})
	}
	return &entity.Event{
		ID:           id,
		Name:         "Evento " + id,
		Type:         entity.EventClub,
		Date:         date,
		Status:       status,
		AssignedCrew: crew,
	}
}
