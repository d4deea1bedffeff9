package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
)

func TestNewISODate_Valida(t *testing.T) {
	d, err := entity.NewISODate("2026-05-03")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-03", d.String())
}

func TestNewISODate_RechazaSinCeroALaIzquierda(t *testing.T) {
	// "2026-5-3" parsearía con time.Parse laxo pero rompe el orden lexicográfico.
	_, err := entity.NewISODate("2026-5-3")
	assert.Error(t, err)
}

func TestNewISODate_RechazaFormatosLibres(t *testing.T) {
	for _, s := range []string{"03/05/2026", "2026-13-01", "2026-02-30", "", "mañana"} {
		_, err := entity.NewISODate(s)
		assert.Error(t, err, "se esperaba rechazo de %q", s)
	}
}

func TestISODate_OrdenLexicograficoEsCronologico(t *testing.T) {
	a, _ := entity.NewISODate("2026-09-30")
	b, _ := entity.NewISODate("2026-10-01")
	assert.True(t, a.Before(b),
		"con cero a la izquierda, comparar strings equivale a comparar fechas")
}

func TestDateOf_DiaDeCalendarioLocal(t *testing.T) {
	d := entity.DateOf(time.Date(2026, 5, 3, 23, 59, 0, 0, time.Local))
	assert.Equal(t, entity.ISODate("2026-05-03"), d)
}
