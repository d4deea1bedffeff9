package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andryxsh/sabor-real-api/internal/application/dto"
	"github.com/Andryxsh/sabor-real-api/internal/application/usecase"
	"github.com/Andryxsh/sabor-real-api/internal/domain"
	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
)

func TestCreateMusician_CategoriaInvalidaRechazada(t *testing.T) {
	uc := usecase.NewMusicianUseCase(newFakeMusicianRepo())

	_, err := uc.Create(dto.CreateMusicianRequest{Name: "Pepe", Category: "mago"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateMusician_TarifaNegativaRechazada(t *testing.T) {
	uc := usecase.NewMusicianUseCase(newFakeMusicianRepo())

	_, err := uc.Create(dto.CreateMusicianRequest{
		Name:     "Pepe",
		Category: string(entity.CategoryMusician),
		Rates:    map[entity.EventType]decimal.Decimal{entity.EventClub: decimal.NewFromInt(-1)},
	})

	assert.ErrorIs(t, err, domain.ErrMontoInvalido)
}

func TestCreateMusician_ChoferExtraSoloParaChoferes(t *testing.T) {
	uc := usecase.NewMusicianUseCase(newFakeMusicianRepo())

	veinte := decimal.NewFromInt(20)
	_, err := uc.Create(dto.CreateMusicianRequest{
		Name:        "Pepe",
		Category:    string(entity.CategoryMusician),
		ChoferExtra: &veinte,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"ChoferExtra solo tiene sentido en la categoría driver")
}

func TestCreateMusician_EstadoPorDefectoActivo(t *testing.T) {
	uc := usecase.NewMusicianUseCase(newFakeMusicianRepo())

	out, err := uc.Create(dto.CreateMusicianRequest{
		Name:     "Pepe",
		Category: string(entity.CategoryMusician),
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.MusicianActive), out.Status)
}

func TestListMusicians_BusquedaIgnoraAcentosYMayusculas(t *testing.T) {
	repo := newFakeMusicianRepo(
		&entity.Musician{ID: "m1", Name: "Mónica Pérez", Status: entity.MusicianActive, Category: entity.CategoryMusician},
		&entity.Musician{ID: "m2", Name: "Andrés", Nickname: "El Ñato", Status: entity.MusicianActive, Category: entity.CategoryMusician},
		&entity.Musician{ID: "m3", Name: "Carlos", Status: entity.MusicianActive, Category: entity.CategoryMusician},
	)
	uc := usecase.NewMusicianUseCase(repo)

	out, err := uc.List(20, 0, "monica")
	require.NoError(t, err)
	require.Len(t, out.Items, 1, `"monica" debe encontrar a "Mónica"`)
	assert.Equal(t, "m1", out.Items[0].ID)

	out, err = uc.List(20, 0, "nato")
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "la búsqueda también cubre el apodo")
	assert.Equal(t, "m2", out.Items[0].ID)
}

func TestListMusicians_BusquedaSinResultados(t *testing.T) {
	repo := newFakeMusicianRepo(
		&entity.Musician{ID: "m1", Name: "Carlos", Status: entity.MusicianActive, Category: entity.CategoryMusician},
	)
	uc := usecase.NewMusicianUseCase(repo)

	out, err := uc.List(20, 0, "zzz")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
