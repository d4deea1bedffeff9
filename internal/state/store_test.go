package state_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
	"github.com/Andryxsh/sabor-real-api/internal/state"
)

// fakeWatcher entrega snapshots sintéticos y cuenta las bajas.
type fakeWatcher struct {
	failAt     int // índice de Subscribe que falla (orden: events, musicians, payments, expenses); -1 no falla
	calls      int
	unsubCount int

	eventsFn func([]*entity.Event)
}

func (w *fakeWatcher) subscribe() (repository.Unsubscribe, error) {
	idx := w.calls
	w.calls++
	if idx == w.failAt {
		return nil, errors.New("canal caído")
	}
	return func() { w.unsubCount++ }, nil
}

func (w *fakeWatcher) SubscribeEvents(fn func([]*entity.Event)) (repository.Unsubscribe, error) {
	w.eventsFn = fn
	return w.subscribe()
}

func (w *fakeWatcher) SubscribeMusicians(fn func([]*entity.Musician)) (repository.Unsubscribe, error) {
	return w.subscribe()
}

func (w *fakeWatcher) SubscribePayments(fn func([]*entity.Payment)) (repository.Unsubscribe, error) {
	return w.subscribe()
}

func (w *fakeWatcher) SubscribeExpenses(fn func([]*entity.Expense)) (repository.Unsubscribe, error) {
	return w.subscribe()
}

func TestStore_SnapshotReemplazaColeccionesEnteras(t *testing.T) {
	s := state.New()

	s.SetEvents([]*entity.Event{{ID: "e1"}, {ID: "e2"}})
	s.SetEvents([]*entity.Event{{ID: "e3"}})

	snap := s.Snapshot()
	require.Len(t, snap.Events, 1, "cada snapshot reemplaza la colección entera")
	assert.Equal(t, "e3", snap.Events[0].ID)
}

func TestStore_BindSuscribeLasCuatroColecciones(t *testing.T) {
	s := state.New()
	w := &fakeWatcher{failAt: -1}

	unbind, err := s.Bind(w)
	require.NoError(t, err)
	assert.Equal(t, 4, w.calls)

	// El callback registrado alimenta el store.
	w.eventsFn([]*entity.Event{{ID: "e1"}})
	assert.Len(t, s.Snapshot().Events, 1)

	unbind()
	assert.Equal(t, 4, w.unsubCount, "la cancelación combinada da de baja las cuatro")
}

func TestStore_BindFalloParcialCancelaLoYaSuscrito(t *testing.T) {
	s := state.New()
	w := &fakeWatcher{failAt: 2} // payments falla

	_, err := s.Bind(w)

	require.Error(t, err)
	assert.Equal(t, 2, w.unsubCount,
		"ante un fallo parcial se cancelan las suscripciones ya hechas")
}
