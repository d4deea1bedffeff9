// Package state contiene el contenedor de estado de la aplicación: las cuatro
// colecciones de entidades tal como las entrega el colaborador de persistencia.
//
// Reemplaza los stores reactivos singleton por un contenedor explícito cuyo
// ciclo de vida (suscribirse al arrancar, cancelar al apagar) maneja solo la
// raíz de composición (cmd/api), no cada pantalla.
package state

import (
	"sync"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
)

// Collections snapshot inmutable de las cuatro colecciones. Los slices no
// deben mutarse: cada cambio llega como un snapshot nuevo completo.
type Collections struct {
	Events    []*entity.Event
	Musicians []*entity.Musician
	Payments  []*entity.Payment
	Expenses  []*entity.Expense
}

// Store contenedor de estado. Cada colección se reemplaza entera bajo el
// mutex (gana el último snapshot); las vistas derivadas se recalculan desde
// cero a partir de Snapshot(), nunca de forma incremental.
type Store struct {
	mu   sync.RWMutex
	cols Collections
}

// New construye un Store vacío.
func New() *Store { return &Store{} }

// Snapshot devuelve las colecciones actuales. Seguro para lectura concurrente.
func (s *Store) Snapshot() Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cols
}

// SetEvents reemplaza la colección de eventos.
func (s *Store) SetEvents(events []*entity.Event) {
	s.mu.Lock()
	s.cols.Events = events
	s.mu.Unlock()
}

// SetMusicians reemplaza el roster.
func (s *Store) SetMusicians(musicians []*entity.Musician) {
	s.mu.Lock()
	s.cols.Musicians = musicians
	s.mu.Unlock()
}

// SetPayments reemplaza la colección de pagos.
func (s *Store) SetPayments(payments []*entity.Payment) {
	s.mu.Lock()
	s.cols.Payments = payments
	s.mu.Unlock()
}

// SetExpenses reemplaza la colección de gastos.
func (s *Store) SetExpenses(expenses []*entity.Expense) {
	s.mu.Lock()
	s.cols.Expenses = expenses
	s.mu.Unlock()
}

// Bind suscribe el store a las cuatro colecciones del watcher y devuelve una
// única función que cancela todo. La raíz de composición la difiere al apagar.
func (s *Store) Bind(w repository.Watcher) (repository.Unsubscribe, error) {
	var unsubs []repository.Unsubscribe
	cancelAll := func() {
		for _, u := range unsubs {
			u()
		}
	}

	u, err := w.SubscribeEvents(s.SetEvents)
	if err != nil {
		return nil, err
	}
	unsubs = append(unsubs, u)

	if u, err = w.SubscribeMusicians(s.SetMusicians); err != nil {
		cancelAll()
		return nil, err
	}
	unsubs = append(unsubs, u)

	if u, err = w.SubscribePayments(s.SetPayments); err != nil {
		cancelAll()
		return nil, err
	}
	unsubs = append(unsubs, u)

	if u, err = w.SubscribeExpenses(s.SetExpenses); err != nil {
		cancelAll()
		return nil, err
	}
	unsubs = append(unsubs, u)

	return cancelAll, nil
}
