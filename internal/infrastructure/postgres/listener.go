package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
	"github.com/Andryxsh/sabor-real-api/pkg/logger"
)

var _ repository.Watcher = (*Listener)(nil)

// Listener implementa el puerto Watcher sobre LISTEN/NOTIFY de PostgreSQL.
//
// Mantiene una conexión dedicada escuchando el canal de cambios; cada
// notificación lleva como payload el nombre de la colección tocada. Al
// recibirla, el Listener recarga la colección COMPLETA y la entrega a todos
// los suscriptores. Cada Subscribe entrega además un snapshot inicial.
type Listener struct {
	pool *pgxpool.Pool
	log  *logger.Logger

	events    *EventRepo
	musicians *MusicianRepo
	payments  *PaymentRepo
	expenses  *ExpenseRepo

	mu           sync.Mutex
	nextID       int
	eventSubs    map[int]func([]*entity.Event)
	musicianSubs map[int]func([]*entity.Musician)
	paymentSubs  map[int]func([]*entity.Payment)
	expenseSubs  map[int]func([]*entity.Expense)

	cancel context.CancelFunc
	done   chan struct{}
}

// NewListener construye el Listener. Llamar Start antes de suscribir el store.
func NewListener(pool *pgxpool.Pool, log *logger.Logger) *Listener {
	return &Listener{
		pool:         pool,
		log:          log,
		events:       NewEventRepository(pool),
		musicians:    NewMusicianRepository(pool),
		payments:     NewPaymentRepository(pool),
		expenses:     NewExpenseRepository(pool),
		eventSubs:    make(map[int]func([]*entity.Event)),
		musicianSubs: make(map[int]func([]*entity.Musician)),
		paymentSubs:  make(map[int]func([]*entity.Payment)),
		expenseSubs:  make(map[int]func([]*entity.Expense)),
	}
}

// Start arranca el bucle de escucha en una goroutine propia. Falla rápido si
// no se puede establecer la primera conexión LISTEN.
func (l *Listener) Start(ctx context.Context) error {
	conn, err := l.listenConn(ctx)
	if err != nil {
		return fmt.Errorf("start listener: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})

	go l.run(ctx, conn)
	return nil
}

// Stop detiene el bucle y espera a que termine.
func (l *Listener) Stop() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.done
}

// SubscribeEvents registra un callback y le entrega el snapshot actual.
func (l *Listener) SubscribeEvents(fn func([]*entity.Event)) (repository.Unsubscribe, error) {
	list, err := l.events.ListAll()
	if err != nil {
		return nil, fmt.Errorf("subscribe events: %w", err)
	}
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.eventSubs[id] = fn
	l.mu.Unlock()
	fn(list)
	return l.unsubscribe(func() { delete(l.eventSubs, id) }), nil
}

// SubscribeMusicians registra un callback y le entrega el snapshot actual.
func (l *Listener) SubscribeMusicians(fn func([]*entity.Musician)) (repository.Unsubscribe, error) {
	list, err := l.musicians.ListAll()
	if err != nil {
		return nil, fmt.Errorf("subscribe musicians: %w", err)
	}
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.musicianSubs[id] = fn
	l.mu.Unlock()
	fn(list)
	return l.unsubscribe(func() { delete(l.musicianSubs, id) }), nil
}

// SubscribePayments registra un callback y le entrega el snapshot actual.
func (l *Listener) SubscribePayments(fn func([]*entity.Payment)) (repository.Unsubscribe, error) {
	list, err := l.payments.ListAll()
	if err != nil {
		return nil, fmt.Errorf("subscribe payments: %w", err)
	}
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.paymentSubs[id] = fn
	l.mu.Unlock()
	fn(list)
	return l.unsubscribe(func() { delete(l.paymentSubs, id) }), nil
}

// SubscribeExpenses registra un callback y le entrega el snapshot actual.
func (l *Listener) SubscribeExpenses(fn func([]*entity.Expense)) (repository.Unsubscribe, error) {
	list, err := l.expenses.ListAll()
	if err != nil {
		return nil, fmt.Errorf("subscribe expenses: %w", err)
	}
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.expenseSubs[id] = fn
	l.mu.Unlock()
	fn(list)
	return l.unsubscribe(func() { delete(l.expenseSubs, id) }), nil
}

// unsubscribe envuelve la baja para que sea idempotente bajo el mutex.
func (l *Listener) unsubscribe(remove func()) repository.Unsubscribe {
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			remove()
			l.mu.Unlock()
		})
	}
}

func (l *Listener) listenConn(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx, "LISTEN "+changeChannel); err != nil {
		conn.Release()
		return nil, err
	}
	return conn, nil
}

func (l *Listener) run(ctx context.Context, conn *pgxpool.Conn) {
	defer close(l.done)
	defer func() {
		if conn != nil {
			conn.Release()
		}
	}()

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			l.log.Warn().Err(err).Msg("conexión LISTEN caída, reconectando")
			conn.Release()
			conn = l.reconnect(ctx)
			if conn == nil {
				return
			}
			// Pudimos perder notificaciones durante la caída: recargar todo.
			l.broadcastAll()
			continue
		}
		l.dispatch(n.Payload)
	}
}

// reconnect reintenta la conexión LISTEN hasta lograrla o cancelarse el ctx.
func (l *Listener) reconnect(ctx context.Context) *pgxpool.Conn {
	for {
		conn, err := l.listenConn(ctx)
		if err == nil {
			return conn
		}
		if ctx.Err() != nil {
			return nil
		}
		l.log.Warn().Err(err).Msg("reintento de conexión LISTEN fallido")
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(2 * time.Second):
		}
	}
}

func (l *Listener) dispatch(collection string) {
	switch collection {
	case colEvents:
		l.broadcastEvents()
	case colMusicians:
		l.broadcastMusicians()
	case colPayments:
		l.broadcastPayments()
	case colExpenses:
		l.broadcastExpenses()
	default:
		l.log.Warn().Str("collection", collection).Msg("notificación de colección desconocida")
	}
}

func (l *Listener) broadcastAll() {
	l.broadcastEvents()
	l.broadcastMusicians()
	l.broadcastPayments()
	l.broadcastExpenses()
}

func (l *Listener) broadcastEvents() {
	list, err := l.events.ListAll()
	if err != nil {
		l.log.Error().Err(err).Msg("recarga de eventos fallida")
		return
	}
	l.mu.Lock()
	subs := make([]func([]*entity.Event), 0, len(l.eventSubs))
	for _, fn := range l.eventSubs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()
	for _, fn := range subs {
		fn(list)
	}
}

func (l *Listener) broadcastMusicians() {
	list, err := l.musicians.ListAll()
	if err != nil {
		l.log.Error().Err(err).Msg("recarga de músicos fallida")
		return
	}
	l.mu.Lock()
	subs := make([]func([]*entity.Musician), 0, len(l.musicianSubs))
	for _, fn := range l.musicianSubs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()
	for _, fn := range subs {
		fn(list)
	}
}

func (l *Listener) broadcastPayments() {
	list, err := l.payments.ListAll()
	if err != nil {
		l.log.Error().Err(err).Msg("recarga de pagos fallida")
		return
	}
	l.mu.Lock()
	subs := make([]func([]*entity.Payment), 0, len(l.paymentSubs))
	for _, fn := range l.paymentSubs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()
	for _, fn := range subs {
		fn(list)
	}
}

func (l *Listener) broadcastExpenses() {
	list, err := l.expenses.ListAll()
	if err != nil {
		l.log.Error().Err(err).Msg("recarga de gastos fallida")
		return
	}
	l.mu.Lock()
	subs := make([]func([]*entity.Expense), 0, len(l.expenseSubs))
	for _, fn := range l.expenseSubs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()
	for _, fn := range subs {
		fn(list)
	}
}
