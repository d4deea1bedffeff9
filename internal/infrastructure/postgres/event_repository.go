package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación de EventRepository sobre PostgreSQL (usable con pool o tx).
// AssignedCrew y Expenses se guardan como JSONB embebido en el evento (forma
// documental heredada del modelo original); Date es texto ISO YYYY-MM-DD para
// que el orden lexicográfico en SQL coincida con el cronológico.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

const eventColumns = `id, name, type, date, status, locked, price, advance, balance, expenses, assigned_crew, created_at, updated_at`

// Create persiste un nuevo evento.
func (r *EventRepo) Create(e *entity.Event) error {
	expenses, crew, err := marshalEventDocs(e)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Type, e.Date, e.Status, e.Locked,
		e.Price, e.Advance, e.Balance, expenses, crew, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	notifyChange(r.q, colEvents)
	return nil
}

// GetByID obtiene un evento por ID.
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// List lista eventos con paginación, descendente por fecha.
func (r *EventRepo) List(limit, offset int) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date DESC LIMIT $1 OFFSET $2`
	return r.queryEvents(query, limit, offset)
}

// ListAll devuelve la agenda completa (colección materializada para snapshots
// y para la regla de chofer).
func (r *EventRepo) ListAll() ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date`
	return r.queryEvents(query)
}

// Update actualiza un evento completo (advance y balance siempre juntos).
func (r *EventRepo) Update(e *entity.Event) error {
	expenses, crew, err := marshalEventDocs(e)
	if err != nil {
		return err
	}
	query := `
		UPDATE events
		SET name = $2, type = $3, date = $4, status = $5, locked = $6,
		    price = $7, advance = $8, balance = $9, expenses = $10,
		    assigned_crew = $11, updated_at = $12
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Type, e.Date, e.Status, e.Locked,
		e.Price, e.Advance, e.Balance, expenses, crew, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	notifyChange(r.q, colEvents)
	return nil
}

// Delete elimina un evento por ID.
func (r *EventRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	notifyChange(r.q, colEvents)
	return nil
}

func (r *EventRepo) queryEvents(query string, args ...any) ([]*entity.Event, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func marshalEventDocs(e *entity.Event) (expenses, crew []byte, err error) {
	if expenses, err = json.Marshal(e.Expenses); err != nil {
		return nil, nil, fmt.Errorf("marshal expenses: %w", err)
	}
	if crew, err = json.Marshal(e.AssignedCrew); err != nil {
		return nil, nil, fmt.Errorf("marshal assigned_crew: %w", err)
	}
	return expenses, crew, nil
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var (
		e        entity.Event
		expenses []byte
		crew     []byte
	)
	err := row.Scan(
		&e.ID, &e.Name, &e.Type, &e.Date, &e.Status, &e.Locked,
		&e.Price, &e.Advance, &e.Balance, &expenses, &crew, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(expenses) > 0 {
		if err := json.Unmarshal(expenses, &e.Expenses); err != nil {
			return nil, fmt.Errorf("unmarshal expenses: %w", err)
		}
	}
	if len(crew) > 0 {
		if err := json.Unmarshal(crew, &e.AssignedCrew); err != nil {
			return nil, fmt.Errorf("unmarshal assigned_crew: %w", err)
		}
	}
	return &e, nil
}
