package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, musician_id, event_id, amount, type, date, method, note, created_at, updated_at`

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(p *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.MusicianID, p.EventID, p.Amount, p.Type, p.Date, p.Method, p.Note,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	notifyChange(r.q, colPayments)
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// List lista pagos con paginación, descendente por fecha.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY date DESC LIMIT $1 OFFSET $2`
	return r.queryPayments(query, limit, offset)
}

// ListAll devuelve todos los pagos (colección materializada para el ledger).
func (r *PaymentRepo) ListAll() ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY date`
	return r.queryPayments(query)
}

// ListByMusician historial de pagos de un músico, ascendente por fecha.
func (r *PaymentRepo) ListByMusician(musicianID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE musician_id = $1 ORDER BY date`
	return r.queryPayments(query, musicianID)
}

// Update actualiza un pago.
func (r *PaymentRepo) Update(p *entity.Payment) error {
	query := `
		UPDATE payments
		SET event_id = $2, amount = $3, type = $4, date = $5, method = $6, note = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.EventID, p.Amount, p.Type, p.Date, p.Method, p.Note, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	notifyChange(r.q, colPayments)
	return nil
}

// Delete elimina un pago por ID.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	notifyChange(r.q, colPayments)
	return nil
}

func (r *PaymentRepo) queryPayments(query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.MusicianID, &p.EventID, &p.Amount, &p.Type, &p.Date, &p.Method, &p.Note,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
