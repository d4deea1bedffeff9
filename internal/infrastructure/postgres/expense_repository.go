package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Andryxsh/sabor-real-api/internal/domain/entity"
	"github.com/Andryxsh/sabor-real-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación de ExpenseRepository sobre PostgreSQL (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, concept, amount, category, event_id, date, created_at, updated_at`

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(x *entity.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		x.ID, x.Concept, x.Amount, x.Category, x.EventID, x.Date, x.CreatedAt, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	notifyChange(r.q, colExpenses)
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	x, err := scanExpense(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return x, nil
}

// List lista gastos con paginación, descendente por fecha.
func (r *ExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY date DESC LIMIT $1 OFFSET $2`
	return r.queryExpenses(query, limit, offset)
}

// ListAll devuelve todos los gastos (colección materializada para el dashboard).
func (r *ExpenseRepo) ListAll() ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY date`
	return r.queryExpenses(query)
}

// Update actualiza un gasto.
func (r *ExpenseRepo) Update(x *entity.Expense) error {
	query := `
		UPDATE expenses
		SET concept = $2, amount = $3, category = $4, event_id = $5, date = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		x.ID, x.Concept, x.Amount, x.Category, x.EventID, x.Date, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	notifyChange(r.q, colExpenses)
	return nil
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	notifyChange(r.q, colExpenses)
	return nil
}

func (r *ExpenseRepo) queryExpenses(query string, args ...any) ([]*entity.Expense, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		x, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, x)
	}
	return list, rows.Err()
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var x entity.Expense
	err := row.Scan(
		&x.ID, &x.Concept, &x.Amount, &x.Category, &x.EventID, &x.Date, &x.CreatedAt, &x.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &x, nil
}
