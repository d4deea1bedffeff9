package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Canal de notificación de cambios. Cada escritura emite pg_notify con el
// nombre de la colección tocada; el Listener recarga esa colección entera.
const changeChannel = "sabor_changes"

// Nombres de colección para las notificaciones.
const (
	colEvents    = "events"
	colMusicians = "musicians"
	colPayments  = "payments"
	colExpenses  = "expenses"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// notifyChange emite la notificación de cambio de una colección. El fallo de
// la notificación no invalida la escritura ya confirmada.
func notifyChange(q Querier, collection string) {
	_, _ = q.Exec(context.Background(), `SELECT pg_notify($1, $2)`, changeChannel, collection)
}
