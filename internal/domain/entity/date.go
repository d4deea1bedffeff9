package entity

import (
	"fmt"
	"time"
)

// ISODate fecha de calendario en formato ISO `YYYY-MM-DD` con cero a la izquierda.
//
// Invariante documentada: todas las fechas de la aplicación (eventos, pagos,
// gastos) usan este formato exacto, de modo que la comparación lexicográfica de
// strings equivale a la comparación cronológica. Cualquier fecha que entre al
// sistema pasa por NewISODate; nunca se aceptan strings de fecha libres.
type ISODate string

const isoLayout = "2006-01-02"

// NewISODate valida y normaliza una fecha ISO. Rechaza formatos sin cero a la
// izquierda (ej. "2025-1-5"), que romperían el orden lexicográfico.
func NewISODate(s string) (ISODate, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return "", fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD: %w", s, err)
	}
	if t.Format(isoLayout) != s {
		return "", fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD con cero a la izquierda", s)
	}
	return ISODate(s), nil
}

// DateOf convierte un time.Time al día de calendario local.
func DateOf(t time.Time) ISODate {
	return ISODate(t.Format(isoLayout))
}

// Before compara por valor de calendario (orden lexicográfico sobre el formato ISO).
func (d ISODate) Before(other ISODate) bool { return d < other }

// String devuelve la fecha en formato ISO.
func (d ISODate) String() string { return string(d) }

// IsZero indica si la fecha no fue establecida.
func (d ISODate) IsZero() bool { return d == "" }
