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

var _ repository.MusicianRepository = (*MusicianRepo)(nil)

// MusicianRepo implementación de MusicianRepository sobre PostgreSQL (usable con pool o tx).
// Las tarifas se guardan como JSONB (forma documental, claves del enum de tipos de evento).
type MusicianRepo struct {
	q Querier
}

// NewMusicianRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMusicianRepository(q Querier) *MusicianRepo {
	return &MusicianRepo{q: q}
}

const musicianColumns = `id, name, nickname, role, category, status, rates, chofer_extra, payment_method, created_at, updated_at`

// Create persiste un nuevo integrante del roster.
func (r *MusicianRepo) Create(m *entity.Musician) error {
	rates, err := json.Marshal(m.Rates)
	if err != nil {
		return fmt.Errorf("marshal rates: %w", err)
	}
	query := `
		INSERT INTO musicians (` + musicianColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Nickname, m.Role, m.Category, m.Status,
		rates, m.ChoferExtra, m.PaymentMethod, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert musician: %w", err)
	}
	notifyChange(r.q, colMusicians)
	return nil
}

// GetByID obtiene un integrante por ID.
func (r *MusicianRepo) GetByID(id string) (*entity.Musician, error) {
	query := `SELECT ` + musicianColumns + ` FROM musicians WHERE id = $1`
	m, err := scanMusician(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get musician: %w", err)
	}
	return m, nil
}

// List lista el roster con paginación, ordenado por nombre.
func (r *MusicianRepo) List(limit, offset int) ([]*entity.Musician, error) {
	query := `SELECT ` + musicianColumns + ` FROM musicians ORDER BY name LIMIT $1 OFFSET $2`
	return r.queryMusicians(query, limit, offset)
}

// ListAll devuelve el roster completo (colección materializada para snapshots).
func (r *MusicianRepo) ListAll() ([]*entity.Musician, error) {
	query := `SELECT ` + musicianColumns + ` FROM musicians ORDER BY name`
	return r.queryMusicians(query)
}

// Update actualiza un integrante.
func (r *MusicianRepo) Update(m *entity.Musician) error {
	rates, err := json.Marshal(m.Rates)
	if err != nil {
		return fmt.Errorf("marshal rates: %w", err)
	}
	query := `
		UPDATE musicians
		SET name = $2, nickname = $3, role = $4, category = $5, status = $6,
		    rates = $7, chofer_extra = $8, payment_method = $9, updated_at = $10
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Nickname, m.Role, m.Category, m.Status,
		rates, m.ChoferExtra, m.PaymentMethod, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update musician: %w", err)
	}
	notifyChange(r.q, colMusicians)
	return nil
}

// Delete elimina un integrante por ID.
func (r *MusicianRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM musicians WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete musician: %w", err)
	}
	notifyChange(r.q, colMusicians)
	return nil
}

func (r *MusicianRepo) queryMusicians(query string, args ...any) ([]*entity.Musician, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list musicians: %w", err)
	}
	defer rows.Close()
	var list []*entity.Musician
	for rows.Next() {
		m, err := scanMusician(rows)
		if err != nil {
			return nil, fmt.Errorf("scan musician: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMusician(row pgx.Row) (*entity.Musician, error) {
	var (
		m     entity.Musician
		rates []byte
	)
	err := row.Scan(
		&m.ID, &m.Name, &m.Nickname, &m.Role, &m.Category, &m.Status,
		&rates, &m.ChoferExtra, &m.PaymentMethod, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(rates) > 0 {
		if err := json.Unmarshal(rates, &m.Rates); err != nil {
			return nil, fmt.Errorf("unmarshal rates: %w", err)
		}
	}
	return &m, nil
}
