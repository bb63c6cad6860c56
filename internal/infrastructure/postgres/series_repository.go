package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.SeriesRepository = (*SeriesRepo)(nil)

// SeriesRepo implementación del registro de series documentales sobre
// PostgreSQL (usable con pool o tx).
type SeriesRepo struct {
	q Querier
}

// NewSeriesRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSeriesRepository(q Querier) *SeriesRepo {
	return &SeriesRepo{q: q}
}

// Create persiste una serie. Código duplicado -> domain.ErrDuplicate.
func (r *SeriesRepo) Create(s *entity.DocumentSeries) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `
		INSERT INTO document_series
			(id, code, scope, prefix, year, next_number, padding, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Code, s.Scope, s.Prefix, s.Year, s.NextNumber, s.Padding,
		s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create series: %w", err)
	}
	return nil
}

// List lista todas las series, activas primero.
func (r *SeriesRepo) List() ([]*entity.DocumentSeries, error) {
	query := `
		SELECT id, code, scope, prefix, year, next_number, padding, active, created_at, updated_at
		FROM document_series
		ORDER BY active DESC, scope ASC, code ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentSeries
	for rows.Next() {
		var s entity.DocumentSeries
		if err := rows.Scan(&s.ID, &s.Code, &s.Scope, &s.Prefix, &s.Year, &s.NextNumber, &s.Padding, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan series: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// FindForScope elige la serie activa para un ámbito y año. Gana el código
// preferido si existe; si no, la serie del año sobre la evergreen, y en
// empate la más antigua. Devuelve nil si no hay ninguna candidata.
func (r *SeriesRepo) FindForScope(scope, preferredCode string, year int) (*entity.DocumentSeries, error) {
	query := `
		SELECT id, code, scope, prefix, year, next_number, padding, active, created_at, updated_at
		FROM document_series
		WHERE scope = $1 AND active AND (year IS NULL OR year = $3)
		ORDER BY (code = $2) DESC, year DESC NULLS LAST, created_at ASC, id ASC
		LIMIT 1`
	var s entity.DocumentSeries
	err := r.q.QueryRow(context.Background(), query, scope, preferredCode, year).Scan(
		&s.ID, &s.Code, &s.Scope, &s.Prefix, &s.Year, &s.NextNumber, &s.Padding,
		&s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find series: %w", err)
	}
	return &s, nil
}

// IncrementNext avanza el contador de la serie y devuelve el número
// reservado. Debe ejecutarse en la misma transacción que consume el número:
// el UPDATE toma el bloqueo de fila, así que dos transacciones concurrentes
// nunca reservan el mismo número.
func (r *SeriesRepo) IncrementNext(id string) (int64, error) {
	query := `
		UPDATE document_series
		SET next_number = next_number + 1, updated_at = now()
		WHERE id = $1
		RETURNING next_number - 1`
	var allocated int64
	err := r.q.QueryRow(context.Background(), query, id).Scan(&allocated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrSeriesNotFound
		}
		return 0, fmt.Errorf("increment series: %w", err)
	}
	return allocated, nil
}
