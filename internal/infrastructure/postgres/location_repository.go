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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación sobre PostgreSQL (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación.
func (r *LocationRepo) Create(loc *entity.Location) error {
	if loc.ID == "" {
		loc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO locations (id, type, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		loc.ID, loc.Type, loc.Name, loc.Active, loc.CreatedAt, loc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID, o nil si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `
		SELECT id, type, name, active, created_at, updated_at
		FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Type, &l.Name, &l.Active, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// List lista ubicaciones, activas por defecto.
func (r *LocationRepo) List(includeInactive bool) ([]*entity.Location, error) {
	query := `
		SELECT id, type, name, active, created_at, updated_at
		FROM locations`
	if !includeInactive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Type, &l.Name, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update persiste nombre y actividad.
func (r *LocationRepo) Update(loc *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, active = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, loc.ID, loc.Name, loc.Active, loc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
