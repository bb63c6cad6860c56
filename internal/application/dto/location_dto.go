package dto

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// CreateLocationRequest alta de ubicación.
type CreateLocationRequest struct {
	Type string `json:"type"` // warehouse | retail | virtual
	Name string `json:"name"`
}

// UpdateLocationRequest edición de ubicación (punteros nil = sin cambio).
type UpdateLocationRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// LocationResponse ubicación serializada.
type LocationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// FromLocation convierte la entidad a respuesta.
func FromLocation(l *entity.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID,
		Type:      l.Type,
		Name:      l.Name,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
	}
}
