package dto

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// CreateSeriesRequest alta de serie documental.
type CreateSeriesRequest struct {
	Code    string `json:"code"`
	Scope   string `json:"scope"`
	Prefix  string `json:"prefix"`
	Year    *int   `json:"year,omitempty"` // nil = serie sin año
	Padding int    `json:"padding"`
}

// SeriesResponse serie serializada.
type SeriesResponse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Scope      string    `json:"scope"`
	Prefix     string    `json:"prefix"`
	Year       *int      `json:"year,omitempty"`
	NextNumber int64     `json:"next_number"`
	Padding    int       `json:"padding"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromSeries convierte la entidad a respuesta.
func FromSeries(s *entity.DocumentSeries) SeriesResponse {
	return SeriesResponse{
		ID:         s.ID,
		Code:       s.Code,
		Scope:      s.Scope,
		Prefix:     s.Prefix,
		Year:       s.Year,
		NextNumber: s.NextNumber,
		Padding:    s.Padding,
		Active:     s.Active,
		CreatedAt:  s.CreatedAt,
	}
}
