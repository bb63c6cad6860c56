package entity

import "time"

// Ámbitos de numeración documental.
const (
	SeriesScopeSaleB2C = "sale_b2c"
	SeriesScopeSaleB2B = "sale_b2b"
	SeriesScopeReturn  = "return"
	SeriesScopeDeposit = "deposit"
	SeriesScopeWeb     = "web"
)

// DocumentSeries es un contador con nombre que emite referencias
// secuenciales legibles (ej. B2B-2025-000001). NextNumber solo crece y su
// incremento ocurre dentro de la misma transacción que consume el número:
// los huecos por rollback son aceptables, los duplicados no.
type DocumentSeries struct {
	ID         string
	Code       string // único
	Scope      string
	Prefix     string
	Year       *int // nil = serie sin año ("evergreen")
	NextNumber int64
	Padding    int
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SeriesAllocation es el resultado de reservar un número de una serie.
type SeriesAllocation struct {
	Reference    string
	SeriesCode   string
	SeriesYear   *int
	SeriesNumber int64
}

// ValidSeriesScope indica si el ámbito es uno de los conocidos.
// Se permiten ámbitos personalizados al crear series manualmente; solo los
// conocidos tienen prefijo preferido para auto-creación.
func ValidSeriesScope(s string) bool {
	return s != ""
}
