package entity

import "time"

// Tipos de ubicación física o virtual donde puede residir stock.
const (
	LocationTypeWarehouse = "warehouse" // bodega central
	LocationTypeRetail    = "retail"    // tienda / punto de venta
	LocationTypeVirtual   = "virtual"   // ubicación lógica (mermas, tránsito)
)

// Location representa una bodega, tienda o ubicación virtual.
// Nunca se borra físicamente: los movimientos históricos la referencian
// de forma permanente; se retira con Active=false.
type Location struct {
	ID        string
	Type      string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidLocationType indica si el tipo de ubicación es uno de los conocidos.
func ValidLocationType(t string) bool {
	switch t {
	case LocationTypeWarehouse, LocationTypeRetail, LocationTypeVirtual:
		return true
	}
	return false
}
