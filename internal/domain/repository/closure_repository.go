package repository

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ClosureRepository define el puerto de lectura para el cierre de caja:
// agregados diarios sobre las ventas POS del libro.
type ClosureRepository interface {
	DailyClosure(date time.Time, warehouseID string) (*entity.CashClosure, error)
}
