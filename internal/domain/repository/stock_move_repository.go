package repository

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// StockMoveRepository define el puerto de persistencia del libro de
// movimientos. El saldo se deriva siempre del libro completo (suma de
// entradas menos salidas); no existe ninguna fila de "stock actual".
type StockMoveRepository interface {
	CreateMove(m *entity.StockMove) error
	CreateLine(l *entity.StockMoveLine) error
	// GetByID devuelve el movimiento con sus líneas, o nil si no existe.
	GetByID(id string) (*entity.StockMove, error)
	List(locationID string, from, to *time.Time, limit, offset int) ([]*entity.StockMove, error)

	// Balance deriva el stock de un SKU en una ubicación: Σ entradas − Σ salidas.
	// Un par sin líneas tiene saldo 0, no ausente.
	Balance(locationID, sku string) (int, error)
	// BalanceAll deriva el stock de todos los SKUs con líneas en la ubicación.
	BalanceAll(locationID string) (map[string]int, error)

	// ReturnedQuantities suma por SKU las devoluciones ya conciliadas contra
	// una venta (movimientos con related_move_id = saleID).
	ReturnedQuantities(saleID string) (map[string]int, error)
	// CountReturns cuenta las devoluciones ya conciliadas contra una venta,
	// para numerar la siguiente.
	CountReturns(saleID string) (int, error)

	// UpdateHeader persiste los únicos campos editables de la cabecera:
	// reference, notes, date, payment_status y paid_amount.
	UpdateHeader(m *entity.StockMove) error
	// SetReference asigna la referencia post-inserción (POS-<id>).
	SetReference(id, reference string) error

	// ClearRelated anula related_move_id en los movimientos que apuntan a
	// moveID (rompe el enlace de devoluciones antes de un borrado).
	ClearRelated(moveID string) error
	DeleteLines(moveID string) error
	Delete(id string) error
}
