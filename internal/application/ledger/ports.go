package ledger

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que movimiento, líneas, contador
// de serie y productos stub se confirmen o reviertan como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMoveRepository,
		seriesRepo repository.SeriesRepository,
		productRepo repository.ProductRepository,
	) error) error
}
