package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// StockItem es una entrada del listado de stock de una ubicación.
type StockItem struct {
	SKU      string
	Quantity int
}

// Balance deriva el stock de un SKU en una ubicación a partir del libro
// completo. Un par sin movimientos vale 0. La ubicación debe existir, pero
// no hace falta que esté activa: la actividad solo se exige al crear
// movimientos, no en lecturas históricas.
func (uc *LedgerUseCase) Balance(ctx context.Context, locationID, sku string) (int, error) {
	loc, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return 0, err
	}
	if loc == nil {
		return 0, domain.ErrNotFound
	}
	return uc.moveRepo.Balance(locationID, sku)
}

// Stock lista el stock derivado de todos los SKUs con movimientos en la
// ubicación, ordenado por SKU.
func (uc *LedgerUseCase) Stock(ctx context.Context, locationID string) ([]StockItem, error) {
	loc, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	balances, err := uc.moveRepo.BalanceAll(locationID)
	if err != nil {
		return nil, err
	}
	items := make([]StockItem, 0, len(balances))
	for sku, qty := range balances {
		items = append(items, StockItem{SKU: sku, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SKU < items[j].SKU })
	return items, nil
}

// GetMove devuelve un movimiento con sus líneas.
func (uc *LedgerUseCase) GetMove(ctx context.Context, id string) (*entity.StockMove, error) {
	move, err := uc.moveRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if move == nil {
		return nil, domain.ErrNotFound
	}
	return move, nil
}

// ListMoves lista movimientos que tocan una ubicación en un rango de fechas.
func (uc *LedgerUseCase) ListMoves(ctx context.Context, locationID string, from, to *time.Time, limit, offset int) ([]*entity.StockMove, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.moveRepo.List(locationID, from, to, limit, offset)
}
