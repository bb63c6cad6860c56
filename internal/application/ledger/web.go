package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	ruleset "github.com/tu-usuario/almacen-pro/internal/domain/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// WebSaleInput entrada para el despacho de un pedido web.
type WebSaleInput struct {
	WarehouseID string
	CustomerID  string
	Lines       []LineInput
	Date        time.Time
	Reference   string
	Notes       string
}

// CreateWebSale registra el despacho de un pedido web como venta B2C:
// la bodega pierde stock, el pedido queda pendiente de conciliación de
// pago y, sin referencia explícita, se numera desde la serie web.
func (uc *LedgerUseCase) CreateWebSale(ctx context.Context, in WebSaleInput) (*entity.StockMove, error) {
	if err := validateLines(in.Lines); err != nil {
		return nil, err
	}
	rule, _ := ruleset.RuleFor(entity.MoveTypeB2CSale)
	if _, err := uc.requireActiveLocation(in.WarehouseID, rule.FromTypes...); err != nil {
		return nil, err
	}
	if err := uc.requireExistingSKUs(in.Lines); err != nil {
		return nil, err
	}

	now := time.Now()
	date := moveDate(in.Date)
	move := &entity.StockMove{
		ID:            uuid.New().String(),
		Type:          entity.MoveTypeB2CSale,
		Channel:       entity.ChannelB2C,
		Date:          date,
		FromID:        strPtr(in.WarehouseID),
		CustomerID:    strPtr(in.CustomerID),
		Reference:     in.Reference,
		Notes:         in.Notes,
		PaymentStatus: entity.PaymentPending,
		PaidAmount:    decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMoveRepository,
		seriesRepo repository.SeriesRepository,
		_ repository.ProductRepository,
	) error {
		if err := guardStock(movRepo, in.WarehouseID, in.Lines); err != nil {
			return err
		}
		if move.Reference == "" {
			alloc, err := allocateReference(seriesRepo, entity.SeriesScopeWeb, date, uc.seriesPadding)
			if err != nil {
				return err
			}
			applyAllocation(move, alloc)
		}
		return insertMoveWithLines(movRepo, move, in.Lines)
	})
	if err != nil {
		return nil, err
	}
	return move, nil
}
