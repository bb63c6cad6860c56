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

// B2BSaleInput entrada para una venta mayorista bodega -> tienda cliente.
type B2BSaleInput struct {
	FromID    string
	ToID      string
	Lines     []LineInput
	Date      time.Time
	Reference string
	Notes     string
}

// CreateB2BSale registra una venta B2B: el origen debe ser una bodega
// activa y el destino una tienda activa. Pasa guardia de stock sobre el
// origen y, si no trae referencia explícita, se numera desde la serie
// sale_b2b dentro de la misma transacción.
func (uc *LedgerUseCase) CreateB2BSale(ctx context.Context, in B2BSaleInput) (*entity.StockMove, error) {
	if err := validateLines(in.Lines); err != nil {
		return nil, err
	}
	rule, _ := ruleset.RuleFor(entity.MoveTypeB2BSale)
	if _, err := uc.requireActiveLocation(in.FromID, rule.FromTypes...); err != nil {
		return nil, err
	}
	if _, err := uc.requireActiveLocation(in.ToID, rule.ToTypes...); err != nil {
		return nil, err
	}
	if err := uc.requireExistingSKUs(in.Lines); err != nil {
		return nil, err
	}

	now := time.Now()
	date := moveDate(in.Date)
	move := &entity.StockMove{
		ID:            uuid.New().String(),
		Type:          entity.MoveTypeB2BSale,
		Channel:       entity.ChannelB2B,
		Date:          date,
		FromID:        strPtr(in.FromID),
		ToID:          strPtr(in.ToID),
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
		if err := guardStock(movRepo, in.FromID, in.Lines); err != nil {
			return err
		}
		if move.Reference == "" {
			alloc, err := allocateReference(seriesRepo, entity.SeriesScopeSaleB2B, date, uc.seriesPadding)
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
