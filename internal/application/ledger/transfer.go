package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	ruleset "github.com/tu-usuario/almacen-pro/internal/domain/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TransferInput entrada para un traslado entre ubicaciones.
type TransferInput struct {
	FromID     string
	ToID       string
	CustomerID string
	Lines      []LineInput
	Date       time.Time
	Reference  string
	Notes      string
}

// CreateTransfer registra un traslado entre bodegas/tiendas. Origen y
// destino deben estar activos, ser bodega o tienda, distintos entre sí y
// nunca tienda -> tienda. La guardia de stock negativo corre sobre el
// origen. Si las notas llevan la marca DEPOSITO y no hay referencia
// explícita, se numera desde la serie de depósitos.
func (uc *LedgerUseCase) CreateTransfer(ctx context.Context, in TransferInput) (*entity.StockMove, error) {
	if err := validateLines(in.Lines); err != nil {
		return nil, err
	}
	rule, _ := ruleset.RuleFor(entity.MoveTypeTransfer)
	from, err := uc.requireActiveLocation(in.FromID, rule.FromTypes...)
	if err != nil {
		return nil, err
	}
	to, err := uc.requireActiveLocation(in.ToID, rule.ToTypes...)
	if err != nil {
		return nil, err
	}
	if !ruleset.ValidTransferPair(from, to) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireExistingSKUs(in.Lines); err != nil {
		return nil, err
	}

	now := time.Now()
	date := moveDate(in.Date)
	move := &entity.StockMove{
		ID:            uuid.New().String(),
		Type:          entity.MoveTypeTransfer,
		Channel:       entity.ChannelInternal,
		Date:          date,
		FromID:        strPtr(in.FromID),
		ToID:          strPtr(in.ToID),
		CustomerID:    strPtr(in.CustomerID),
		Reference:     in.Reference,
		Notes:         in.Notes,
		PaymentStatus: entity.PaymentPending,
		PaidAmount:    decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMoveRepository,
		seriesRepo repository.SeriesRepository,
		_ repository.ProductRepository,
	) error {
		if err := guardStock(movRepo, in.FromID, in.Lines); err != nil {
			return err
		}
		if move.Reference == "" && strings.Contains(strings.ToUpper(in.Notes), "DEPOSITO") {
			alloc, err := allocateReference(seriesRepo, entity.SeriesScopeDeposit, date, uc.seriesPadding)
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
