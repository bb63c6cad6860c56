package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// Direcciones de un ajuste manual.
const (
	AdjustIn  = "in"
	AdjustOut = "out"
)

// AdjustInput entrada para un ajuste manual de inventario.
type AdjustInput struct {
	LocationID          string
	Direction           string // in | out
	Lines               []LineInput
	AllowNegativeAdjust bool
	Date                time.Time
	Reference           string
	Notes               string
}

// CreateAdjust registra un ajuste sobre cualquier ubicación activa.
// Dirección in: la ubicación gana stock (solo toId). Dirección out: la
// ubicación pierde stock (solo fromId) y pasa la guardia de stock negativo
// salvo que AllowNegativeAdjust esté activo.
func (uc *LedgerUseCase) CreateAdjust(ctx context.Context, in AdjustInput) (*entity.StockMove, error) {
	if in.Direction != AdjustIn && in.Direction != AdjustOut {
		return nil, domain.ErrInvalidInput
	}
	if err := validateLines(in.Lines); err != nil {
		return nil, err
	}
	if _, err := uc.requireActiveLocation(in.LocationID); err != nil {
		return nil, err
	}
	if err := uc.requireExistingSKUs(in.Lines); err != nil {
		return nil, err
	}

	now := time.Now()
	move := &entity.StockMove{
		ID:            uuid.New().String(),
		Type:          entity.MoveTypeAdjust,
		Channel:       entity.ChannelInternal,
		Date:          moveDate(in.Date),
		Reference:     in.Reference,
		Notes:         in.Notes,
		PaymentStatus: entity.PaymentPending,
		PaidAmount:    decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.Direction == AdjustIn {
		move.ToID = strPtr(in.LocationID)
	} else {
		move.FromID = strPtr(in.LocationID)
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMoveRepository,
		_ repository.SeriesRepository,
		_ repository.ProductRepository,
	) error {
		if in.Direction == AdjustOut && !in.AllowNegativeAdjust {
			if err := guardStock(movRepo, in.LocationID, in.Lines); err != nil {
				return err
			}
		}
		return insertMoveWithLines(movRepo, move, in.Lines)
	})
	if err != nil {
		return nil, err
	}
	return move, nil
}
