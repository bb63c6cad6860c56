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

// POSSaleInput entrada para una venta de mostrador.
type POSSaleInput struct {
	WarehouseID        string
	Channel            string // B2C por defecto
	CustomerID         string
	Lines              []LineInput
	GiftSale           bool
	AllowNegativeStock bool
	PaymentMethod      string
	Date               time.Time
	Reference          string
	Notes              string
}

// POSSale registra una venta de mostrador: la bodega pierde stock y el
// cliente absorbe el resto (toId vacío). Un regalo fuerza los precios a
// cero y marca REGALO en las notas, pero sigue consumiendo stock y pasando
// la guardia. Si no hay referencia, se asigna POS-<id> tras la inserción,
// dentro de la misma transacción. La venta queda pagada con su total.
func (uc *LedgerUseCase) POSSale(ctx context.Context, in POSSaleInput) (*entity.StockMove, error) {
	if err := validateLines(in.Lines); err != nil {
		return nil, err
	}
	channel := in.Channel
	if channel == "" {
		channel = entity.ChannelB2C
	}
	if !ruleset.ValidChannel(channel) {
		return nil, domain.ErrInvalidInput
	}
	rule, _ := ruleset.RuleFor(entity.MoveTypeB2CSale)
	if _, err := uc.requireActiveLocation(in.WarehouseID, rule.FromTypes...); err != nil {
		return nil, err
	}
	if err := uc.requireExistingSKUs(in.Lines); err != nil {
		return nil, err
	}

	lines := make([]LineInput, len(in.Lines))
	copy(lines, in.Lines)
	notes := in.Notes
	if in.GiftSale {
		for i := range lines {
			lines[i].UnitPrice = decimal.Zero
			lines[i].AddOnPrice = decimal.Zero
		}
		if !strings.Contains(notes, "REGALO") {
			notes = strings.TrimSpace(notes + " REGALO")
		}
	}
	if in.PaymentMethod != "" {
		notes = strings.TrimSpace(notes + " PAGO:" + in.PaymentMethod)
	}

	now := time.Now()
	move := &entity.StockMove{
		ID:            uuid.New().String(),
		Type:          entity.MoveTypeB2CSale,
		Channel:       channel,
		Date:          moveDate(in.Date),
		FromID:        strPtr(in.WarehouseID),
		CustomerID:    strPtr(in.CustomerID),
		Reference:     in.Reference,
		Notes:         notes,
		PaymentStatus: entity.PaymentPending,
		PaidAmount:    decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMoveRepository,
		_ repository.SeriesRepository,
		_ repository.ProductRepository,
	) error {
		if !in.AllowNegativeStock {
			if err := guardStock(movRepo, in.WarehouseID, lines); err != nil {
				return err
			}
		}
		if err := insertMoveWithLines(movRepo, move, lines); err != nil {
			return err
		}
		if move.Reference == "" {
			move.Reference = ruleset.POSReference(move.ID)
			if err := movRepo.SetReference(move.ID, move.Reference); err != nil {
				return err
			}
		}
		// Venta de mostrador: cobrada en caja al emitirse.
		status, paid, err := ruleset.NormalizePayment(entity.PaymentPaid, move.Total(), move.Total())
		if err != nil {
			return err
		}
		move.PaymentStatus = status
		move.PaidAmount = paid
		return movRepo.UpdateHeader(move)
	})
	if err != nil {
		return nil, err
	}
	return move, nil
}
