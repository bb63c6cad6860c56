package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// PurchaseInput entrada para registrar una compra (entrada a bodega).
type PurchaseInput struct {
	ToID      string
	Lines     []LineInput
	Date      time.Time
	Reference string
	Notes     string
}

// CreatePurchase registra la recepción de mercancía en una bodega.
// Los SKUs desconocidos no bloquean la recepción: se auto-crea un producto
// stub dentro de la misma transacción (con el SKU recibido, o con uno
// temporal TMP-NNNN del contador compartido si la línea no trae SKU).
// Las compras no pasan guardia de stock: solo suman.
func (uc *LedgerUseCase) CreatePurchase(ctx context.Context, in PurchaseInput) (*entity.StockMove, error) {
	if err := validateLines(in.Lines); err != nil {
		return nil, err
	}
	if _, err := uc.requireActiveLocation(in.ToID, entity.LocationTypeWarehouse); err != nil {
		return nil, err
	}

	now := time.Now()
	date := moveDate(in.Date)
	move := &entity.StockMove{
		ID:            uuid.New().String(),
		Type:          entity.MoveTypePurchase,
		Channel:       entity.ChannelInternal,
		Date:          date,
		ToID:          strPtr(in.ToID),
		Reference:     in.Reference,
		Notes:         in.Notes,
		PaymentStatus: entity.PaymentPending,
		PaidAmount:    decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	lines := make([]LineInput, len(in.Lines))
	copy(lines, in.Lines)

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMoveRepository,
		_ repository.SeriesRepository,
		productRepo repository.ProductRepository,
	) error {
		for i := range lines {
			if err := vivifySKU(productRepo, &lines[i], now); err != nil {
				return err
			}
		}
		return insertMoveWithLines(movRepo, move, lines)
	})
	if err != nil {
		return nil, err
	}
	return move, nil
}

// vivifySKU garantiza que la línea referencia un producto existente:
// si el SKU no existe se crea un stub, y si la línea llega sin SKU se
// reserva uno temporal del contador compartido.
func vivifySKU(productRepo repository.ProductRepository, line *LineInput, now time.Time) error {
	if line.SKU != "" {
		existing, err := productRepo.GetBySKU(line.SKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
	} else {
		sku, err := productRepo.NextTempSKU()
		if err != nil {
			return err
		}
		line.SKU = sku
	}
	name := line.Name
	if name == "" {
		name = line.SKU
	}
	stub := &entity.Product{
		SKU:       line.SKU,
		Name:      name,
		Cost:      line.UnitCost,
		RRP:       decimal.Zero,
		B2BPrice:  decimal.Zero,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return productRepo.Create(stub)
}
