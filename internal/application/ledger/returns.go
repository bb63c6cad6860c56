package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	ruleset "github.com/tu-usuario/almacen-pro/internal/domain/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ReturnLineInput es una línea de devolución: SKU y cantidad a devolver.
type ReturnLineInput struct {
	SKU      string
	Quantity int
}

// ReturnInput entrada para conciliar una devolución contra una venta.
type ReturnInput struct {
	SaleID string
	Lines  []ReturnLineInput
	Notes  string
	Date   time.Time
}

// CreateReturn concilia una devolución contra su venta original. Por cada
// SKU exige solicitado <= vendido - ya devuelto, donde lo ya devuelto suma
// todas las devoluciones previas con relatedMoveId = venta. La devolución
// entra en la ubicación origen de la venta, lleva el precio unitario de la
// venta original (nunca uno nuevo) y referencia RETURN-<ref original o id>,
// con sufijo ordinal a partir de la segunda devolución de la misma venta.
func (uc *LedgerUseCase) CreateReturn(ctx context.Context, in ReturnInput) (*entity.StockMove, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.SKU == "" || l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	sale, err := uc.moveRepo.GetByID(in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !sale.IsSale() || sale.FromID == nil {
		return nil, domain.ErrInvalidInput
	}

	// Vendido por SKU: un mismo SKU puede venir partido en varias líneas.
	soldBySKU := make(map[string]int, len(sale.Lines))
	priceBySKU := make(map[string]decimal.Decimal, len(sale.Lines))
	costBySKU := make(map[string]decimal.Decimal, len(sale.Lines))
	for _, l := range sale.Lines {
		soldBySKU[l.SKU] += l.Quantity
		priceBySKU[l.SKU] = l.UnitPrice
		costBySKU[l.SKU] = l.UnitCost
	}

	now := time.Now()
	saleID := in.SaleID
	move := &entity.StockMove{
		ID:            uuid.New().String(),
		Type:          sale.ReturnType(),
		Channel:       sale.Channel,
		Date:          moveDate(in.Date),
		ToID:          sale.FromID,
		CustomerID:    sale.CustomerID,
		RelatedMoveID: &saleID,
		Notes:         in.Notes,
		PaymentStatus: entity.PaymentPending,
		PaidAmount:    decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMoveRepository,
		_ repository.SeriesRepository,
		_ repository.ProductRepository,
	) error {
		// Lo ya devuelto se lee dentro de la transacción para que dos
		// devoluciones consecutivas vean el acumulado comprometido.
		returned, err := movRepo.ReturnedQuantities(in.SaleID)
		if err != nil {
			return err
		}
		// La referencia lleva el ordinal de la devolución dentro de la
		// venta: la segunda parcial no puede repetir la de la primera.
		prior, err := movRepo.CountReturns(in.SaleID)
		if err != nil {
			return err
		}
		move.Reference = ruleset.ReturnReference(sale.Reference, sale.ID, prior+1)
		requested := make(map[string]int, len(in.Lines))
		for _, l := range in.Lines {
			requested[l.SKU] += l.Quantity
		}
		for _, l := range in.Lines {
			sold, inSale := soldBySKU[l.SKU]
			returnable := sold - returned[l.SKU]
			if !inSale || requested[l.SKU] > returnable {
				if returnable < 0 {
					returnable = 0
				}
				return &domain.OverReturnError{SKU: l.SKU, Returnable: returnable, Requested: requested[l.SKU]}
			}
		}

		lines := make([]LineInput, 0, len(in.Lines))
		for _, l := range in.Lines {
			lines = append(lines, LineInput{
				SKU:       l.SKU,
				Quantity:  l.Quantity,
				UnitPrice: priceBySKU[l.SKU],
				UnitCost:  costBySKU[l.SKU],
			})
		}
		return insertMoveWithLines(movRepo, move, lines)
	})
	if err != nil {
		return nil, err
	}
	return move, nil
}

// ReturnableQuantities devuelve, por SKU, cuánto queda por devolver de una
// venta (vendido menos devoluciones conciliadas).
func (uc *LedgerUseCase) ReturnableQuantities(ctx context.Context, saleID string) (map[string]int, error) {
	sale, err := uc.moveRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !sale.IsSale() {
		return nil, domain.ErrInvalidInput
	}
	returned, err := uc.moveRepo.ReturnedQuantities(saleID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int)
	for _, l := range sale.Lines {
		out[l.SKU] += l.Quantity
	}
	for sku, qty := range returned {
		out[sku] -= qty
	}
	return out, nil
}
