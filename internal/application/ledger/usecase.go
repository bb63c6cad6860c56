package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// LedgerUseCase registra movimientos del libro de inventario de forma
// transaccional: valida extremos y SKUs, aplica la guardia de stock
// negativo, reserva referencia de serie si aplica e inserta cabecera y
// líneas con Commit o Rollback.
type LedgerUseCase struct {
	txRunner      TxRunner
	locationRepo  repository.LocationRepository
	productRepo   repository.ProductRepository
	moveRepo      repository.StockMoveRepository // atado al pool, solo lecturas
	seriesPadding int                            // ancho del número en series auto-creadas
}

// NewLedgerUseCase construye el caso de uso. seriesPadding <= 0 usa el
// ancho por defecto (6).
func NewLedgerUseCase(
	txRunner TxRunner,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	moveRepo repository.StockMoveRepository,
	seriesPadding int,
) *LedgerUseCase {
	if seriesPadding <= 0 {
		seriesPadding = 6
	}
	return &LedgerUseCase{
		txRunner:      txRunner,
		locationRepo:  locationRepo,
		productRepo:   productRepo,
		moveRepo:      moveRepo,
		seriesPadding: seriesPadding,
	}
}

// LineInput es una línea candidata de un movimiento.
// Name solo se usa en flujos de compra para nombrar productos auto-creados.
type LineInput struct {
	SKU        string
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	UnitCost   decimal.Decimal
	AddOnPrice decimal.Decimal
	AddOnCost  decimal.Decimal
}

// validateLines rechaza movimientos sin líneas o con cantidades no positivas.
func validateLines(lines []LineInput) error {
	if len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// requireActiveLocation busca la ubicación y exige que exista, esté activa
// y sea de uno de los tipos permitidos (lista vacía = cualquier tipo).
func (uc *LedgerUseCase) requireActiveLocation(id string, allowedTypes ...string) (*entity.Location, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	loc, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil || !loc.Active {
		return nil, domain.ErrNotFound
	}
	if len(allowedTypes) > 0 && !ledger.Allows(allowedTypes, loc.Type) {
		return nil, domain.ErrInvalidInput
	}
	return loc, nil
}

// requireExistingSKUs exige que todos los SKUs de las líneas existan en el
// catálogo. Los flujos de compra no lo usan: allí el SKU faltante se
// auto-crea en vez de rechazar.
func (uc *LedgerUseCase) requireExistingSKUs(lines []LineInput) error {
	skus := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.SKU == "" {
			return domain.ErrInvalidInput
		}
		skus = append(skus, l.SKU)
	}
	missing, err := uc.productRepo.MissingSKUs(skus)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &domain.MissingSKUError{SKUs: missing}
	}
	return nil
}

// guardStock aplica la guardia de stock negativo sobre una ubicación que
// pierde stock. Suma primero las cantidades por SKU (un movimiento no puede
// sobrevender partiendo un SKU en varias líneas) y falla con el primer SKU
// cuyo saldo resultante sería negativo. Se ejecuta dentro de la misma
// transacción que insertará el movimiento; no es una barrera de
// serialización (ver nota de concurrencia en el repositorio).
func guardStock(movRepo repository.StockMoveRepository, locationID string, lines []LineInput) error {
	skus := make([]string, len(lines))
	qtys := make([]int, len(lines))
	for i, l := range lines {
		skus[i] = l.SKU
		qtys[i] = l.Quantity
	}
	sums := ledger.SumBySKU(skus, qtys)
	// Recorre en orden de líneas para que el SKU reportado sea determinista.
	seen := make(map[string]bool, len(sums))
	for _, sku := range skus {
		if seen[sku] {
			continue
		}
		seen[sku] = true
		balance, err := movRepo.Balance(locationID, sku)
		if err != nil {
			return err
		}
		if balance-sums[sku] < 0 {
			return &domain.StockConflictError{SKU: sku, Available: balance, Requested: sums[sku]}
		}
	}
	return nil
}

// insertMoveWithLines persiste la cabecera y todas sus líneas.
func insertMoveWithLines(movRepo repository.StockMoveRepository, m *entity.StockMove, lines []LineInput) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if err := movRepo.CreateMove(m); err != nil {
		return err
	}
	for _, in := range lines {
		line := &entity.StockMoveLine{
			ID:         uuid.New().String(),
			MoveID:     m.ID,
			SKU:        in.SKU,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			UnitCost:   in.UnitCost,
			AddOnPrice: in.AddOnPrice,
			AddOnCost:  in.AddOnCost,
			CreatedAt:  m.CreatedAt,
		}
		if err := movRepo.CreateLine(line); err != nil {
			return err
		}
		m.Lines = append(m.Lines, line)
	}
	return nil
}

// moveDate normaliza la fecha del movimiento: cero = ahora.
func moveDate(d time.Time) time.Time {
	if d.IsZero() {
		return time.Now()
	}
	return d
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
