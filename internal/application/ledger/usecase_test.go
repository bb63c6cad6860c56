package ledger_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/tu-usuario/almacen-pro/internal/application/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *appledger.LedgerUseCase
	db        *memoryDB
	warehouse *entity.Location
	retail    *entity.Location
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newMemoryDB()
	locRepo := &fakeLocationRepo{db: db}
	prodRepo := &fakeProductRepo{db: db}
	movRepo := &fakeMoveRepo{db: db}
	uc := appledger.NewLedgerUseCase(&fakeTxRunner{db: db}, locRepo, prodRepo, movRepo, 6)

	now := time.Now()
	warehouse := &entity.Location{ID: "wh-1", Type: entity.LocationTypeWarehouse, Name: "Bodega Central", Active: true, CreatedAt: now, UpdatedAt: now}
	retail := &entity.Location{ID: "rt-1", Type: entity.LocationTypeRetail, Name: "Tienda Centro", Active: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, locRepo.Create(warehouse))
	require.NoError(t, locRepo.Create(retail))

	for _, sku := range []string{"SKU-A", "SKU-B"} {
		require.NoError(t, prodRepo.Create(&entity.Product{
			SKU: sku, Name: "Producto " + sku, Active: true,
			Cost: decimal.NewFromInt(5), RRP: decimal.NewFromInt(10), B2BPrice: decimal.NewFromInt(8),
			CreatedAt: now, UpdatedAt: now,
		}))
	}
	return &fixture{uc: uc, db: db, warehouse: warehouse, retail: retail}
}

func (f *fixture) purchase(t *testing.T, sku string, qty int) *entity.StockMove {
	t.Helper()
	move, err := f.uc.CreatePurchase(context.Background(), appledger.PurchaseInput{
		ToID:  f.warehouse.ID,
		Lines: []appledger.LineInput{{SKU: sku, Quantity: qty, UnitCost: decimal.NewFromInt(5)}},
	})
	require.NoError(t, err)
	return move
}

func (f *fixture) posSale(t *testing.T, sku string, qty int) *entity.StockMove {
	t.Helper()
	move, err := f.uc.POSSale(context.Background(), appledger.POSSaleInput{
		WarehouseID: f.warehouse.ID,
		Lines:       []appledger.LineInput{{SKU: sku, Quantity: qty, UnitPrice: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)
	return move
}

func (f *fixture) balance(t *testing.T, locationID, sku string) int {
	t.Helper()
	qty, err := f.uc.Balance(context.Background(), locationID, sku)
	require.NoError(t, err)
	return qty
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo compra -> venta -> devolución
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloCompraVentaDevolucion(t *testing.T) {
	f := newFixture(t)

	f.purchase(t, "SKU-A", 10)
	assert.Equal(t, 10, f.balance(t, f.warehouse.ID, "SKU-A"))

	sale := f.posSale(t, "SKU-A", 4)
	assert.Equal(t, 6, f.balance(t, f.warehouse.ID, "SKU-A"))

	ret, err := f.uc.CreateReturn(context.Background(), appledger.ReturnInput{
		SaleID: sale.ID,
		Lines:  []appledger.ReturnLineInput{{SKU: "SKU-A", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, f.balance(t, f.warehouse.ID, "SKU-A"),
		"la devolución reingresa stock en el origen de la venta")
	assert.Equal(t, entity.MoveTypeB2CReturn, ret.Type)
	require.NotNil(t, ret.RelatedMoveID)
	assert.Equal(t, sale.ID, *ret.RelatedMoveID)

	returnable, err := f.uc.ReturnableQuantities(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, returnable["SKU-A"])
}

func TestSaldoSinMovimientosEsCero(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, 0, f.balance(t, f.warehouse.ID, "SKU-A"),
		"un par ubicación/SKU sin líneas tiene saldo 0, no ausente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardia de stock negativo
// ──────────────────────────────────────────────────────────────────────────────

func TestGuardiaStockInsuficiente(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 5)
	movesBefore := len(f.db.moves)

	_, err := f.uc.POSSale(context.Background(), appledger.POSSaleInput{
		WarehouseID: f.warehouse.ID,
		Lines:       []appledger.LineInput{{SKU: "SKU-A", Quantity: 8, UnitPrice: decimal.NewFromInt(10)}},
	})
	require.Error(t, err)

	var conflict *domain.StockConflictError
	require.ErrorAs(t, err, &conflict, "el error debe nombrar el SKU ofensor")
	assert.Equal(t, "SKU-A", conflict.SKU)
	assert.Equal(t, 5, conflict.Available)
	assert.Equal(t, 8, conflict.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, movesBefore, len(f.db.moves), "el rechazo no escribe nada")
	assert.Equal(t, 5, f.balance(t, f.warehouse.ID, "SKU-A"))
}

func TestGuardiaSumaLineasPartidas(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 5)

	// 3+3 del mismo SKU en dos líneas: la guardia opera sobre el total.
	_, err := f.uc.POSSale(context.Background(), appledger.POSSaleInput{
		WarehouseID: f.warehouse.ID,
		Lines: []appledger.LineInput{
			{SKU: "SKU-A", Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
			{SKU: "SKU-A", Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
		},
	})
	var conflict *domain.StockConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 6, conflict.Requested)
}

func TestVentaConStockNegativoPermitido(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 2)

	_, err := f.uc.POSSale(context.Background(), appledger.POSSaleInput{
		WarehouseID:        f.warehouse.ID,
		AllowNegativeStock: true,
		Lines:              []appledger.LineInput{{SKU: "SKU-A", Quantity: 5, UnitPrice: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)
	assert.Equal(t, -3, f.balance(t, f.warehouse.ID, "SKU-A"))
}

func TestAjusteSalida(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 3)

	_, err := f.uc.CreateAdjust(context.Background(), appledger.AdjustInput{
		LocationID: f.warehouse.ID,
		Direction:  appledger.AdjustOut,
		Lines:      []appledger.LineInput{{SKU: "SKU-A", Quantity: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = f.uc.CreateAdjust(context.Background(), appledger.AdjustInput{
		LocationID:          f.warehouse.ID,
		Direction:           appledger.AdjustOut,
		AllowNegativeAdjust: true,
		Lines:               []appledger.LineInput{{SKU: "SKU-A", Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, -2, f.balance(t, f.warehouse.ID, "SKU-A"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestTrasladoMueveSaldos(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)

	_, err := f.uc.CreateTransfer(context.Background(), appledger.TransferInput{
		FromID: f.warehouse.ID,
		ToID:   f.retail.ID,
		Lines:  []appledger.LineInput{{SKU: "SKU-A", Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, f.balance(t, f.warehouse.ID, "SKU-A"))
	assert.Equal(t, 4, f.balance(t, f.retail.ID, "SKU-A"))
}

func TestTrasladoTiendaATiendaRechazado(t *testing.T) {
	f := newFixture(t)
	locRepo := &fakeLocationRepo{db: f.db}
	now := time.Now()
	otherRetail := &entity.Location{ID: "rt-2", Type: entity.LocationTypeRetail, Name: "Tienda Norte", Active: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, locRepo.Create(otherRetail))

	_, err := f.uc.CreateTransfer(context.Background(), appledger.TransferInput{
		FromID: f.retail.ID,
		ToID:   otherRetail.ID,
		Lines:  []appledger.LineInput{{SKU: "SKU-A", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTrasladoDepositoNumerado(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)

	move, err := f.uc.CreateTransfer(context.Background(), appledger.TransferInput{
		FromID: f.warehouse.ID,
		ToID:   f.retail.ID,
		Notes:  "DEPOSITO cliente mayorista",
		Lines:  []appledger.LineInput{{SKU: "SKU-A", Quantity: 2}},
	})
	require.NoError(t, err)
	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("DEP-%d-000001", year), move.Reference)
}

// ──────────────────────────────────────────────────────────────────────────────
// Numeración documental
// ──────────────────────────────────────────────────────────────────────────────

func TestVentaB2BSerieAutoCreada(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)
	year := time.Now().Year()

	first, err := f.uc.CreateB2BSale(context.Background(), appledger.B2BSaleInput{
		FromID: f.warehouse.ID,
		ToID:   f.retail.ID,
		Lines:  []appledger.LineInput{{SKU: "SKU-A", Quantity: 1, UnitPrice: decimal.NewFromInt(8)}},
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("B2B-%d-000001", year), first.Reference,
		"sin serie configurada se auto-crea una anual empezando en 1")

	second, err := f.uc.CreateB2BSale(context.Background(), appledger.B2BSaleInput{
		FromID: f.warehouse.ID,
		ToID:   f.retail.ID,
		Lines:  []appledger.LineInput{{SKU: "SKU-A", Quantity: 1, UnitPrice: decimal.NewFromInt(8)}},
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("B2B-%d-000002", year), second.Reference,
		"la segunda venta consume el siguiente número, sin huecos ni repetidos")
}

func TestVentaB2BSerieExistente(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)
	now := time.Now()
	seriesRepo := &fakeSeriesRepo{db: f.db}
	require.NoError(t, seriesRepo.Create(&entity.DocumentSeries{
		ID: "s-fac", Code: "FAC", Scope: entity.SeriesScopeSaleB2B, Prefix: "FAC",
		NextNumber: 41, Padding: 4, Active: true, CreatedAt: now, UpdatedAt: now,
	}))

	move, err := f.uc.CreateB2BSale(context.Background(), appledger.B2BSaleInput{
		FromID: f.warehouse.ID,
		ToID:   f.retail.ID,
		Lines:  []appledger.LineInput{{SKU: "SKU-A", Quantity: 1, UnitPrice: decimal.NewFromInt(8)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "FAC-0041", move.Reference,
		"una serie configurada manda sobre la auto-creada y conserva su padding")
	assert.Equal(t, int64(42), f.db.series["s-fac"].NextNumber,
		"el número se reserva en la misma escritura que avanza el contador")
}

func TestSeriePaddingConfigurable(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)
	uc := appledger.NewLedgerUseCase(&fakeTxRunner{db: f.db},
		&fakeLocationRepo{db: f.db}, &fakeProductRepo{db: f.db}, &fakeMoveRepo{db: f.db}, 4)

	move, err := uc.CreateB2BSale(context.Background(), appledger.B2BSaleInput{
		FromID: f.warehouse.ID,
		ToID:   f.retail.ID,
		Lines:  []appledger.LineInput{{SKU: "SKU-A", Quantity: 1, UnitPrice: decimal.NewFromInt(8)}},
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("B2B-%d-0001", time.Now().Year()), move.Reference,
		"las series auto-creadas usan el padding configurado")
}

func TestVentaB2BDestinoDebeSerTienda(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)

	_, err := f.uc.CreateB2BSale(context.Background(), appledger.B2BSaleInput{
		FromID: f.warehouse.ID,
		ToID:   f.warehouse.ID,
		Lines:  []appledger.LineInput{{SKU: "SKU-A", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVentaWebSeriePropia(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)

	move, err := f.uc.CreateWebSale(context.Background(), appledger.WebSaleInput{
		WarehouseID: f.warehouse.ID,
		Lines:       []appledger.LineInput{{SKU: "SKU-A", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)
	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("WEB-%d-000001", year), move.Reference)
	assert.Equal(t, entity.PaymentPending, move.PaymentStatus,
		"el pedido web queda pendiente de conciliación de pago")
}

// ──────────────────────────────────────────────────────────────────────────────
// Venta POS
// ──────────────────────────────────────────────────────────────────────────────

func TestVentaPOSReferenciaYPago(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)

	move := f.posSale(t, "SKU-A", 2)
	assert.Equal(t, "POS-"+move.ID, move.Reference)
	assert.Equal(t, entity.PaymentPaid, move.PaymentStatus, "la venta de mostrador se cobra en caja")
	assert.True(t, move.PaidAmount.Equal(decimal.NewFromInt(20)))
}

func TestVentaRegalo(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)

	move, err := f.uc.POSSale(context.Background(), appledger.POSSaleInput{
		WarehouseID: f.warehouse.ID,
		GiftSale:    true,
		Lines:       []appledger.LineInput{{SKU: "SKU-A", Quantity: 3, UnitPrice: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)
	assert.True(t, move.Total().IsZero(), "un regalo fuerza los precios a cero")
	assert.Contains(t, move.Notes, "REGALO")
	assert.Equal(t, entity.PaymentPaid, move.PaymentStatus)
	assert.True(t, move.PaidAmount.IsZero())
	assert.Equal(t, 7, f.balance(t, f.warehouse.ID, "SKU-A"), "el regalo sigue consumiendo stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Devoluciones conciliadas
// ──────────────────────────────────────────────────────────────────────────────

func TestSobreDevolucionRechazada(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)
	sale := f.posSale(t, "SKU-A", 4)

	_, err := f.uc.CreateReturn(context.Background(), appledger.ReturnInput{
		SaleID: sale.ID,
		Lines:  []appledger.ReturnLineInput{{SKU: "SKU-A", Quantity: 2}},
	})
	require.NoError(t, err)

	// Quedan 2 devolvibles: pedir 3 debe fallar sin escribir nada.
	_, err = f.uc.CreateReturn(context.Background(), appledger.ReturnInput{
		SaleID: sale.ID,
		Lines:  []appledger.ReturnLineInput{{SKU: "SKU-A", Quantity: 3}},
	})
	var over *domain.OverReturnError
	require.ErrorAs(t, err, &over)
	assert.Equal(t, "SKU-A", over.SKU)
	assert.Equal(t, 2, over.Returnable)
	assert.Equal(t, 3, over.Requested)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.CreateReturn(context.Background(), appledger.ReturnInput{
		SaleID: sale.ID,
		Lines:  []appledger.ReturnLineInput{{SKU: "SKU-A", Quantity: 2}},
	})
	require.NoError(t, err, "devolver exactamente lo que queda es válido")
}

func TestDevolucionesParcialesSucesivas(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)
	sale := f.posSale(t, "SKU-A", 3)

	first, err := f.uc.CreateReturn(context.Background(), appledger.ReturnInput{
		SaleID: sale.ID,
		Lines:  []appledger.ReturnLineInput{{SKU: "SKU-A", Quantity: 1}},
	})
	require.NoError(t, err)

	second, err := f.uc.CreateReturn(context.Background(), appledger.ReturnInput{
		SaleID: sale.ID,
		Lines:  []appledger.ReturnLineInput{{SKU: "SKU-A", Quantity: 1}},
	})
	require.NoError(t, err, "una segunda devolución parcial de la misma venta debe poder registrarse")

	assert.Equal(t, "RETURN-"+sale.Reference, first.Reference)
	assert.Equal(t, "RETURN-"+sale.Reference+"-2", second.Reference,
		"la segunda devolución lleva sufijo ordinal para no chocar con la primera")

	returnable, err := f.uc.ReturnableQuantities(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, returnable["SKU-A"], "ambas devoluciones acumulan contra la venta")
}

func TestDevolucionConservaPrecioOriginal(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)
	sale, err := f.uc.POSSale(context.Background(), appledger.POSSaleInput{
		WarehouseID: f.warehouse.ID,
		Lines:       []appledger.LineInput{{SKU: "SKU-A", Quantity: 2, UnitPrice: decimal.NewFromInt(99)}},
	})
	require.NoError(t, err)

	ret, err := f.uc.CreateReturn(context.Background(), appledger.ReturnInput{
		SaleID: sale.ID,
		Lines:  []appledger.ReturnLineInput{{SKU: "SKU-A", Quantity: 1}},
	})
	require.NoError(t, err)
	require.Len(t, ret.Lines, 1)
	assert.True(t, ret.Lines[0].UnitPrice.Equal(decimal.NewFromInt(99)),
		"la devolución lleva el precio de la venta original")
	assert.Equal(t, "RETURN-"+sale.Reference, ret.Reference)
}

func TestDevolucionSKUAjeno(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)
	sale := f.posSale(t, "SKU-A", 2)

	_, err := f.uc.CreateReturn(context.Background(), appledger.ReturnInput{
		SaleID: sale.ID,
		Lines:  []appledger.ReturnLineInput{{SKU: "SKU-B", Quantity: 1}},
	})
	var over *domain.OverReturnError
	require.ErrorAs(t, err, &over, "devolver un SKU que no está en la venta es una sobredevolución")
	assert.Equal(t, "SKU-B", over.SKU)
}

func TestDevolucionContraNoVenta(t *testing.T) {
	f := newFixture(t)
	purchase := f.purchase(t, "SKU-A", 10)

	_, err := f.uc.CreateReturn(context.Background(), appledger.ReturnInput{
		SaleID: purchase.ID,
		Lines:  []appledger.ReturnLineInput{{SKU: "SKU-A", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras: auto-catalogación de SKUs
// ──────────────────────────────────────────────────────────────────────────────

func TestCompraVivificaSKUDesconocido(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreatePurchase(context.Background(), appledger.PurchaseInput{
		ToID: f.warehouse.ID,
		Lines: []appledger.LineInput{
			{SKU: "NUEVO-1", Name: "Producto Nuevo", Quantity: 3, UnitCost: decimal.NewFromInt(7)},
		},
	})
	require.NoError(t, err)

	stub := f.db.products["NUEVO-1"]
	require.NotNil(t, stub, "el SKU desconocido se auto-crea como stub")
	assert.Equal(t, "Producto Nuevo", stub.Name)
	assert.True(t, stub.Cost.Equal(decimal.NewFromInt(7)))
	assert.True(t, stub.RRP.IsZero(), "el stub nace sin precios de venta")
}

func TestCompraSinSKUReservaTemporal(t *testing.T) {
	f := newFixture(t)

	move, err := f.uc.CreatePurchase(context.Background(), appledger.PurchaseInput{
		ToID:  f.warehouse.ID,
		Lines: []appledger.LineInput{{Quantity: 2, UnitCost: decimal.NewFromInt(4)}},
	})
	require.NoError(t, err)
	require.Len(t, move.Lines, 1)
	assert.Equal(t, "TMP-0001", move.Lines[0].SKU)
	assert.NotNil(t, f.db.products["TMP-0001"])
}

func TestVentaSKUDesconocidoRechazada(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)

	_, err := f.uc.POSSale(context.Background(), appledger.POSSaleInput{
		WarehouseID: f.warehouse.ID,
		Lines:       []appledger.LineInput{{SKU: "FANTASMA", Quantity: 1}},
	})
	var missing *domain.MissingSKUError
	require.ErrorAs(t, err, &missing, "las ventas no auto-catalogan: rechazan")
	assert.Equal(t, []string{"FANTASMA"}, missing.SKUs)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarEstadoDePago(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)
	sale, err := f.uc.CreateB2BSale(context.Background(), appledger.B2BSaleInput{
		FromID: f.warehouse.ID,
		ToID:   f.retail.ID,
		Lines:  []appledger.LineInput{{SKU: "SKU-A", Quantity: 10, UnitPrice: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)
	ctx := context.Background()

	partial := entity.PaymentPartial
	forty := decimal.NewFromInt(40)
	require.NoError(t, f.uc.UpdateMove(ctx, sale.ID, appledger.UpdateMoveInput{
		PaymentStatus: &partial, PaidAmount: &forty,
	}))
	got, err := f.uc.GetMove(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPartial, got.PaymentStatus)
	assert.True(t, got.PaidAmount.Equal(forty))

	// Un monto que cubre el total promociona a paid aunque se pida partial.
	hundredFifty := decimal.NewFromInt(150)
	require.NoError(t, f.uc.UpdateMove(ctx, sale.ID, appledger.UpdateMoveInput{
		PaymentStatus: &partial, PaidAmount: &hundredFifty,
	}))
	got, err = f.uc.GetMove(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, got.PaymentStatus)
	assert.True(t, got.PaidAmount.Equal(decimal.NewFromInt(100)), "el monto se recorta al total")

	// partial con monto cero es inválido y no toca nada.
	zero := decimal.Zero
	err = f.uc.UpdateMove(ctx, sale.ID, appledger.UpdateMoveInput{
		PaymentStatus: &partial, PaidAmount: &zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	got, _ = f.uc.GetMove(ctx, sale.ID)
	assert.Equal(t, entity.PaymentPaid, got.PaymentStatus)
}

func TestBorrarVentaDesligaDevolucion(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-A", 10)
	sale := f.posSale(t, "SKU-A", 4)
	ret, err := f.uc.CreateReturn(context.Background(), appledger.ReturnInput{
		SaleID: sale.ID,
		Lines:  []appledger.ReturnLineInput{{SKU: "SKU-A", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteMove(context.Background(), sale.ID))

	_, err = f.uc.GetMove(context.Background(), sale.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.db.lines[sale.ID], "las líneas se borran con la cabecera")

	kept, err := f.uc.GetMove(context.Background(), ret.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.RelatedMoveID, "la devolución queda como histórico, sin enlace")

	// Sin la venta en el libro, el saldo refleja solo compra y devolución.
	assert.Equal(t, 11, f.balance(t, f.warehouse.ID, "SKU-A"))
}

func TestBorrarMovimientoInexistente(t *testing.T) {
	f := newFixture(t)
	err := f.uc.DeleteMove(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimientoSinLineasRechazado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreatePurchase(context.Background(), appledger.PurchaseInput{ToID: f.warehouse.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCantidadNoPositivaRechazada(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreatePurchase(context.Background(), appledger.PurchaseInput{
		ToID:  f.warehouse.ID,
		Lines: []appledger.LineInput{{SKU: "SKU-A", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.CreatePurchase(context.Background(), appledger.PurchaseInput{
		ToID:  f.warehouse.ID,
		Lines: []appledger.LineInput{{SKU: "SKU-A", Quantity: -2}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompraDestinoDebeSerBodega(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreatePurchase(context.Background(), appledger.PurchaseInput{
		ToID:  f.retail.ID,
		Lines: []appledger.LineInput{{SKU: "SKU-A", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUbicacionInactivaRechazada(t *testing.T) {
	f := newFixture(t)
	f.db.locations[f.warehouse.ID].Active = false

	_, err := f.uc.CreatePurchase(context.Background(), appledger.PurchaseInput{
		ToID:  f.warehouse.ID,
		Lines: []appledger.LineInput{{SKU: "SKU-A", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockOrdenadoPorSKU(t *testing.T) {
	f := newFixture(t)
	f.purchase(t, "SKU-B", 2)
	f.purchase(t, "SKU-A", 1)

	items, err := f.uc.Stock(context.Background(), f.warehouse.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "SKU-A", items[0].SKU)
	assert.Equal(t, "SKU-B", items[1].SKU)
}
