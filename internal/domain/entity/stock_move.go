package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	MoveTypePurchase  = "purchase"   // compra: entrada a bodega
	MoveTypeTransfer  = "transfer"   // traslado entre ubicaciones
	MoveTypeB2BSale   = "b2b_sale"   // venta mayorista: bodega -> tienda cliente
	MoveTypeB2CSale   = "b2c_sale"   // venta POS: bodega -> cliente final
	MoveTypeB2BReturn = "b2b_return" // devolución de venta B2B
	MoveTypeB2CReturn = "b2c_return" // devolución de venta B2C
	MoveTypeAdjust    = "adjust"     // ajuste manual (entrada o salida)
)

// Canal comercial del movimiento (para reportes y numeración).
const (
	ChannelB2B      = "B2B"
	ChannelB2C      = "B2C"
	ChannelInternal = "INTERNAL"
)

// Estados de pago de un movimiento.
const (
	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

// StockMove es la cabecera de un movimiento del libro de inventario.
// El libro es append-only: una vez creado, solo reference, notes, date y
// el estado de pago son editables; las líneas y el tipo nunca cambian.
// FromID es la ubicación que pierde stock y ToID la que gana; según el
// tipo de movimiento uno de los dos puede ser nil (el cliente absorbe
// el resto en las ventas, el proveedor en las compras).
type StockMove struct {
	ID            string
	Type          string
	Channel       string
	Date          time.Time
	FromID        *string
	ToID          *string
	CustomerID    *string
	RelatedMoveID *string // venta original que esta devolución concilia
	Reference     string  // vacío hasta que se asigna
	SeriesCode    *string
	SeriesYear    *int
	SeriesNumber  *int64
	Notes         string
	PaymentStatus string
	PaidAmount    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Lines []*StockMoveLine
}

// Total devuelve el importe total del movimiento: Σ cantidad·precio + extras.
func (m *StockMove) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range m.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		total = total.Add(l.AddOnPrice)
	}
	return total
}

// IsSale indica si el movimiento es una venta (B2B o B2C).
func (m *StockMove) IsSale() bool {
	return m.Type == MoveTypeB2BSale || m.Type == MoveTypeB2CSale
}

// ReturnType devuelve el tipo de devolución que concilia contra esta venta.
func (m *StockMove) ReturnType() string {
	if m.Type == MoveTypeB2BSale {
		return MoveTypeB2BReturn
	}
	return MoveTypeB2CReturn
}
