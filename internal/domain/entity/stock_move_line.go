package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMoveLine es una línea SKU/cantidad/precio dentro de un StockMove.
// La cantidad es siempre un entero positivo: el signo del efecto sobre el
// stock lo determina el tipo del movimiento padre, nunca la línea.
// Las líneas son inmutables: las correcciones se hacen con movimientos de
// ajuste, no editando líneas.
type StockMoveLine struct {
	ID         string
	MoveID     string
	SKU        string
	Quantity   int
	UnitPrice  decimal.Decimal
	UnitCost   decimal.Decimal
	AddOnPrice decimal.Decimal // accesorios añadidos en POS
	AddOnCost  decimal.Decimal
	CreatedAt  time.Time
}
