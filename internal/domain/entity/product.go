package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un SKU del catálogo. El SKU es la clave primaria
// (string legible y estable); los productos se retiran con Active=false,
// nunca se borran: las líneas de movimiento los referencian para siempre.
type Product struct {
	SKU       string
	Name      string
	Cost      decimal.Decimal
	RRP       decimal.Decimal // precio de venta al público (B2C)
	B2BPrice  decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
