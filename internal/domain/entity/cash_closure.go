package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashClosure es la foto diaria, de solo lectura, de las ventas POS:
// un consumidor agregado del libro, nunca una fuente de verdad.
type CashClosure struct {
	Date        time.Time
	WarehouseID string // vacío = todas las bodegas
	Tickets     int
	GiftTickets int
	GrossTotal  decimal.Decimal
	PaidTotal   decimal.Decimal
}
