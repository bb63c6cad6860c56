package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// NormalizePayment aplica la máquina de estados de pago de un movimiento:
//
//	paid    -> paidAmount = total
//	pending -> paidAmount = 0
//	partial -> exige 0 < paidAmount < total
//
// Regla derivada: si paidAmount >= total el estado queda en paid aunque se
// haya pedido otro. Devuelve el estado y monto finales.
func NormalizePayment(status string, paid, total decimal.Decimal) (string, decimal.Decimal, error) {
	if paid.LessThan(decimal.Zero) {
		return "", decimal.Zero, domain.ErrInvalidInput
	}
	if paid.GreaterThanOrEqual(total) {
		return entity.PaymentPaid, total, nil
	}
	switch status {
	case entity.PaymentPaid:
		return entity.PaymentPaid, total, nil
	case entity.PaymentPending:
		return entity.PaymentPending, decimal.Zero, nil
	case entity.PaymentPartial:
		if !paid.GreaterThan(decimal.Zero) {
			return "", decimal.Zero, domain.ErrInvalidInput
		}
		return entity.PaymentPartial, paid, nil
	}
	return "", decimal.Zero, domain.ErrInvalidInput
}
