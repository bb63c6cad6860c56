package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/ledger"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestNormalizePayment(t *testing.T) {
	total := d("100")

	cases := []struct {
		name       string
		status     string
		paid       decimal.Decimal
		wantStatus string
		wantPaid   decimal.Decimal
		wantErr    bool
	}{
		{"paid fija el monto al total", entity.PaymentPaid, d("30"), entity.PaymentPaid, d("100"), false},
		{"pending fija el monto a cero", entity.PaymentPending, d("30"), entity.PaymentPending, d("0"), false},
		{"partial conserva el monto", entity.PaymentPartial, d("40"), entity.PaymentPartial, d("40"), false},
		{"partial con monto igual al total promociona a paid", entity.PaymentPartial, d("100"), entity.PaymentPaid, d("100"), false},
		{"pending con monto mayor al total promociona a paid", entity.PaymentPending, d("150"), entity.PaymentPaid, d("100"), false},
		{"partial con monto cero es inválido", entity.PaymentPartial, d("0"), "", decimal.Zero, true},
		{"monto negativo es inválido", entity.PaymentPaid, d("-1"), "", decimal.Zero, true},
		{"estado desconocido es inválido", "settled", d("10"), "", decimal.Zero, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, paid, err := ledger.NormalizePayment(tc.status, tc.paid, total)
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, status)
			assert.True(t, tc.wantPaid.Equal(paid), "esperado %s, obtenido %s", tc.wantPaid, paid)
		})
	}
}

func TestNormalizePayment_VentaGratuita(t *testing.T) {
	// Un regalo tiene total cero: queda paid con monto cero.
	status, paid, err := ledger.NormalizePayment(entity.PaymentPaid, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, status)
	assert.True(t, paid.IsZero())
}
