package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/ledger"
)

func loc(id, typ string) *entity.Location {
	return &entity.Location{ID: id, Type: typ, Active: true}
}

func TestRuleFor_TiposConRegla(t *testing.T) {
	rule, ok := ledger.RuleFor(entity.MoveTypePurchase)
	require.True(t, ok)
	assert.Nil(t, rule.FromTypes, "una compra no tiene origen: el proveedor absorbe")
	assert.Equal(t, []string{entity.LocationTypeWarehouse}, rule.ToTypes)

	rule, ok = ledger.RuleFor(entity.MoveTypeB2CSale)
	require.True(t, ok)
	assert.Equal(t, []string{entity.LocationTypeWarehouse}, rule.FromTypes)
	assert.Nil(t, rule.ToTypes, "una venta POS no tiene destino: el cliente absorbe")
}

func TestRuleFor_AjustesYDevolucionesSinRegla(t *testing.T) {
	_, ok := ledger.RuleFor(entity.MoveTypeAdjust)
	assert.False(t, ok)
	_, ok = ledger.RuleFor(entity.MoveTypeB2CReturn)
	assert.False(t, ok)
}

func TestValidTransferPair(t *testing.T) {
	w1 := loc("w1", entity.LocationTypeWarehouse)
	w2 := loc("w2", entity.LocationTypeWarehouse)
	r1 := loc("r1", entity.LocationTypeRetail)
	r2 := loc("r2", entity.LocationTypeRetail)

	assert.True(t, ledger.ValidTransferPair(w1, w2))
	assert.True(t, ledger.ValidTransferPair(w1, r1))
	assert.True(t, ledger.ValidTransferPair(r1, w1))
	assert.False(t, ledger.ValidTransferPair(r1, r2), "tienda -> tienda no está permitido")
	assert.False(t, ledger.ValidTransferPair(w1, w1), "origen y destino deben ser distintos")
	assert.False(t, ledger.ValidTransferPair(nil, w1))
}

func TestSumBySKU_AgrupaLineasPartidas(t *testing.T) {
	sums := ledger.SumBySKU([]string{"A", "B", "A"}, []int{3, 1, 2})
	assert.Equal(t, map[string]int{"A": 5, "B": 1}, sums)
}

func TestAllows(t *testing.T) {
	types := []string{entity.LocationTypeWarehouse, entity.LocationTypeRetail}
	assert.True(t, ledger.Allows(types, entity.LocationTypeRetail))
	assert.False(t, ledger.Allows(types, entity.LocationTypeVirtual))
	assert.False(t, ledger.Allows(nil, entity.LocationTypeWarehouse))
}

func TestValidMoveTypeYCanal(t *testing.T) {
	assert.True(t, ledger.ValidMoveType(entity.MoveTypeTransfer))
	assert.False(t, ledger.ValidMoveType("loan"))
	assert.True(t, ledger.ValidChannel(entity.ChannelB2C))
	assert.False(t, ledger.ValidChannel("b2c"))
}
