package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

func TestStockMove_Total(t *testing.T) {
	move := &entity.StockMove{
		Lines: []*entity.StockMoveLine{
			{Quantity: 2, UnitPrice: decimal.NewFromInt(10), AddOnPrice: decimal.NewFromInt(3)},
			{Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
		},
	}
	// 2*10 + 3 + 1*5 = 28; los extras se suman una vez por línea, no por unidad.
	assert.True(t, move.Total().Equal(decimal.NewFromInt(28)), "total: %s", move.Total())
}

func TestStockMove_TotalSinLineas(t *testing.T) {
	move := &entity.StockMove{}
	assert.True(t, move.Total().IsZero())
}

func TestStockMove_ReturnType(t *testing.T) {
	b2b := &entity.StockMove{Type: entity.MoveTypeB2BSale}
	b2c := &entity.StockMove{Type: entity.MoveTypeB2CSale}
	assert.Equal(t, entity.MoveTypeB2BReturn, b2b.ReturnType())
	assert.Equal(t, entity.MoveTypeB2CReturn, b2c.ReturnType())
	assert.True(t, b2b.IsSale())
	assert.False(t, (&entity.StockMove{Type: entity.MoveTypeTransfer}).IsSale())
}
