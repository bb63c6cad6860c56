package ledger

import (
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// EndpointRule describe qué tipos de ubicación admite cada extremo de un
// movimiento. Un slice nil significa que el extremo debe quedar vacío.
type EndpointRule struct {
	FromTypes []string
	ToTypes   []string
}

var endpointRules = map[string]EndpointRule{
	entity.MoveTypePurchase: {
		ToTypes: []string{entity.LocationTypeWarehouse},
	},
	entity.MoveTypeTransfer: {
		FromTypes: []string{entity.LocationTypeWarehouse, entity.LocationTypeRetail},
		ToTypes:   []string{entity.LocationTypeWarehouse, entity.LocationTypeRetail},
	},
	entity.MoveTypeB2BSale: {
		FromTypes: []string{entity.LocationTypeWarehouse},
		ToTypes:   []string{entity.LocationTypeRetail},
	},
	entity.MoveTypeB2CSale: {
		FromTypes: []string{entity.LocationTypeWarehouse},
	},
}

// RuleFor devuelve la regla de extremos para un tipo de movimiento.
// Los ajustes y devoluciones no tienen regla fija de tipos: el ajuste
// admite cualquier ubicación activa según su dirección y la devolución
// hereda el origen de la venta original.
func RuleFor(moveType string) (EndpointRule, bool) {
	r, ok := endpointRules[moveType]
	return r, ok
}

// Allows indica si un tipo de ubicación está permitido en la lista.
func Allows(types []string, locType string) bool {
	for _, t := range types {
		if t == locType {
			return true
		}
	}
	return false
}

// ValidTransferPair aplica la restricción extra de los traslados:
// origen y destino distintos y nunca tienda -> tienda.
func ValidTransferPair(from, to *entity.Location) bool {
	if from == nil || to == nil || from.ID == to.ID {
		return false
	}
	if from.Type == entity.LocationTypeRetail && to.Type == entity.LocationTypeRetail {
		return false
	}
	return true
}

// SumBySKU agrupa cantidades por SKU. La guardia de stock negativo opera
// sobre el total por SKU: un movimiento no puede sobrevender partiendo la
// cantidad en varias líneas.
func SumBySKU(skus []string, quantities []int) map[string]int {
	sums := make(map[string]int, len(skus))
	for i, sku := range skus {
		sums[sku] += quantities[i]
	}
	return sums
}

// ValidMoveType indica si el tipo de movimiento es uno de los conocidos.
func ValidMoveType(t string) bool {
	switch t {
	case entity.MoveTypePurchase, entity.MoveTypeTransfer, entity.MoveTypeB2BSale,
		entity.MoveTypeB2CSale, entity.MoveTypeB2BReturn, entity.MoveTypeB2CReturn,
		entity.MoveTypeAdjust:
		return true
	}
	return false
}

// ValidChannel indica si el canal es uno de los conocidos.
func ValidChannel(c string) bool {
	switch c {
	case entity.ChannelB2B, entity.ChannelB2C, entity.ChannelInternal:
		return true
	}
	return false
}
