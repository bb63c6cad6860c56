package ledger

import (
	"fmt"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// Prefijo preferido por ámbito para buscar o auto-crear series.
var preferredSeriesCodes = map[string]string{
	entity.SeriesScopeSaleB2C: "B2C",
	entity.SeriesScopeSaleB2B: "B2B",
	entity.SeriesScopeReturn:  "DEV",
	entity.SeriesScopeDeposit: "DEP",
	entity.SeriesScopeWeb:     "WEB",
}

// PreferredSeriesCode devuelve el código de serie preferido para un ámbito.
// Los ámbitos personalizados no tienen preferido: el operador debe crear la
// serie a mano.
func PreferredSeriesCode(scope string) (string, bool) {
	code, ok := preferredSeriesCodes[scope]
	return code, ok
}

// FormatReference construye la referencia legible de una serie:
// prefijo + "-" + [año + "-"] + número con ceros a la izquierda.
func FormatReference(prefix string, year *int, number int64, padding int) string {
	if year != nil {
		return fmt.Sprintf("%s-%d-%0*d", prefix, *year, padding, number)
	}
	return fmt.Sprintf("%s-%0*d", prefix, padding, number)
}

// ReturnReference construye la referencia de una devolución a partir de la
// referencia de la venta original, o de su ID si la venta no tiene una.
// sequence es el ordinal de la devolución dentro de la venta: la primera no
// lleva sufijo y las siguientes añaden -2, -3, ... para que varias
// devoluciones parciales de la misma venta no choquen en el índice único
// de referencias.
func ReturnReference(saleReference, saleID string, sequence int) string {
	base := saleReference
	if base == "" {
		base = saleID
	}
	if sequence <= 1 {
		return "RETURN-" + base
	}
	return fmt.Sprintf("RETURN-%s-%d", base, sequence)
}

// POSReference es la referencia auto-generada de una venta POS sin serie.
func POSReference(moveID string) string {
	return "POS-" + moveID
}
