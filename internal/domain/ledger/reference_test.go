package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/ledger"
)

func TestFormatReference(t *testing.T) {
	year := 2025
	assert.Equal(t, "B2B-2025-000001", ledger.FormatReference("B2B", &year, 1, 6))
	assert.Equal(t, "DEV-2025-000042", ledger.FormatReference("DEV", &year, 42, 6))
	assert.Equal(t, "WEB-0007", ledger.FormatReference("WEB", nil, 7, 4),
		"serie sin año: el segmento del año se omite")
	assert.Equal(t, "B2C-2025-1000000", ledger.FormatReference("B2C", &year, 1000000, 6),
		"un número que desborda el padding no se trunca")
}

func TestPreferredSeriesCode(t *testing.T) {
	code, ok := ledger.PreferredSeriesCode(entity.SeriesScopeSaleB2B)
	require.True(t, ok)
	assert.Equal(t, "B2B", code)

	_, ok = ledger.PreferredSeriesCode("consignacion")
	assert.False(t, ok, "los ámbitos personalizados no tienen preferido")
}

func TestReturnReference(t *testing.T) {
	assert.Equal(t, "RETURN-B2B-2025-000003", ledger.ReturnReference("B2B-2025-000003", "id-1", 1))
	assert.Equal(t, "RETURN-id-1", ledger.ReturnReference("", "id-1", 1),
		"sin referencia original se usa el ID de la venta")
	assert.Equal(t, "RETURN-B2B-2025-000003-2", ledger.ReturnReference("B2B-2025-000003", "id-1", 2),
		"la segunda devolución de la misma venta lleva sufijo ordinal")
	assert.Equal(t, "RETURN-id-1-3", ledger.ReturnReference("", "id-1", 3))
	assert.Equal(t, "RETURN-X", ledger.ReturnReference("X", "id-1", 0),
		"ordinal no positivo se trata como la primera")
}

func TestPOSReference(t *testing.T) {
	assert.Equal(t, "POS-abc", ledger.POSReference("abc"))
}
