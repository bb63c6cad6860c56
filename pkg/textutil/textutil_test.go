package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-pro/pkg/textutil"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "cajon grande", textutil.Fold("Cajón Grande"))
	assert.Equal(t, "pinon", textutil.Fold("PIÑÓN"))
	assert.Equal(t, "ya plegado", textutil.Fold("ya plegado"))
	assert.Equal(t, "", textutil.Fold(""))
}
