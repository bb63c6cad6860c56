package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ClosureUseCase cierre de caja: lectura agregada de las ventas POS del
// día. Consume el libro, nunca lo muta.
type ClosureUseCase struct {
	closureRepo repository.ClosureRepository
}

// NewClosureUseCase construye el caso de uso.
func NewClosureUseCase(closureRepo repository.ClosureRepository) *ClosureUseCase {
	return &ClosureUseCase{closureRepo: closureRepo}
}

// DailyClosure devuelve el cierre del día indicado; warehouseID vacío
// agrega todas las bodegas.
func (uc *ClosureUseCase) DailyClosure(date time.Time, warehouseID string) (*entity.CashClosure, error) {
	return uc.closureRepo.DailyClosure(date, warehouseID)
}
