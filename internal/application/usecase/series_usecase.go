package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// SeriesUseCase administración de series documentales. Las series de los
// ámbitos estándar se auto-crean al primer uso; las de ámbitos
// personalizados se crean aquí.
type SeriesUseCase struct {
	seriesRepo repository.SeriesRepository
}

// NewSeriesUseCase construye el caso de uso.
func NewSeriesUseCase(seriesRepo repository.SeriesRepository) *SeriesUseCase {
	return &SeriesUseCase{seriesRepo: seriesRepo}
}

// SeriesInput datos de alta de una serie.
type SeriesInput struct {
	Code    string
	Scope   string
	Prefix  string
	Year    *int // nil = serie sin año
	Padding int
}

// Create da de alta una serie con contador en 1. Código duplicado -> ErrDuplicate.
func (uc *SeriesUseCase) Create(in SeriesInput) (*entity.DocumentSeries, error) {
	if in.Code == "" || in.Prefix == "" || !entity.ValidSeriesScope(in.Scope) {
		return nil, domain.ErrInvalidInput
	}
	padding := in.Padding
	if padding <= 0 {
		padding = 6
	}
	now := time.Now()
	s := &entity.DocumentSeries{
		ID:         uuid.New().String(),
		Code:       in.Code,
		Scope:      in.Scope,
		Prefix:     in.Prefix,
		Year:       in.Year,
		NextNumber: 1,
		Padding:    padding,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.seriesRepo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// List lista todas las series.
func (uc *SeriesUseCase) List() ([]*entity.DocumentSeries, error) {
	return uc.seriesRepo.List()
}
