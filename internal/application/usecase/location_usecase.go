package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// LocationUseCase administración de ubicaciones (bodegas, tiendas,
// ubicaciones virtuales). El borrado es siempre lógico: Active=false.
type LocationUseCase struct {
	locationRepo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locationRepo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo}
}

// Create da de alta una ubicación activa.
func (uc *LocationUseCase) Create(locType, name string) (*entity.Location, error) {
	if name == "" || !entity.ValidLocationType(locType) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	loc := &entity.Location{
		ID:        uuid.New().String(),
		Type:      locType,
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locationRepo.Create(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// List lista ubicaciones; includeInactive incluye las retiradas.
func (uc *LocationUseCase) List(includeInactive bool) ([]*entity.Location, error) {
	return uc.locationRepo.List(includeInactive)
}

// GetByID devuelve una ubicación por ID.
func (uc *LocationUseCase) GetByID(id string) (*entity.Location, error) {
	loc, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return loc, nil
}

// Update cambia nombre y/o actividad. Desactivar no borra: los movimientos
// históricos siguen referenciando la ubicación.
func (uc *LocationUseCase) Update(id string, name *string, active *bool) (*entity.Location, error) {
	loc, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		if *name == "" {
			return nil, domain.ErrInvalidInput
		}
		loc.Name = *name
	}
	if active != nil {
		loc.Active = *active
	}
	loc.UpdatedAt = time.Now()
	if err := uc.locationRepo.Update(loc); err != nil {
		return nil, err
	}
	return loc, nil
}
