package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// LocationRepository define el puerto de persistencia para ubicaciones.
// Las ubicaciones nunca se borran: se desactivan con Active=false.
type LocationRepository interface {
	Create(loc *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List(includeInactive bool) ([]*entity.Location, error)
	Update(loc *entity.Location) error
}
