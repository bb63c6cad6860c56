package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para operadores.
type UserRepository interface {
	Create(u *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
