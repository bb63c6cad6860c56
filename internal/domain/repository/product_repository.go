package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para el catálogo.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetBySKU(sku string) (*entity.Product, error)
	// MissingSKUs devuelve, en el orden recibido, los SKUs que no existen.
	MissingSKUs(skus []string) ([]string, error)
	List(search string, limit, offset int) ([]*entity.Product, error)
	Update(p *entity.Product) error
	// NextTempSKU reserva el siguiente SKU temporal (TMP-0001, TMP-0002, …)
	// del contador compartido. Llamar dentro de la transacción que crea el
	// producto stub.
	NextTempSKU() (string, error)
}
