package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Cost     decimal.Decimal `json:"cost"`
	RRP      decimal.Decimal `json:"rrp"`
	B2BPrice decimal.Decimal `json:"b2b_price"`
}

// UpdateProductRequest edición de producto (punteros nil = sin cambio).
type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty"`
	Cost     *decimal.Decimal `json:"cost,omitempty"`
	RRP      *decimal.Decimal `json:"rrp,omitempty"`
	B2BPrice *decimal.Decimal `json:"b2b_price,omitempty"`
	Active   *bool            `json:"active,omitempty"`
}

// ProductResponse producto serializado.
type ProductResponse struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`
	RRP       decimal.Decimal `json:"rrp"`
	B2BPrice  decimal.Decimal `json:"b2b_price"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
}

// FromProduct convierte la entidad a respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		SKU:       p.SKU,
		Name:      p.Name,
		Cost:      p.Cost,
		RRP:       p.RRP,
		B2BPrice:  p.B2BPrice,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}
