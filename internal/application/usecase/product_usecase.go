package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/textutil"
)

// ProductUseCase administración del catálogo de SKUs.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// ProductInput datos de alta/edición de un producto.
type ProductInput struct {
	SKU      string
	Name     string
	Cost     decimal.Decimal
	RRP      decimal.Decimal
	B2BPrice decimal.Decimal
}

// Create da de alta un producto. SKU duplicado -> ErrDuplicate.
func (uc *ProductUseCase) Create(in ProductInput) (*entity.Product, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.LessThan(decimal.Zero) || in.RRP.LessThan(decimal.Zero) || in.B2BPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		SKU:       in.SKU,
		Name:      in.Name,
		Cost:      in.Cost,
		RRP:       in.RRP,
		B2BPrice:  in.B2BPrice,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetBySKU devuelve un producto por SKU.
func (uc *ProductUseCase) GetBySKU(sku string) (*entity.Product, error) {
	p, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// List busca en el catálogo. El término se normaliza sin acentos
// ("almacén" y "almacen" encuentran lo mismo).
func (uc *ProductUseCase) List(search string, limit, offset int) ([]*entity.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.List(textutil.Fold(search), limit, offset)
}

// Update edita nombre, precios y actividad de un producto.
func (uc *ProductUseCase) Update(sku string, name *string, cost, rrp, b2bPrice *decimal.Decimal, active *bool) (*entity.Product, error) {
	p, err := uc.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if name != nil {
		if *name == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Name = *name
	}
	if cost != nil {
		p.Cost = *cost
	}
	if rrp != nil {
		p.RRP = *rrp
	}
	if b2bPrice != nil {
		p.B2BPrice = *b2bPrice
	}
	if active != nil {
		p.Active = *active
	}
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}
