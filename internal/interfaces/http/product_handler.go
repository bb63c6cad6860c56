package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
)

// ProductHandler maneja el catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "sku, name y precios"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.uc.Create(usecase.ProductInput{
		SKU:      in.SKU,
		Name:     in.Name,
		Cost:     in.Cost,
		RRP:      in.RRP,
		B2BPrice: in.B2BPrice,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(p))
}

// List godoc
// @Summary      Buscar productos
// @Description  Busca por SKU o nombre, insensible a mayúsculas y acentos.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Texto de búsqueda"
// @Param        limit   query  int     false  "Máximo de resultados (por defecto 50)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	list, err := h.uc.List(c.Query("q"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromProduct(p))
	}
	return c.JSON(out)
}

// GetBySKU godoc
// @Summary      Obtener producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	p, err := h.uc.GetBySKU(c.Params("sku"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromProduct(p))
}

// Update godoc
// @Summary      Editar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{sku} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.uc.Update(c.Params("sku"), in.Name, in.Cost, in.RRP, in.B2BPrice, in.Active)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromProduct(p))
}
