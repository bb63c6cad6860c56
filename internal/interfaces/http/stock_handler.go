package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	appledger "github.com/tu-usuario/almacen-pro/internal/application/ledger"
)

// StockHandler expone el stock derivado del libro.
type StockHandler struct {
	uc *appledger.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *appledger.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Stock godoc
// @Summary      Stock de una ubicación
// @Description  Lista, por SKU, el saldo derivado del libro completo.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la ubicación"
// @Success      200  {array}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/stock [get]
func (h *StockHandler) Stock(c *fiber.Ctx) error {
	items, err := h.uc.Stock(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StockItemResponse{SKU: it.SKU, Quantity: it.Quantity})
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Saldo de un SKU en una ubicación
// @Description  Σ entradas − Σ salidas del libro. Un par sin movimientos
//	devuelve 0, nunca 404.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la ubicación"
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/stock/{sku} [get]
func (h *StockHandler) Balance(c *fiber.Ctx) error {
	sku := c.Params("sku")
	qty, err := h.uc.Balance(c.Context(), c.Params("id"), sku)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockItemResponse{SKU: sku, Quantity: qty})
}
