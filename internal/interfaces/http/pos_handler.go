package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	appledger "github.com/tu-usuario/almacen-pro/internal/application/ledger"
)

// POSHandler maneja los flujos de mostrador: ventas POS, pedidos web y
// devoluciones conciliadas.
type POSHandler struct {
	uc *appledger.LedgerUseCase
}

// NewPOSHandler construye el handler.
func NewPOSHandler(uc *appledger.LedgerUseCase) *POSHandler {
	return &POSHandler{uc: uc}
}

// Sale godoc
// @Summary      Registrar venta POS
// @Description  Venta de mostrador pagada al momento. gift_sale fuerza los
//	precios a cero pero sigue consumiendo stock; allow_negative_stock salta la
//	guardia de stock negativo.
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.POSSaleRequest  true  "warehouse_id y líneas"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/sales [post]
func (h *POSHandler) Sale(c *fiber.Ctx) error {
	var in dto.POSSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	move, err := h.uc.POSSale(c.Context(), appledger.POSSaleInput{
		WarehouseID:        in.WarehouseID,
		Channel:            in.Channel,
		CustomerID:         in.CustomerID,
		Lines:              toLineInputs(in.Lines),
		GiftSale:           in.GiftSale,
		AllowNegativeStock: in.AllowNegativeStock,
		PaymentMethod:      in.PaymentMethod,
		Date:               in.Date,
		Reference:          in.Reference,
		Notes:              in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMove(move))
}

// WebSale godoc
// @Summary      Registrar despacho de pedido web
// @Description  Despacho de un pedido web: sale stock de bodega y el pago
//	queda pendiente de conciliación. Se numera desde la serie web.
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WebSaleRequest  true  "warehouse_id y líneas"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/web-sales [post]
func (h *POSHandler) WebSale(c *fiber.Ctx) error {
	var in dto.WebSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	move, err := h.uc.CreateWebSale(c.Context(), appledger.WebSaleInput{
		WarehouseID: in.WarehouseID,
		CustomerID:  in.CustomerID,
		Lines:       toLineInputs(in.Lines),
		Date:        in.Date,
		Reference:   in.Reference,
		Notes:       in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMove(move))
}

// Return godoc
// @Summary      Registrar devolución
// @Description  Concilia una devolución contra su venta original: por SKU no
//	se puede devolver más de lo vendido menos lo ya devuelto. El stock vuelve
//	a la ubicación origen de la venta con los precios originales.
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReturnRequest  true  "sale_id y líneas"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/returns [post]
func (h *POSHandler) Return(c *fiber.Ctx) error {
	var in dto.CreateReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	lines := make([]appledger.ReturnLineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, appledger.ReturnLineInput{SKU: l.SKU, Quantity: l.Quantity})
	}
	move, err := h.uc.CreateReturn(c.Context(), appledger.ReturnInput{
		SaleID: in.SaleID,
		Lines:  lines,
		Notes:  in.Notes,
		Date:   in.Date,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMove(move))
}

// Returnable godoc
// @Summary      Cantidades devolvibles de una venta
// @Description  Por SKU: vendido menos ya devuelto.
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  map[string]int
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pos/sales/{id}/returnable [get]
func (h *POSHandler) Returnable(c *fiber.Ctx) error {
	quantities, err := h.uc.ReturnableQuantities(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quantities)
}
