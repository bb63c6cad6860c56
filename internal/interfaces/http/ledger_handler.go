package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	appledger "github.com/tu-usuario/almacen-pro/internal/application/ledger"
)

// LedgerHandler maneja los movimientos administrativos del libro:
// compras, traslados, ventas B2B, ajustes, consultas y edición.
type LedgerHandler struct {
	uc *appledger.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *appledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

func toLineInputs(lines []dto.MoveLineRequest) []appledger.LineInput {
	out := make([]appledger.LineInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, appledger.LineInput{
			SKU:        l.SKU,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			UnitCost:   l.UnitCost,
			AddOnPrice: l.AddOnPrice,
			AddOnCost:  l.AddOnCost,
		})
	}
	return out
}

// CreatePurchase godoc
// @Summary      Registrar compra
// @Description  Recepción de mercancía en bodega. Los SKUs desconocidos se
//	auto-catalogan como stubs en la misma transacción.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "to_id y líneas"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ledger/purchases [post]
func (h *LedgerHandler) CreatePurchase(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	move, err := h.uc.CreatePurchase(c.Context(), appledger.PurchaseInput{
		ToID:      in.ToID,
		Lines:     toLineInputs(in.Lines),
		Date:      in.Date,
		Reference: in.Reference,
		Notes:     in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMove(move))
}

// CreateTransfer godoc
// @Summary      Registrar traslado
// @Description  Mueve stock entre bodegas/tiendas. Tienda a tienda no está
//	permitido. Notas con la marca DEPOSITO se numeran desde la serie de depósitos.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "from_id, to_id y líneas"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/transfers [post]
func (h *LedgerHandler) CreateTransfer(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	move, err := h.uc.CreateTransfer(c.Context(), appledger.TransferInput{
		FromID:     in.FromID,
		ToID:       in.ToID,
		CustomerID: in.CustomerID,
		Lines:      toLineInputs(in.Lines),
		Date:       in.Date,
		Reference:  in.Reference,
		Notes:      in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMove(move))
}

// CreateB2BSale godoc
// @Summary      Registrar venta B2B
// @Description  Venta mayorista bodega -> tienda cliente, numerada desde la
//	serie sale_b2b si no trae referencia.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateB2BSaleRequest  true  "from_id, to_id y líneas"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/b2b-sales [post]
func (h *LedgerHandler) CreateB2BSale(c *fiber.Ctx) error {
	var in dto.CreateB2BSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	move, err := h.uc.CreateB2BSale(c.Context(), appledger.B2BSaleInput{
		FromID:    in.FromID,
		ToID:      in.ToID,
		Lines:     toLineInputs(in.Lines),
		Date:      in.Date,
		Reference: in.Reference,
		Notes:     in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMove(move))
}

// CreateAdjust godoc
// @Summary      Registrar ajuste
// @Description  Ajuste manual de entrada o salida. La salida pasa guardia de
//	stock negativo salvo allow_negative_adjust.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdjustRequest  true  "location_id, direction (in|out) y líneas"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/adjustments [post]
func (h *LedgerHandler) CreateAdjust(c *fiber.Ctx) error {
	var in dto.CreateAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	move, err := h.uc.CreateAdjust(c.Context(), appledger.AdjustInput{
		LocationID:          in.LocationID,
		Direction:           in.Direction,
		Lines:               toLineInputs(in.Lines),
		AllowNegativeAdjust: in.AllowNegativeAdjust,
		Date:                in.Date,
		Reference:           in.Reference,
		Notes:               in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMove(move))
}

// GetMove godoc
// @Summary      Obtener movimiento
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MoveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/moves/{id} [get]
func (h *LedgerHandler) GetMove(c *fiber.Ctx) error {
	move, err := h.uc.GetMove(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromMove(move))
}

// ListMoves godoc
// @Summary      Listar movimientos
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por ubicación (origen o destino)"
// @Param        from         query  string  false  "Fecha inicial RFC3339"
// @Param        to           query  string  false  "Fecha final RFC3339 (exclusiva)"
// @Param        limit        query  int     false  "Máximo de resultados (por defecto 50)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.MoveResponse
// @Router       /api/ledger/moves [get]
func (h *LedgerHandler) ListMoves(c *fiber.Ctx) error {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badBody(c)
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badBody(c)
		}
		to = &t
	}
	moves, err := h.uc.ListMoves(c.Context(), c.Query("location_id"), from, to, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MoveResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, dto.FromMove(m))
	}
	return c.JSON(out)
}

// UpdateMove godoc
// @Summary      Editar movimiento
// @Description  Edita referencia, notas, fecha y estado de pago. Las líneas y
//	el tipo son inmutables; las correcciones de stock van por ajustes.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateMoveRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ledger/moves/{id} [patch]
func (h *LedgerHandler) UpdateMove(c *fiber.Ctx) error {
	var in dto.UpdateMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id := c.Params("id")
	err := h.uc.UpdateMove(c.Context(), id, appledger.UpdateMoveInput{
		Reference:     in.Reference,
		Notes:         in.Notes,
		Date:          in.Date,
		PaymentStatus: in.PaymentStatus,
		PaidAmount:    in.PaidAmount,
	})
	if err != nil {
		return respondError(c, err)
	}
	move, err := h.uc.GetMove(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromMove(move))
}

// DeleteMove godoc
// @Summary      Borrar movimiento
// @Description  Borra cabecera y líneas en una transacción y desliga las
//	devoluciones que apuntaban al movimiento. El stock derivado cambia en
//	consecuencia.
// @Tags         ledger
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/moves/{id} [delete]
func (h *LedgerHandler) DeleteMove(c *fiber.Ctx) error {
	if err := h.uc.DeleteMove(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
