package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
)

// ClosureHandler expone el cierre de caja diario.
type ClosureHandler struct {
	uc *usecase.ClosureUseCase
}

// NewClosureHandler construye el handler.
func NewClosureHandler(uc *usecase.ClosureUseCase) *ClosureHandler {
	return &ClosureHandler{uc: uc}
}

// Daily godoc
// @Summary      Cierre de caja diario
// @Description  Agrega las ventas POS de un día natural: tickets, regalos,
//	bruto y cobrado. Solo lectura sobre el libro.
// @Tags         closures
// @Security     Bearer
// @Produce      json
// @Param        date          query  string  false  "Día YYYY-MM-DD (por defecto hoy)"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Success      200  {object}  dto.ClosureResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/closures/daily [get]
func (h *ClosureHandler) Daily(c *fiber.Ctx) error {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badBody(c)
		}
		date = parsed
	}
	closure, err := h.uc.DailyClosure(date, c.Query("warehouse_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ClosureResponse{
		Date:        closure.Date,
		WarehouseID: closure.WarehouseID,
		Tickets:     closure.Tickets,
		GiftTickets: closure.GiftTickets,
		GrossTotal:  closure.GrossTotal,
		PaidTotal:   closure.PaidTotal,
	})
}
