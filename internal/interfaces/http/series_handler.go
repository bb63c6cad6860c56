package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
)

// SeriesHandler maneja las series de numeración documental.
type SeriesHandler struct {
	uc *usecase.SeriesUseCase
}

// NewSeriesHandler construye el handler.
func NewSeriesHandler(uc *usecase.SeriesUseCase) *SeriesHandler {
	return &SeriesHandler{uc: uc}
}

// Create godoc
// @Summary      Crear serie documental
// @Tags         series
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSeriesRequest  true  "code, scope, prefix, year opcional, padding"
// @Success      201   {object}  dto.SeriesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/series [post]
func (h *SeriesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSeriesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.uc.Create(usecase.SeriesInput{
		Code:    in.Code,
		Scope:   in.Scope,
		Prefix:  in.Prefix,
		Year:    in.Year,
		Padding: in.Padding,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromSeries(s))
}

// List godoc
// @Summary      Listar series documentales
// @Tags         series
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SeriesResponse
// @Router       /api/series [get]
func (h *SeriesHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SeriesResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.FromSeries(s))
	}
	return c.JSON(out)
}
