package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
)

// LocationHandler maneja las ubicaciones (bodegas, tiendas, virtuales).
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "type (warehouse|retail|virtual) y name"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	loc, err := h.uc.Create(in.Type, in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromLocation(loc))
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        include_inactive  query  bool  false  "Incluir ubicaciones desactivadas"
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.QueryBool("include_inactive"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.FromLocation(l))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ubicación
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	loc, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromLocation(loc))
}

// Update godoc
// @Summary      Editar ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ubicación"
// @Param        body  body  dto.UpdateLocationRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.LocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	loc, err := h.uc.Update(c.Params("id"), in.Name, in.Active)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromLocation(loc))
}
