package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP. Los errores
// tipados se comprueban primero para poder dar detalle (SKU en conflicto,
// cantidades); el resto cae por sus centinelas.
func respondError(c *fiber.Ctx, err error) error {
	var stockErr *domain.StockConflictError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente de %s: disponible %d, solicitado %d", stockErr.SKU, stockErr.Available, stockErr.Requested),
		})
	}
	var overErr *domain.OverReturnError
	if errors.As(err, &overErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "OVER_RETURN",
			Message: fmt.Sprintf("devolución excede lo vendido de %s: devolvible %d, solicitado %d", overErr.SKU, overErr.Returnable, overErr.Requested),
		})
	}
	var missingErr *domain.MissingSKUError
	if errors.As(err, &missingErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "UNKNOWN_SKU",
			Message: fmt.Sprintf("SKUs no catalogados: %v", missingErr.SKUs),
		})
	}
	var seriesErr *domain.SeriesNotConfiguredError
	if errors.As(err, &seriesErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "SERIES_NOT_CONFIGURED",
			Message: fmt.Sprintf("no hay serie documental configurable para el ámbito %s", seriesErr.Scope),
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrSeriesNotFound):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SERIES_NOT_CONFIGURED", Message: "serie documental no configurada"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "operación en conflicto con el estado actual"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
