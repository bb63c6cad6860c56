package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrSeriesNotFound     = errors.New("serie documental no configurada")
)

// StockConflictError indica que una salida dejaría el stock en negativo.
// Nombra el primer SKU ofensor con el disponible y lo solicitado.
type StockConflictError struct {
	SKU       string
	Available int
	Requested int
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d", e.SKU, e.Available, e.Requested)
}

func (e *StockConflictError) Unwrap() error { return ErrInsufficientStock }

// OverReturnError indica que una devolución excede lo devolvible de la
// venta original para un SKU.
type OverReturnError struct {
	SKU        string
	Returnable int
	Requested  int
}

func (e *OverReturnError) Error() string {
	return fmt.Sprintf("devolución excede lo vendido para %s: devolvible %d, solicitado %d", e.SKU, e.Returnable, e.Requested)
}

func (e *OverReturnError) Unwrap() error { return ErrConflict }

// MissingSKUError lista los SKUs de una petición que no existen en el catálogo.
type MissingSKUError struct {
	SKUs []string
}

func (e *MissingSKUError) Error() string {
	return fmt.Sprintf("SKUs inexistentes: %s", strings.Join(e.SKUs, ", "))
}

func (e *MissingSKUError) Unwrap() error { return ErrInvalidInput }

// SeriesNotConfiguredError indica que no hay serie activa para un ámbito y
// el ámbito no tiene prefijo preferido para auto-crearla. Accionable por el
// operador: debe crear la serie manualmente.
type SeriesNotConfiguredError struct {
	Scope string
}

func (e *SeriesNotConfiguredError) Error() string {
	return fmt.Sprintf("no existe serie documental activa para el ámbito %q", e.Scope)
}

func (e *SeriesNotConfiguredError) Unwrap() error { return ErrSeriesNotFound }
