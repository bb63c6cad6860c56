package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// SeriesRepository define el puerto de persistencia de las series
// documentales. El par FindForScope + IncrementNext debe ejecutarse dentro
// de la misma transacción que inserta el movimiento numerado.
type SeriesRepository interface {
	Create(s *entity.DocumentSeries) error
	List() ([]*entity.DocumentSeries, error)
	// FindForScope busca la serie activa para un ámbito y año: prefiere el
	// código preferido, luego serie con año sobre serie sin año, y en empate
	// la más antigua. Devuelve nil si no hay ninguna.
	FindForScope(scope, preferredCode string, year int) (*entity.DocumentSeries, error)
	// IncrementNext avanza el contador de la serie en una sola escritura y
	// devuelve el número reservado (el valor previo al incremento). El
	// bloqueo de fila del UPDATE serializa reservas concurrentes.
	IncrementNext(id string) (int64, error)
}
