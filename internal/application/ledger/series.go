package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// allocateReference reserva el siguiente número de la serie de un ámbito.
// Debe llamarse con un SeriesRepository atado a la transacción que insertará
// el movimiento numerado: el incremento del contador se confirma o revierte
// junto con él. Un rollback posterior deja un hueco en la numeración, nunca
// un duplicado.
//
// Algoritmo:
//  1. year = año de la fecha del movimiento.
//  2. Busca serie activa del ámbito con (year IS NULL OR year = año),
//     prefiriendo el código preferido del ámbito, luego serie con año sobre
//     serie sin año, y en empate la creada primero.
//  3. Si no hay y el ámbito tiene código preferido, auto-crea una serie
//     anual con nextNumber=1 y el padding configurado.
//  4. Si sigue sin haber, error de configuración nombrando el ámbito.
//  5. Incrementa el contador en una sola escritura (el UPDATE devuelve el
//     número reservado y su bloqueo de fila serializa reservas
//     concurrentes) y formatea la referencia.
func allocateReference(seriesRepo repository.SeriesRepository, scope string, date time.Time, padding int) (*entity.SeriesAllocation, error) {
	year := date.Year()
	preferred, hasPreferred := ledger.PreferredSeriesCode(scope)

	s, err := seriesRepo.FindForScope(scope, preferred, year)
	if err != nil {
		return nil, err
	}
	if s == nil {
		if !hasPreferred {
			return nil, &domain.SeriesNotConfiguredError{Scope: scope}
		}
		now := time.Now()
		y := year
		s = &entity.DocumentSeries{
			ID:         uuid.New().String(),
			Code:       preferred,
			Scope:      scope,
			Prefix:     preferred,
			Year:       &y,
			NextNumber: 1,
			Padding:    padding,
			Active:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := seriesRepo.Create(s); err != nil {
			return nil, err
		}
	}

	number, err := seriesRepo.IncrementNext(s.ID)
	if err != nil {
		return nil, err
	}
	return &entity.SeriesAllocation{
		Reference:    ledger.FormatReference(s.Prefix, s.Year, number, s.Padding),
		SeriesCode:   s.Code,
		SeriesYear:   s.Year,
		SeriesNumber: number,
	}, nil
}

// applyAllocation copia la reserva de serie a la cabecera del movimiento.
func applyAllocation(m *entity.StockMove, alloc *entity.SeriesAllocation) {
	m.Reference = alloc.Reference
	m.SeriesCode = &alloc.SeriesCode
	m.SeriesYear = alloc.SeriesYear
	n := alloc.SeriesNumber
	m.SeriesNumber = &n
}
