package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.ClosureRepository = (*ClosureRepo)(nil)

// ClosureRepo agrega ventas POS del libro para el cierre de caja diario.
// Solo lectura: nunca escribe nada.
type ClosureRepo struct {
	q Querier
}

// NewClosureRepository construye el adaptador.
func NewClosureRepository(q Querier) *ClosureRepo {
	return &ClosureRepo{q: q}
}

// DailyClosure agrega las ventas b2c_sale de un día natural [00:00, 24:00),
// opcionalmente filtradas por bodega de origen. Los tickets regalo se
// detectan por la marca REGALO en notes.
func (r *ClosureRepo) DailyClosure(date time.Time, warehouseID string) (*entity.CashClosure, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	closure := &entity.CashClosure{Date: dayStart, WarehouseID: warehouseID}

	headerQuery := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE notes LIKE '%REGALO%'),
		       COALESCE(SUM(paid_amount), 0)
		FROM stock_moves
		WHERE type = $1 AND date >= $2 AND date < $3`
	args := []any{entity.MoveTypeB2CSale, dayStart, dayEnd}
	if warehouseID != "" {
		headerQuery += ` AND from_id = $4`
		args = append(args, warehouseID)
	}
	err := r.q.QueryRow(context.Background(), headerQuery, args...).Scan(
		&closure.Tickets, &closure.GiftTickets, &closure.PaidTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("closure header totals: %w", err)
	}

	grossQuery := `
		SELECT COALESCE(SUM(l.quantity * l.unit_price + l.add_on_price), 0)
		FROM stock_move_lines l
		JOIN stock_moves m ON m.id = l.move_id
		WHERE m.type = $1 AND m.date >= $2 AND m.date < $3`
	if warehouseID != "" {
		grossQuery += ` AND m.from_id = $4`
	}
	if err := r.q.QueryRow(context.Background(), grossQuery, args...).Scan(&closure.GrossTotal); err != nil {
		return nil, fmt.Errorf("closure gross total: %w", err)
	}
	return closure, nil
}
