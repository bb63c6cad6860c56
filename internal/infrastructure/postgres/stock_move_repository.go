package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). El saldo se calcula siempre agregando el libro.
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

const moveColumns = `
	id, type, channel, date, from_id, to_id, customer_id, related_move_id,
	reference, series_code, series_year, series_number, notes,
	payment_status, paid_amount, created_at, updated_at`

// reference se guarda como NULL cuando está vacía (índice único parcial);
// al leer se pliega de vuelta a "".
const selectMoveColumns = `
	id, type, channel, date, from_id, to_id, customer_id, related_move_id,
	COALESCE(reference, ''), series_code, series_year, series_number, notes,
	payment_status, paid_amount, created_at, updated_at`

func scanMove(row pgx.Row) (*entity.StockMove, error) {
	var m entity.StockMove
	err := row.Scan(
		&m.ID, &m.Type, &m.Channel, &m.Date, &m.FromID, &m.ToID,
		&m.CustomerID, &m.RelatedMoveID, &m.Reference,
		&m.SeriesCode, &m.SeriesYear, &m.SeriesNumber, &m.Notes,
		&m.PaymentStatus, &m.PaidAmount, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMove inserta la cabecera. Referencia duplicada -> domain.ErrDuplicate.
func (r *StockMoveRepo) CreateMove(m *entity.StockMove) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_moves (` + moveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Type, m.Channel, m.Date, m.FromID, m.ToID,
		m.CustomerID, m.RelatedMoveID, nullIfEmpty(m.Reference),
		m.SeriesCode, m.SeriesYear, m.SeriesNumber, m.Notes,
		m.PaymentStatus, m.PaidAmount, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create move: %w", err)
	}
	return nil
}

// CreateLine inserta una línea del movimiento.
func (r *StockMoveRepo) CreateLine(l *entity.StockMoveLine) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_move_lines
			(id, move_id, sku, quantity, unit_price, unit_cost, add_on_price, add_on_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.MoveID, l.SKU, l.Quantity, l.UnitPrice, l.UnitCost,
		l.AddOnPrice, l.AddOnCost, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create move line: %w", err)
	}
	return nil
}

// GetByID devuelve el movimiento con sus líneas, o nil si no existe.
func (r *StockMoveRepo) GetByID(id string) (*entity.StockMove, error) {
	query := `SELECT ` + selectMoveColumns + ` FROM stock_moves WHERE id = $1`
	m, err := scanMove(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get move: %w", err)
	}
	lines, err := r.linesFor(m.ID)
	if err != nil {
		return nil, err
	}
	m.Lines = lines
	return m, nil
}

func (r *StockMoveRepo) linesFor(moveID string) ([]*entity.StockMoveLine, error) {
	query := `
		SELECT id, move_id, sku, quantity, unit_price, unit_cost, add_on_price, add_on_cost, created_at
		FROM stock_move_lines WHERE move_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, moveID)
	if err != nil {
		return nil, fmt.Errorf("get move lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.StockMoveLine
	for rows.Next() {
		var l entity.StockMoveLine
		if err := rows.Scan(&l.ID, &l.MoveID, &l.SKU, &l.Quantity, &l.UnitPrice, &l.UnitCost, &l.AddOnPrice, &l.AddOnCost, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan move line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// List lista cabeceras, más recientes primero, con filtros opcionales por
// ubicación (origen o destino) y rango de fechas.
func (r *StockMoveRepo) List(locationID string, from, to *time.Time, limit, offset int) ([]*entity.StockMove, error) {
	query := `SELECT ` + selectMoveColumns + ` FROM stock_moves WHERE 1=1`
	args := []any{}
	pos := 1
	if locationID != "" {
		query += fmt.Sprintf(" AND (from_id = $%d OR to_id = $%d)", pos, pos)
		args = append(args, locationID)
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date < $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMove
	for rows.Next() {
		m, err := scanMove(rows)
		if err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Balance deriva el stock de un SKU en una ubicación: Σ entradas − Σ salidas.
// Un par sin líneas devuelve 0.
func (r *StockMoveRepo) Balance(locationID, sku string) (int, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN m.to_id = $1 THEN l.quantity ELSE -l.quantity END), 0)
		FROM stock_move_lines l
		JOIN stock_moves m ON m.id = l.move_id
		WHERE (m.to_id = $1 OR m.from_id = $1) AND l.sku = $2`
	var balance int
	if err := r.q.QueryRow(context.Background(), query, locationID, sku).Scan(&balance); err != nil {
		return 0, fmt.Errorf("balance: %w", err)
	}
	return balance, nil
}

// BalanceAll deriva el stock de todos los SKUs con líneas en la ubicación.
func (r *StockMoveRepo) BalanceAll(locationID string) (map[string]int, error) {
	query := `
		SELECT l.sku, COALESCE(SUM(CASE WHEN m.to_id = $1 THEN l.quantity ELSE -l.quantity END), 0)
		FROM stock_move_lines l
		JOIN stock_moves m ON m.id = l.move_id
		WHERE m.to_id = $1 OR m.from_id = $1
		GROUP BY l.sku`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("balance all: %w", err)
	}
	defer rows.Close()
	balances := make(map[string]int)
	for rows.Next() {
		var sku string
		var qty int
		if err := rows.Scan(&sku, &qty); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		balances[sku] = qty
	}
	return balances, rows.Err()
}

// ReturnedQuantities suma por SKU las devoluciones ya conciliadas contra
// una venta.
func (r *StockMoveRepo) ReturnedQuantities(saleID string) (map[string]int, error) {
	query := `
		SELECT l.sku, COALESCE(SUM(l.quantity), 0)
		FROM stock_move_lines l
		JOIN stock_moves m ON m.id = l.move_id
		WHERE m.related_move_id = $1 AND m.type IN ($2, $3)
		GROUP BY l.sku`
	rows, err := r.q.Query(context.Background(), query, saleID,
		entity.MoveTypeB2BReturn, entity.MoveTypeB2CReturn)
	if err != nil {
		return nil, fmt.Errorf("returned quantities: %w", err)
	}
	defer rows.Close()
	returned := make(map[string]int)
	for rows.Next() {
		var sku string
		var qty int
		if err := rows.Scan(&sku, &qty); err != nil {
			return nil, fmt.Errorf("scan returned: %w", err)
		}
		returned[sku] = qty
	}
	return returned, rows.Err()
}

// CountReturns cuenta las devoluciones ya conciliadas contra una venta.
func (r *StockMoveRepo) CountReturns(saleID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM stock_moves
		WHERE related_move_id = $1 AND type IN ($2, $3)`
	var n int
	err := r.q.QueryRow(context.Background(), query, saleID,
		entity.MoveTypeB2BReturn, entity.MoveTypeB2CReturn).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count returns: %w", err)
	}
	return n, nil
}

// UpdateHeader persiste los únicos campos editables de la cabecera.
func (r *StockMoveRepo) UpdateHeader(m *entity.StockMove) error {
	query := `
		UPDATE stock_moves
		SET reference = $2, notes = $3, date = $4, payment_status = $5, paid_amount = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		m.ID, nullIfEmpty(m.Reference), m.Notes, m.Date, m.PaymentStatus, m.PaidAmount, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update move header: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetReference asigna la referencia post-inserción (POS-<id>).
func (r *StockMoveRepo) SetReference(id, reference string) error {
	query := `UPDATE stock_moves SET reference = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, reference)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("set reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClearRelated anula related_move_id en los movimientos que apuntan a moveID.
func (r *StockMoveRepo) ClearRelated(moveID string) error {
	query := `UPDATE stock_moves SET related_move_id = NULL, updated_at = now() WHERE related_move_id = $1`
	if _, err := r.q.Exec(context.Background(), query, moveID); err != nil {
		return fmt.Errorf("clear related: %w", err)
	}
	return nil
}

// DeleteLines borra las líneas de un movimiento.
func (r *StockMoveRepo) DeleteLines(moveID string) error {
	query := `DELETE FROM stock_move_lines WHERE move_id = $1`
	if _, err := r.q.Exec(context.Background(), query, moveID); err != nil {
		return fmt.Errorf("delete move lines: %w", err)
	}
	return nil
}

// Delete borra la cabecera.
func (r *StockMoveRepo) Delete(id string) error {
	query := `DELETE FROM stock_moves WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete move: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// nullIfEmpty mapea "" a NULL para columnas con índice único parcial.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
