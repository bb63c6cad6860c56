package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/textutil"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto. SKU duplicado -> domain.ErrDuplicate.
// search_name guarda el nombre plegado sin acentos para búsquedas.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (sku, name, search_name, cost, rrp, b2b_price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.SKU, p.Name, textutil.Fold(p.Name), p.Cost, p.RRP, p.B2BPrice,
		p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetBySKU obtiene un producto por SKU, o nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT sku, name, cost, rrp, b2b_price, active, created_at, updated_at
		FROM products WHERE sku = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, sku).Scan(
		&p.SKU, &p.Name, &p.Cost, &p.RRP, &p.B2BPrice, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// MissingSKUs devuelve, en el orden recibido, los SKUs que no existen.
func (r *ProductRepo) MissingSKUs(skus []string) ([]string, error) {
	if len(skus) == 0 {
		return nil, nil
	}
	query := `SELECT sku FROM products WHERE sku = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, skus)
	if err != nil {
		return nil, fmt.Errorf("missing skus: %w", err)
	}
	defer rows.Close()
	existing := make(map[string]bool, len(skus))
	for rows.Next() {
		var sku string
		if err := rows.Scan(&sku); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		existing[sku] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	var missing []string
	seen := make(map[string]bool, len(skus))
	for _, sku := range skus {
		if !existing[sku] && !seen[sku] {
			missing = append(missing, sku)
			seen[sku] = true
		}
	}
	return missing, nil
}

// List busca productos activos; search viene ya plegado sin acentos y se
// compara contra sku y search_name.
func (r *ProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT sku, name, cost, rrp, b2b_price, active, created_at, updated_at
		FROM products WHERE active`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (search_name LIKE '%%' || $%d || '%%' OR lower(sku) LIKE '%%' || $%d || '%%')", pos, pos)
		args = append(args, search)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY sku ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.SKU, &p.Name, &p.Cost, &p.RRP, &p.B2BPrice, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update persiste nombre, precios y actividad.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, search_name = $3, cost = $4, rrp = $5, b2b_price = $6, active = $7, updated_at = $8
		WHERE sku = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.SKU, p.Name, textutil.Fold(p.Name), p.Cost, p.RRP, p.B2BPrice, p.Active, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextTempSKU reserva el siguiente SKU temporal del contador compartido.
// El upsert incrementa y devuelve en una sola sentencia, serializado por el
// lock de fila del UPDATE dentro de la transacción del caller.
func (r *ProductRepo) NextTempSKU() (string, error) {
	query := `
		INSERT INTO counters (name, value) VALUES ('tmp_sku', 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value`
	var n int64
	if err := r.q.QueryRow(context.Background(), query).Scan(&n); err != nil {
		return "", fmt.Errorf("next temp sku: %w", err)
	}
	return fmt.Sprintf("TMP-%04d", n), nil
}
