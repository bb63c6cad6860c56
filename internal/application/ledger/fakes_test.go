package ledger_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	appledger "github.com/tu-usuario/almacen-pro/internal/application/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Base de datos en memoria con snapshot/restore para emular el rollback
// transaccional: si el callback del runner falla, el estado vuelve al punto
// de partida y nada queda escrito.
// ──────────────────────────────────────────────────────────────────────────────

type memoryDB struct {
	locations  map[string]*entity.Location
	products   map[string]*entity.Product
	moves      map[string]*entity.StockMove       // cabeceras sin líneas
	lines      map[string][]*entity.StockMoveLine // por moveID
	series     map[string]*entity.DocumentSeries
	tmpCounter int64
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		locations: make(map[string]*entity.Location),
		products:  make(map[string]*entity.Product),
		moves:     make(map[string]*entity.StockMove),
		lines:     make(map[string][]*entity.StockMoveLine),
		series:    make(map[string]*entity.DocumentSeries),
	}
}

func cloneStrPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt64Ptr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneMove(m *entity.StockMove) *entity.StockMove {
	cp := *m
	cp.FromID = cloneStrPtr(m.FromID)
	cp.ToID = cloneStrPtr(m.ToID)
	cp.CustomerID = cloneStrPtr(m.CustomerID)
	cp.RelatedMoveID = cloneStrPtr(m.RelatedMoveID)
	cp.SeriesCode = cloneStrPtr(m.SeriesCode)
	cp.SeriesYear = cloneIntPtr(m.SeriesYear)
	cp.SeriesNumber = cloneInt64Ptr(m.SeriesNumber)
	cp.Lines = nil
	return &cp
}

func cloneSeries(s *entity.DocumentSeries) *entity.DocumentSeries {
	cp := *s
	cp.Year = cloneIntPtr(s.Year)
	return &cp
}

func (db *memoryDB) snapshot() *memoryDB {
	snap := newMemoryDB()
	for id, l := range db.locations {
		cp := *l
		snap.locations[id] = &cp
	}
	for sku, p := range db.products {
		cp := *p
		snap.products[sku] = &cp
	}
	for id, m := range db.moves {
		snap.moves[id] = cloneMove(m)
	}
	for id, ls := range db.lines {
		cps := make([]*entity.StockMoveLine, len(ls))
		for i, l := range ls {
			cp := *l
			cps[i] = &cp
		}
		snap.lines[id] = cps
	}
	for id, s := range db.series {
		snap.series[id] = cloneSeries(s)
	}
	snap.tmpCounter = db.tmpCounter
	return snap
}

func (db *memoryDB) restore(snap *memoryDB) {
	db.locations = snap.locations
	db.products = snap.products
	db.moves = snap.moves
	db.lines = snap.lines
	db.series = snap.series
	db.tmpCounter = snap.tmpCounter
}

// referenceTaken emula el índice único parcial sobre stock_moves.reference.
func (db *memoryDB) referenceTaken(ref, excludeID string) bool {
	if ref == "" {
		return false
	}
	for id, m := range db.moves {
		if id != excludeID && m.Reference == ref {
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake sobre la memoria compartida
// ──────────────────────────────────────────────────────────────────────────────

type fakeLocationRepo struct{ db *memoryDB }

var _ repository.LocationRepository = (*fakeLocationRepo)(nil)

func (r *fakeLocationRepo) Create(l *entity.Location) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	cp := *l
	r.db.locations[l.ID] = &cp
	return nil
}

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.db.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLocationRepo) List(includeInactive bool) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.db.locations {
		if !includeInactive && !l.Active {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeLocationRepo) Update(l *entity.Location) error {
	if _, ok := r.db.locations[l.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *l
	r.db.locations[l.ID] = &cp
	return nil
}

type fakeProductRepo struct{ db *memoryDB }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, exists := r.db.products[p.SKU]; exists {
		return domain.ErrDuplicate
	}
	cp := *p
	r.db.products[p.SKU] = &cp
	return nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	p, ok := r.db.products[sku]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) MissingSKUs(skus []string) ([]string, error) {
	var missing []string
	seen := make(map[string]bool, len(skus))
	for _, sku := range skus {
		if seen[sku] {
			continue
		}
		seen[sku] = true
		if _, ok := r.db.products[sku]; !ok {
			missing = append(missing, sku)
		}
	}
	return missing, nil
}

func (r *fakeProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.db.products {
		if !p.Active {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.db.products[p.SKU]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.db.products[p.SKU] = &cp
	return nil
}

func (r *fakeProductRepo) NextTempSKU() (string, error) {
	r.db.tmpCounter++
	return fmt.Sprintf("TMP-%04d", r.db.tmpCounter), nil
}

type fakeMoveRepo struct{ db *memoryDB }

var _ repository.StockMoveRepository = (*fakeMoveRepo)(nil)

func (r *fakeMoveRepo) CreateMove(m *entity.StockMove) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if r.db.referenceTaken(m.Reference, m.ID) {
		return domain.ErrDuplicate
	}
	r.db.moves[m.ID] = cloneMove(m)
	return nil
}

func (r *fakeMoveRepo) CreateLine(l *entity.StockMoveLine) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	cp := *l
	r.db.lines[l.MoveID] = append(r.db.lines[l.MoveID], &cp)
	return nil
}

func (r *fakeMoveRepo) GetByID(id string) (*entity.StockMove, error) {
	m, ok := r.db.moves[id]
	if !ok {
		return nil, nil
	}
	cp := cloneMove(m)
	for _, l := range r.db.lines[id] {
		lc := *l
		cp.Lines = append(cp.Lines, &lc)
	}
	return cp, nil
}

func (r *fakeMoveRepo) List(locationID string, from, to *time.Time, limit, offset int) ([]*entity.StockMove, error) {
	var out []*entity.StockMove
	for _, m := range r.db.moves {
		if locationID != "" {
			touches := (m.FromID != nil && *m.FromID == locationID) ||
				(m.ToID != nil && *m.ToID == locationID)
			if !touches {
				continue
			}
		}
		if from != nil && m.Date.Before(*from) {
			continue
		}
		if to != nil && !m.Date.Before(*to) {
			continue
		}
		out = append(out, cloneMove(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMoveRepo) Balance(locationID, sku string) (int, error) {
	balance := 0
	for moveID, lines := range r.db.lines {
		m, ok := r.db.moves[moveID]
		if !ok {
			continue
		}
		for _, l := range lines {
			if l.SKU != sku {
				continue
			}
			if m.ToID != nil && *m.ToID == locationID {
				balance += l.Quantity
			} else if m.FromID != nil && *m.FromID == locationID {
				balance -= l.Quantity
			}
		}
	}
	return balance, nil
}

func (r *fakeMoveRepo) BalanceAll(locationID string) (map[string]int, error) {
	balances := make(map[string]int)
	for moveID, lines := range r.db.lines {
		m, ok := r.db.moves[moveID]
		if !ok {
			continue
		}
		for _, l := range lines {
			if m.ToID != nil && *m.ToID == locationID {
				balances[l.SKU] += l.Quantity
			} else if m.FromID != nil && *m.FromID == locationID {
				balances[l.SKU] -= l.Quantity
			}
		}
	}
	return balances, nil
}

func (r *fakeMoveRepo) ReturnedQuantities(saleID string) (map[string]int, error) {
	returned := make(map[string]int)
	for moveID, m := range r.db.moves {
		if m.RelatedMoveID == nil || *m.RelatedMoveID != saleID {
			continue
		}
		if m.Type != entity.MoveTypeB2BReturn && m.Type != entity.MoveTypeB2CReturn {
			continue
		}
		for _, l := range r.db.lines[moveID] {
			returned[l.SKU] += l.Quantity
		}
	}
	return returned, nil
}

func (r *fakeMoveRepo) CountReturns(saleID string) (int, error) {
	n := 0
	for _, m := range r.db.moves {
		if m.RelatedMoveID == nil || *m.RelatedMoveID != saleID {
			continue
		}
		if m.Type == entity.MoveTypeB2BReturn || m.Type == entity.MoveTypeB2CReturn {
			n++
		}
	}
	return n, nil
}

func (r *fakeMoveRepo) UpdateHeader(m *entity.StockMove) error {
	stored, ok := r.db.moves[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.db.referenceTaken(m.Reference, m.ID) {
		return domain.ErrDuplicate
	}
	stored.Reference = m.Reference
	stored.Notes = m.Notes
	stored.Date = m.Date
	stored.PaymentStatus = m.PaymentStatus
	stored.PaidAmount = m.PaidAmount
	stored.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *fakeMoveRepo) SetReference(id, reference string) error {
	stored, ok := r.db.moves[id]
	if !ok {
		return domain.ErrNotFound
	}
	if r.db.referenceTaken(reference, id) {
		return domain.ErrDuplicate
	}
	stored.Reference = reference
	return nil
}

func (r *fakeMoveRepo) ClearRelated(moveID string) error {
	for _, m := range r.db.moves {
		if m.RelatedMoveID != nil && *m.RelatedMoveID == moveID {
			m.RelatedMoveID = nil
		}
	}
	return nil
}

func (r *fakeMoveRepo) DeleteLines(moveID string) error {
	delete(r.db.lines, moveID)
	return nil
}

func (r *fakeMoveRepo) Delete(id string) error {
	if _, ok := r.db.moves[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.moves, id)
	return nil
}

type fakeSeriesRepo struct{ db *memoryDB }

var _ repository.SeriesRepository = (*fakeSeriesRepo)(nil)

func (r *fakeSeriesRepo) Create(s *entity.DocumentSeries) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	for _, existing := range r.db.series {
		if existing.Code == s.Code {
			return domain.ErrDuplicate
		}
	}
	r.db.series[s.ID] = cloneSeries(s)
	return nil
}

func (r *fakeSeriesRepo) List() ([]*entity.DocumentSeries, error) {
	var out []*entity.DocumentSeries
	for _, s := range r.db.series {
		out = append(out, cloneSeries(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *fakeSeriesRepo) FindForScope(scope, preferredCode string, year int) (*entity.DocumentSeries, error) {
	var candidates []*entity.DocumentSeries
	for _, s := range r.db.series {
		if s.Scope != scope || !s.Active {
			continue
		}
		if s.Year != nil && *s.Year != year {
			continue
		}
		candidates = append(candidates, s)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if (a.Code == preferredCode) != (b.Code == preferredCode) {
			return a.Code == preferredCode
		}
		if (a.Year != nil) != (b.Year != nil) {
			return a.Year != nil
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return cloneSeries(candidates[0]), nil
}

func (r *fakeSeriesRepo) IncrementNext(id string) (int64, error) {
	s, ok := r.db.series[id]
	if !ok {
		return 0, domain.ErrSeriesNotFound
	}
	allocated := s.NextNumber
	s.NextNumber++
	return allocated, nil
}

// fakeTxRunner ejecuta el callback contra la memoria compartida y emula el
// rollback restaurando el snapshot previo si el callback devuelve error.
type fakeTxRunner struct{ db *memoryDB }

var _ appledger.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMoveRepository,
	seriesRepo repository.SeriesRepository,
	productRepo repository.ProductRepository,
) error) error {
	snap := r.db.snapshot()
	err := fn(&fakeMoveRepo{db: r.db}, &fakeSeriesRepo{db: r.db}, &fakeProductRepo{db: r.db})
	if err != nil {
		r.db.restore(snap)
	}
	return err
}
