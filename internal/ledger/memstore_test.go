package ledger

import (
	"context"
	"sync"
	"time"

	"gymshop-inventory/internal/model"

	"github.com/google/uuid"
)

// memStore is an in-memory Store with real optimistic concurrency: the body
// runs against a snapshot, and the commit only lands if nobody else
// committed to the product since the read. On a version mismatch the whole
// body re-runs, the same contract the postgres store provides.
type memStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]*model.Product
	versions map[uuid.UUID]int
	entries  []model.StockEntry
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[uuid.UUID]*model.Product),
		versions: make(map[uuid.UUID]int),
	}
}

func (s *memStore) addProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.products[p.ID] = &cp
}

func (s *memStore) product(id uuid.UUID) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.products[id]
}

func (s *memStore) ledger() []model.StockEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.StockEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

type memTx struct {
	store      *memStore
	productID  uuid.UUID
	snapshot   *model.Product
	wroteStock bool
	newStock   int
	at         time.Time
	entry      *model.StockEntry
}

func (t *memTx) Product() (*model.Product, error) {
	if t.snapshot == nil {
		return nil, ErrProductNotFound
	}
	cp := *t.snapshot
	return &cp, nil
}

func (t *memTx) WriteStock(newStock int, at time.Time) error {
	t.wroteStock = true
	t.newStock = newStock
	t.at = at
	return nil
}

func (t *memTx) AppendEntry(entry *model.StockEntry) error {
	entry.ID = uuid.New() // store-assigned id
	t.entry = entry
	return nil
}

func (s *memStore) RunMovement(ctx context.Context, productID uuid.UUID, fn func(tx MovementTx) error) error {
	for attempt := 0; attempt < 5; attempt++ {
		s.mu.Lock()
		var snapshot *model.Product
		if p, ok := s.products[productID]; ok {
			cp := *p
			snapshot = &cp
		}
		version := s.versions[productID]
		s.mu.Unlock()

		tx := &memTx{store: s, productID: productID, snapshot: snapshot}
		if err := fn(tx); err != nil {
			return err
		}

		s.mu.Lock()
		if s.versions[productID] != version {
			s.mu.Unlock()
			continue // lost the race, re-run the body against fresh state
		}
		if tx.wroteStock {
			p := s.products[productID]
			p.CurrentStock = tx.newStock
			p.UpdatedAt = tx.at
			s.versions[productID]++
		}
		if tx.entry != nil {
			s.entries = append(s.entries, *tx.entry)
		}
		s.mu.Unlock()
		return nil
	}
	return ErrConflict
}

// conflictedStore always reports an exhausted retry budget.
type conflictedStore struct{}

func (conflictedStore) RunMovement(ctx context.Context, productID uuid.UUID, fn func(tx MovementTx) error) error {
	return ErrConflict
}
