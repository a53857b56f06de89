package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymshop-inventory/internal/model"

	"github.com/google/uuid"
)

var (
	// ErrInsufficientStock aborts a sale that would drive stock negative.
	// Nothing is written when it is returned.
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	// ErrProductNotFound means the product was deleted (or never existed)
	// at transaction read time.
	ErrProductNotFound = errors.New("product not found")
	// ErrConflict is returned once the store's retry budget for concurrent
	// writers is exhausted. No partial state was committed; the caller may
	// simply retry.
	ErrConflict = errors.New("stock movement conflicted, try again")
)

// Movement describes one requested stock adjustment. Quantity must already
// be a positive integer: callers validate input before reaching the engine.
type Movement struct {
	Kind       model.MovementType
	Quantity   int
	MemberName string // sale only
	Notes      string // restock only
}

// Result reports the committed outcome of a movement.
type Result struct {
	NewStock int
	EntryID  uuid.UUID
}

// MovementTx is the transactional context a movement body runs in. All three
// calls happen inside one atomic unit against the store; if the unit
// conflicts with a concurrent writer the whole body re-executes against the
// freshest committed state.
type MovementTx interface {
	// Product re-reads the authoritative product row inside the
	// transaction. Never feed the engine a cached snapshot.
	Product() (*model.Product, error)
	WriteStock(newStock int, at time.Time) error
	AppendEntry(entry *model.StockEntry) error
}

// Store runs a movement body atomically for one product. Implementations
// must retry the body on write conflict and surface ErrConflict when the
// retry budget runs out, and must commit either every write the body made
// or none of them.
type Store interface {
	RunMovement(ctx context.Context, productID uuid.UUID, fn func(tx MovementTx) error) error
}

// Engine is the single choke point through which CurrentStock may change.
// Every successful Apply writes the new stock value and appends exactly one
// ledger entry, in one atomic unit.
type Engine struct {
	store Store
	now   func() time.Time
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// Apply performs one atomic stock movement and returns the new stock level
// and the id of the ledger entry it appended. A sale that would drive stock
// below zero aborts with ErrInsufficientStock and leaves both the product
// and the ledger untouched.
func (e *Engine) Apply(ctx context.Context, productID uuid.UUID, m Movement) (*Result, error) {
	switch m.Kind {
	case model.MovementSale, model.MovementRestock:
	default:
		return nil, fmt.Errorf("unknown movement kind %q", m.Kind)
	}
	if m.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be a positive integer, got %d", m.Quantity)
	}

	var res Result
	err := e.store.RunMovement(ctx, productID, func(tx MovementTx) error {
		product, err := tx.Product()
		if err != nil {
			return err
		}

		at := e.now()
		entry := &model.StockEntry{
			ProductID:   product.ID,
			ProductName: product.Name, // historical snapshot, not kept in sync
			Type:        m.Kind,
			Quantity:    m.Quantity,
			Timestamp:   at,
		}

		var newStock int
		switch m.Kind {
		case model.MovementSale:
			newStock = product.CurrentStock - m.Quantity
			if newStock < 0 {
				return ErrInsufficientStock
			}
			amount := int64(m.Quantity) * product.UnitPrice
			entry.Amount = &amount
			entry.MemberName = m.MemberName
			if entry.MemberName == "" {
				entry.MemberName = model.WalkInMember
			}
		case model.MovementRestock:
			newStock = product.CurrentStock + m.Quantity
			entry.Notes = m.Notes
		}

		if err := tx.WriteStock(newStock, at); err != nil {
			return err
		}
		if err := tx.AppendEntry(entry); err != nil {
			return err
		}

		res = Result{NewStock: newStock, EntryID: entry.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
