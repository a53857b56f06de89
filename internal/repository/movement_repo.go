package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymshop-inventory/internal/ledger"
	"gymshop-inventory/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// movementRetryBudget bounds transparent re-execution of a conflicted
// movement before ErrConflict is surfaced to the caller.
const movementRetryBudget = 5

type movementStore struct {
	db *gorm.DB
}

// NewMovementStore returns the postgres-backed ledger.Store. Each movement
// runs in a serializable transaction so the read-compute-write unit commits
// only against the stock value it actually read.
func NewMovementStore(db *gorm.DB) ledger.Store {
	return &movementStore{db}
}

func (s *movementStore) RunMovement(ctx context.Context, productID uuid.UUID, fn func(tx ledger.MovementTx) error) error {
	var err error
	for attempt := 0; attempt < movementRetryBudget; attempt++ {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(&movementTx{tx: tx, productID: productID})
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if !isSerializationFailure(err) {
			return err
		}
		// conflicted with a concurrent movement, re-run from the read
	}
	return ledger.ErrConflict
}

type movementTx struct {
	tx        *gorm.DB
	productID uuid.UUID
}

func (m *movementTx) Product() (*model.Product, error) {
	var product model.Product
	if err := m.tx.First(&product, "id = ?", m.productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (m *movementTx) WriteStock(newStock int, at time.Time) error {
	return m.tx.Model(&model.Product{}).
		Where("id = ?", m.productID).
		Updates(map[string]interface{}{
			"current_stock": newStock,
			"updated_at":    at,
		}).Error
}

func (m *movementTx) AppendEntry(entry *model.StockEntry) error {
	return m.tx.Create(entry).Error
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}
