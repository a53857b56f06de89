package repository

import (
	"gymshop-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockEntryRepository interface {
	FindAll() ([]model.StockEntry, error)
	FindByID(id uuid.UUID) (*model.StockEntry, error)
}

type stockEntryRepo struct {
	db *gorm.DB
}

func NewStockEntryRepo(db *gorm.DB) StockEntryRepository {
	return &stockEntryRepo{db}
}

// FindAll returns the whole ledger, newest first. The ledger is append-only;
// there is deliberately no update or delete method on this repository.
func (r *stockEntryRepo) FindAll() ([]model.StockEntry, error) {
	var entries []model.StockEntry
	err := r.db.Order("timestamp DESC").Find(&entries).Error
	return entries, err
}

func (r *stockEntryRepo) FindByID(id uuid.UUID) (*model.StockEntry, error) {
	var entry model.StockEntry
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
