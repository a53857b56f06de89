package repository

import (
	"errors"

	"gymshop-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	UpdateMetadata(id uuid.UUID, product *model.Product) (*model.Product, error)
	Delete(id uuid.UUID) error
	Stats() (*DashboardStats, error)
}

// DashboardStats is the overview block for the dashboard screen.
type DashboardStats struct {
	TotalProducts  int64 `json:"total_products"`
	LowStockCount  int64 `json:"low_stock_count"`
	TotalValuation int64 `json:"total_valuation"`
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// FindAll returns the full product list ordered by name, the shape live
// subscribers receive on every snapshot.
func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateMetadata writes name/brand/price/reorder level only. The column list
// is explicit so this path can never touch current_stock: stock changes go
// through the ledger engine alone.
func (r *productRepo) UpdateMetadata(id uuid.UUID, product *model.Product) (*model.Product, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":          product.Name,
			"brand":         product.Brand,
			"unit_price":    product.UnitPrice,
			"reorder_level": product.ReorderLevel,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errors.New("product not found")
	}
	return r.FindByID(id)
}

// Delete removes the product immediately. Past ledger entries keep their
// snapshot of it.
func (r *productRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("product not found")
	}
	return nil
}

// Stats aggregates the overview counters in one place.
func (r *productRepo) Stats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("current_stock <= reorder_level").
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(current_stock * unit_price), 0)").
		Scan(&stats.TotalValuation).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
