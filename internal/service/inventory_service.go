package service

import (
	"context"
	"fmt"
	"log"

	"gymshop-inventory/internal/ledger"
	"gymshop-inventory/internal/model"
	"gymshop-inventory/internal/repository"
	"gymshop-inventory/internal/watch"
	"gymshop-inventory/pkg/validator"

	"github.com/google/uuid"
)

// MovementRequest is the client payload for one sale or restock. It is
// validated here so bad quantities never reach the ledger engine, let alone
// the store.
type MovementRequest struct {
	ProductID  uuid.UUID          `json:"product_id" validate:"uuid_required"`
	Type       model.MovementType `json:"type" validate:"required,oneof=sale restock"`
	Quantity   int                `json:"quantity" validate:"required,gt=0"`
	MemberName string             `json:"member_name"`
	Notes      string             `json:"notes"`
}

type InventoryService interface {
	CreateProduct(req *model.Product) error
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetAllProducts() ([]model.Product, error)
	RecordMovement(ctx context.Context, req *MovementRequest) (*ledger.Result, error)
	GetAllEntries() ([]model.StockEntry, error)
	GetEntryByID(id uuid.UUID) (*model.StockEntry, error)
	GetDashboardStats() (*repository.DashboardStats, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	entryRepo   repository.StockEntryRepository
	engine      *ledger.Engine
	feed        *watch.Feed
}

func NewInventoryService(pRepo repository.ProductRepository, eRepo repository.StockEntryRepository, engine *ledger.Engine, feed *watch.Feed) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		entryRepo:   eRepo,
		engine:      engine,
		feed:        feed,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.publishProducts()
	return nil
}

// UpdateProduct edits metadata only. The repository's explicit column list
// keeps current_stock out of reach of this path.
func (s *inventoryService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	updated, err := s.productRepo.UpdateMetadata(id, req)
	if err != nil {
		return nil, err
	}

	s.publishProducts()
	return updated, nil
}

func (s *inventoryService) DeleteProduct(id uuid.UUID) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.publishProducts()
	return nil
}

func (s *inventoryService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

// RecordMovement validates the request and hands it to the ledger engine.
// On success both snapshots are republished so every subscriber sees the
// committed state.
func (s *inventoryService) RecordMovement(ctx context.Context, req *MovementRequest) (*ledger.Result, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	res, err := s.engine.Apply(ctx, req.ProductID, ledger.Movement{
		Kind:       req.Type,
		Quantity:   req.Quantity,
		MemberName: req.MemberName,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.publishProducts()
	s.publishEntries()
	return res, nil
}

func (s *inventoryService) GetAllEntries() ([]model.StockEntry, error) {
	return s.entryRepo.FindAll()
}

func (s *inventoryService) GetEntryByID(id uuid.UUID) (*model.StockEntry, error) {
	return s.entryRepo.FindByID(id)
}

func (s *inventoryService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.productRepo.Stats()
}

// publishProducts re-reads the full ordered list and hands it to the feed.
// Subscribers are the source of the replacement-snapshot contract: they get
// the whole set, not the change.
func (s *inventoryService) publishProducts() {
	products, err := s.productRepo.FindAll()
	if err != nil {
		log.Printf("product snapshot query failed: %v", err)
		return
	}
	s.feed.PublishProducts(products)
}

func (s *inventoryService) publishEntries() {
	entries, err := s.entryRepo.FindAll()
	if err != nil {
		log.Printf("ledger snapshot query failed: %v", err)
		return
	}
	s.feed.PublishEntries(entries)
}
