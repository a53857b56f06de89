package model

import (
	"time"

	"github.com/google/uuid"
)

type MovementType string

const (
	MovementSale    MovementType = "sale"
	MovementRestock MovementType = "restock"
)

// WalkInMember is recorded on a sale when no member name was given.
const WalkInMember = "Walk-in"

// StockEntry is one line of the append-only stock ledger. ProductName and
// Amount are snapshots taken at movement time; they are deliberately never
// updated when the product is later renamed or repriced, and the referenced
// product may no longer exist.
type StockEntry struct {
	BaseModel
	ProductID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	ProductName string       `gorm:"type:varchar(255);not null" json:"product_name"`
	Type        MovementType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=sale restock"`
	Quantity    int          `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Amount      *int64       `json:"amount,omitempty"`                               // sale only: quantity * unit price at read time
	MemberName  string       `gorm:"type:varchar(255)" json:"member_name,omitempty"` // sale only
	Notes       string       `json:"notes,omitempty"`                                // restock only
	Timestamp   time.Time    `gorm:"not null;index" json:"timestamp"`
}
