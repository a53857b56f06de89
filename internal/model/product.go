package model

// Product is a sellable item in the shop. CurrentStock is owned by the
// ledger engine: nothing else may write it, including the metadata update
// path.
type Product struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null;index" json:"name" validate:"required"`
	Brand        string `gorm:"type:varchar(255)" json:"brand"`
	UnitPrice    int64  `gorm:"not null;default:0" json:"unit_price" validate:"gte=0"`
	CurrentStock int    `gorm:"not null;default:0" json:"current_stock" validate:"gte=0"`
	ReorderLevel int    `gorm:"not null;default:0" json:"reorder_level" validate:"gte=0"`
}

// LowStock reports whether the product has fallen to or below its reorder
// threshold.
func (p *Product) LowStock() bool {
	return p.CurrentStock <= p.ReorderLevel
}
