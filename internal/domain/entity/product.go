package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LowStockThreshold is the stock level at or below which a product counts
// as low stock on the dashboard. Fixed, not configurable per product.
const LowStockThreshold = 5

// Product represents an item sold through the POS.
type Product struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StoreID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"store_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Category  string         `gorm:"size:100;not null" json:"category"`
	Barcode   *string        `gorm:"size:100;index" json:"barcode,omitempty"`
	Stock     int            `gorm:"default:0" json:"stock"`
	CostPrice float64        `gorm:"type:numeric;default:0" json:"cost_price"`
	SellPrice float64        `gorm:"type:numeric;default:0" json:"sell_price"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product counts toward the dashboard's
// low-stock metric.
func (p *Product) IsLowStock() bool {
	return p.Stock <= LowStockThreshold
}
