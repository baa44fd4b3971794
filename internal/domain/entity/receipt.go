package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Receipt represents one completed sale. Receipts are scoped by the store
// owner's user ID rather than the store itself, matching the historical
// schema; all dashboard aggregations filter on owner_id and created_at.
type Receipt struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	InvoiceNumber string    `gorm:"size:100;unique;not null" json:"invoice_number"`
	Subtotal      float64   `gorm:"type:numeric;default:0" json:"subtotal"`
	Discount      float64   `gorm:"type:numeric;default:0" json:"discount"`
	Total         float64   `gorm:"type:numeric;default:0" json:"total"`
	Profit        float64   `gorm:"type:numeric;default:0" json:"profit"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`

	// Relationships
	Owner User          `gorm:"foreignKey:OwnerID" json:"-"`
	Items []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// ReceiptItem represents a line item on a receipt. The product name is
// denormalized at sale time so receipts survive product renames and
// deletions; ProductID is kept only as a soft reference.
type ReceiptItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"receipt_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	ProductName string     `gorm:"size:255;not null" json:"product_name"`
	Quantity    int        `gorm:"not null" json:"quantity"`
	UnitPrice   float64    `gorm:"type:numeric;not null" json:"unit_price"`
	CostPrice   float64    `gorm:"type:numeric;default:0" json:"cost_price"`
	Profit      float64    `gorm:"type:numeric;default:0" json:"profit"`
	TotalPrice  float64    `gorm:"type:numeric;not null" json:"total_price"`

	// Relationships
	Receipt Receipt  `gorm:"foreignKey:ReceiptID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt item
func (ri *ReceiptItem) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}
