package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/entity"
	"github.com/kasirku/kasir-api/pkg/pagination"
)

// ReceiptFilterParams contains filtering parameters for receipt listings
type ReceiptFilterParams struct {
	Pagination *pagination.PaginationParams
	From       *time.Time
	To         *time.Time
}

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	CreateItems(ctx context.Context, items []entity.ReceiptItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	List(ctx context.Context, ownerID uuid.UUID, params *ReceiptFilterParams) ([]entity.Receipt, int64, error)
	// ListByOwnerBetween returns receipts whose created_at falls within
	// [from, to], both bounds inclusive. A nil upper bound means "no upper
	// bound". Only id, created_at, total and profit are populated.
	ListByOwnerBetween(ctx context.Context, ownerID uuid.UUID, from time.Time, to *time.Time, ascending bool) ([]entity.Receipt, error)
	// ListItemsByReceiptIDs returns line items for the given receipts,
	// projecting product_name, quantity and unit_price.
	ListItemsByReceiptIDs(ctx context.Context, receiptIDs []uuid.UUID) ([]entity.ReceiptItem, error)
}
