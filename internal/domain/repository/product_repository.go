package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/entity"
	"github.com/kasirku/kasir-api/pkg/pagination"
)

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetByBarcode(ctx context.Context, storeID uuid.UUID, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, storeID uuid.UUID, params *ProductFilterParams) ([]entity.Product, int64, error)
	// ListByStore returns every product of the store without pagination.
	// The dashboard's low-stock count scans the full set.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error)
	GetLowStock(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error)
	// AtomicDecrementStock atomically decrements stock for multiple products.
	// Returns product IDs that failed (insufficient stock); if any fail, the
	// entire transaction is rolled back.
	AtomicDecrementStock(ctx context.Context, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)
	// AtomicIncrementStock atomically increments stock (for voided sales).
	AtomicIncrementStock(ctx context.Context, increments map[uuid.UUID]int) error
}
