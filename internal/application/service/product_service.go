package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/entity"
	"github.com/kasirku/kasir-api/internal/domain/repository"
	infraRepo "github.com/kasirku/kasir-api/internal/infrastructure/repository"
	"github.com/kasirku/kasir-api/pkg/apperror"
	"github.com/kasirku/kasir-api/pkg/pagination"
)

// ProductService handles product-related operations. All operations are
// scoped to the store resolved by the store middleware.
type ProductService struct {
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
) *ProductService {
	return &ProductService{
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name      string
	Category  string
	Barcode   *string
	Stock     int
	CostPrice float64
	SellPrice float64
}

// CreateProduct creates a new product in the current store
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	if input.Barcode != nil && *input.Barcode != "" {
		existing, err := s.productRepo.GetByBarcode(ctx, storeID, *input.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Barcode already registered")
		}
	}

	product := &entity.Product{
		StoreID:   storeID,
		Name:      input.Name,
		Category:  input.Category,
		Barcode:   input.Barcode,
		Stock:     input.Stock,
		CostPrice: input.CostPrice,
		SellPrice: input.SellPrice,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID within the current store
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.StoreID != storeID {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProductsInput represents the list products input
type ListProductsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// ListProducts lists products of the current store with filtering and
// pagination
func (s *ProductService) ListProducts(ctx context.Context, input *ListProductsInput) (*pagination.PaginatedResult[entity.Product], error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	params := &repository.ProductFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Category:   input.Category,
		LowStock:   input.LowStock,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	products, total, err := s.productRepo.List(ctx, storeID, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, meta), nil
}

// LowStockOutput represents the low-stock listing with its count
type LowStockOutput struct {
	Count    int64            `json:"count"`
	Products []entity.Product `json:"products"`
}

// GetLowStock returns the current store's products at or below the
// low-stock threshold
func (s *ProductService) GetLowStock(ctx context.Context) (*LowStockOutput, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	count, err := s.analyticsRepo.CountLowStock(ctx, storeID, entity.LowStockThreshold)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetLowStock(ctx, storeID)
	if err != nil {
		return nil, err
	}

	return &LowStockOutput{Count: count, Products: products}, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name      *string
	Category  *string
	Barcode   *string
	Stock     *int
	CostPrice *float64
	SellPrice *float64
}

// UpdateProduct updates a product in the current store
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.CostPrice != nil {
		product.CostPrice = *input.CostPrice
	}
	if input.SellPrice != nil {
		product.SellPrice = *input.SellPrice
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product from the current store
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, product.ID)
}
