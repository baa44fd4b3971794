package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/entity"
	"github.com/kasirku/kasir-api/internal/domain/repository"
	infraRepo "github.com/kasirku/kasir-api/internal/infrastructure/repository"
	"github.com/kasirku/kasir-api/pkg/apperror"
	"github.com/kasirku/kasir-api/pkg/pagination"
	"github.com/kasirku/kasir-api/pkg/utils"
)

// ReceiptService handles checkout and receipt queries
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	productRepo repository.ProductRepository
	dashboard   *CachedDashboard
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	productRepo repository.ProductRepository,
	dashboard *CachedDashboard,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		productRepo: productRepo,
		dashboard:   dashboard,
	}
}

// SaleItemInput represents one line of a checkout
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateSaleInput represents the checkout input
type CreateSaleInput struct {
	Discount      float64
	PaymentMethod string
	Items         []SaleItemInput
}

// CreateSale completes a checkout: decrements stock atomically, writes
// the receipt with denormalized line items, and invalidates the store's
// cached dashboard views.
func (s *ReceiptService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Receipt, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}
	ownerID, ok := infraRepo.GetStoreOwnerID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale requires at least one item")
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subtotal, profit float64
	items := make([]entity.ReceiptItem, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if product.StoreID != storeID {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Quantity must be positive")
		}

		itemTotal := product.SellPrice * float64(item.Quantity)
		itemProfit := (product.SellPrice - product.CostPrice) * float64(item.Quantity)
		subtotal += itemTotal
		profit += itemProfit

		productID := product.ID
		items = append(items, entity.ReceiptItem{
			ProductID:   &productID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.SellPrice,
			CostPrice:   product.CostPrice,
			Profit:      itemProfit,
			TotalPrice:  itemTotal,
		})

		stockDecrements[product.ID] += item.Quantity
	}

	if input.Discount < 0 || input.Discount > subtotal {
		return nil, apperror.NewBadRequestError("Invalid discount")
	}

	// Atomically decrement stock; if any product has insufficient
	// stock, the entire operation fails.
	failedIDs, err := s.productRepo.AtomicDecrementStock(ctx, stockDecrements)
	if err != nil {
		if len(failedIDs) > 0 {
			var failedNames []string
			for _, id := range failedIDs {
				if product, exists := productMap[id]; exists {
					failedNames = append(failedNames, product.Name)
				}
			}
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for: %v", failedNames))
		}
		return nil, err
	}

	receipt := &entity.Receipt{
		OwnerID:       ownerID,
		InvoiceNumber: utils.GenerateInvoiceNumber(),
		Subtotal:      subtotal,
		Discount:      input.Discount,
		Total:         subtotal - input.Discount,
		Profit:        profit - input.Discount,
		PaymentMethod: input.PaymentMethod,
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		// Stock was already decremented, restore it.
		_ = s.productRepo.AtomicIncrementStock(ctx, stockDecrements)
		return nil, err
	}

	for i := range items {
		items[i].ReceiptID = receipt.ID
	}

	if err := s.receiptRepo.CreateItems(ctx, items); err != nil {
		return nil, err
	}
	receipt.Items = items

	if s.dashboard != nil {
		s.dashboard.InvalidateStore(storeID)
	}

	return receipt, nil
}

// GetReceipt retrieves a receipt with its items, scoped to the owner
func (s *ReceiptService) GetReceipt(ctx context.Context, ownerID, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil || receipt.OwnerID != ownerID {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceiptsInput represents the list receipts input
type ListReceiptsInput struct {
	Pagination *pagination.PaginationParams
	From       *string
	To         *string
}

// ListReceipts lists the owner's receipts, newest first, optionally
// bounded by an inclusive created_at range
func (s *ReceiptService) ListReceipts(ctx context.Context, ownerID uuid.UUID, input *ListReceiptsInput) (*pagination.PaginatedResult[entity.Receipt], error) {
	params := &repository.ReceiptFilterParams{
		Pagination: input.Pagination,
	}

	from, err := utils.ParseDateBound(input.From, false)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid from date")
	}
	params.From = from

	to, err := utils.ParseDateBound(input.To, true)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid to date")
	}
	params.To = to

	receipts, total, err := s.receiptRepo.List(ctx, ownerID, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, meta), nil
}
