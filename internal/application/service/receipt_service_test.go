package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/entity"
	infraRepo "github.com/kasirku/kasir-api/internal/infrastructure/repository"
	"github.com/kasirku/kasir-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func scopedContext(storeID, ownerID uuid.UUID) context.Context {
	return infraRepo.WithStore(context.Background(), storeID, ownerID)
}

func TestCreateSale(t *testing.T) {
	storeID := uuid.New()
	ownerID := uuid.New()

	pen := entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Pulpen", SellPrice: 1000, CostPrice: 600, Stock: 10}
	book := entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Buku Tulis", SellPrice: 5000, CostPrice: 3500, Stock: 4}

	receipts := &fakeReceiptRepo{}
	products := &fakeProductRepo{products: []entity.Product{pen, book}}

	svc := NewReceiptService(receipts, products, nil)
	receipt, err := svc.CreateSale(scopedContext(storeID, ownerID), &CreateSaleInput{
		PaymentMethod: "cash",
		Discount:      500,
		Items: []SaleItemInput{
			{ProductID: pen.ID, Quantity: 3},
			{ProductID: book.ID, Quantity: 2},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, ownerID, receipt.OwnerID)
	assert.NotEmpty(t, receipt.InvoiceNumber)
	assert.Equal(t, 13000.0, receipt.Subtotal)
	assert.Equal(t, 12500.0, receipt.Total)
	// (3*400 + 2*1500) item profit minus the discount.
	assert.Equal(t, 3700.0, receipt.Profit)
	assert.Len(t, receipt.Items, 2)
	assert.Equal(t, "Pulpen", receipt.Items[0].ProductName)
	assert.Equal(t, 1000.0, receipt.Items[0].UnitPrice)

	updated, _ := products.GetByID(context.Background(), pen.ID)
	assert.Equal(t, 7, updated.Stock)
}

func TestCreateSaleWithoutStoreScope(t *testing.T) {
	svc := NewReceiptService(&fakeReceiptRepo{}, &fakeProductRepo{}, nil)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		Items: []SaleItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	assert.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateSaleRejectsForeignProduct(t *testing.T) {
	storeID := uuid.New()
	other := entity.Product{ID: uuid.New(), StoreID: uuid.New(), Name: "Milik Toko Lain", SellPrice: 1000, Stock: 5}

	svc := NewReceiptService(&fakeReceiptRepo{}, &fakeProductRepo{products: []entity.Product{other}}, nil)
	_, err := svc.CreateSale(scopedContext(storeID, uuid.New()), &CreateSaleInput{
		Items: []SaleItemInput{{ProductID: other.ID, Quantity: 1}},
	})

	assert.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	storeID := uuid.New()
	pen := entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Pulpen", SellPrice: 1000, Stock: 1}

	receipts := &fakeReceiptRepo{}
	products := &fakeProductRepo{
		products:      []entity.Product{pen},
		decrementErrs: map[uuid.UUID]bool{pen.ID: true},
	}

	svc := NewReceiptService(receipts, products, nil)
	_, err := svc.CreateSale(scopedContext(storeID, uuid.New()), &CreateSaleInput{
		Items: []SaleItemInput{{ProductID: pen.ID, Quantity: 5}},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Pulpen")
	assert.Empty(t, receipts.receipts)
}

func TestCreateSaleInvalidDiscount(t *testing.T) {
	storeID := uuid.New()
	pen := entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Pulpen", SellPrice: 1000, Stock: 10}

	svc := NewReceiptService(&fakeReceiptRepo{}, &fakeProductRepo{products: []entity.Product{pen}}, nil)
	_, err := svc.CreateSale(scopedContext(storeID, uuid.New()), &CreateSaleInput{
		Discount: 5000,
		Items:    []SaleItemInput{{ProductID: pen.ID, Quantity: 1}},
	})

	assert.Error(t, err)
}

func TestCreateSaleInvalidatesDashboardCache(t *testing.T) {
	storeID := uuid.New()
	ownerID := uuid.New()
	pen := entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Pulpen", SellPrice: 1000, CostPrice: 600, Stock: 10}

	receipts := &fakeReceiptRepo{}
	products := &fakeProductRepo{products: []entity.Product{pen}}

	dashboard := newTestDashboard(receipts, products, &fakeAnalyticsRepo{}, time.Now())
	cached := NewCachedDashboard(dashboard, NewSnapshotCache(time.Minute))

	ctx := scopedContext(storeID, ownerID)
	stats := cached.TodayStats(ctx, ownerID, storeID)
	assert.Zero(t, stats.TodayRevenue)

	svc := NewReceiptService(receipts, products, cached)
	_, err := svc.CreateSale(ctx, &CreateSaleInput{
		PaymentMethod: "cash",
		Items:         []SaleItemInput{{ProductID: pen.ID, Quantity: 2}},
	})
	assert.NoError(t, err)

	stats = cached.TodayStats(ctx, ownerID, storeID)
	assert.Equal(t, 2000.0, stats.TodayRevenue)
}

func TestGetReceiptScopedToOwner(t *testing.T) {
	ownerID := uuid.New()
	receipts := &fakeReceiptRepo{}
	r := &entity.Receipt{OwnerID: ownerID, Total: 100}
	receipts.Create(context.Background(), r)

	svc := NewReceiptService(receipts, &fakeProductRepo{}, nil)

	got, err := svc.GetReceipt(context.Background(), ownerID, r.ID)
	assert.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	_, err = svc.GetReceipt(context.Background(), uuid.New(), r.ID)
	assert.Error(t, err)
}
