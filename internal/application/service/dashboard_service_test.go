package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/entity"
	"github.com/kasirku/kasir-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
)

type fakeReceiptRepo struct {
	receipts []entity.Receipt
	items    []entity.ReceiptItem

	listErr  error
	itemsErr error

	listCalls  int
	itemsCalls int
}

func (f *fakeReceiptRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	receipt.ID = uuid.New()
	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = time.Now()
	}
	f.receipts = append(f.receipts, *receipt)
	return nil
}

func (f *fakeReceiptRepo) CreateItems(ctx context.Context, items []entity.ReceiptItem) error {
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	for i := range f.receipts {
		if f.receipts[i].ID == id {
			return &f.receipts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeReceiptRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeReceiptRepo) List(ctx context.Context, ownerID uuid.UUID, params *repository.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	return f.receipts, int64(len(f.receipts)), nil
}

func (f *fakeReceiptRepo) ListByOwnerBetween(ctx context.Context, ownerID uuid.UUID, from time.Time, to *time.Time, ascending bool) ([]entity.Receipt, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []entity.Receipt
	for _, r := range f.receipts {
		if r.OwnerID != ownerID {
			continue
		}
		if r.CreatedAt.Before(from) {
			continue
		}
		if to != nil && r.CreatedAt.After(*to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReceiptRepo) ListItemsByReceiptIDs(ctx context.Context, receiptIDs []uuid.UUID) ([]entity.ReceiptItem, error) {
	f.itemsCalls++
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}

	ids := make(map[uuid.UUID]bool, len(receiptIDs))
	for _, id := range receiptIDs {
		ids[id] = true
	}

	var out []entity.ReceiptItem
	for _, item := range f.items {
		if ids[item.ReceiptID] {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products []entity.Product

	listErr       error
	listCalls     int
	decrementErrs map[uuid.UUID]bool
	restored      map[uuid.UUID]int
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	product.ID = uuid.New()
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []entity.Product
	for _, p := range f.products {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByBarcode(ctx context.Context, storeID uuid.UUID, barcode string) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeProductRepo) List(ctx context.Context, storeID uuid.UUID, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return f.products, int64(len(f.products)), nil
}

func (f *fakeProductRepo) ListByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []entity.Product
	for _, p := range f.products {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetLowStock(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.StoreID == storeID && p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) AtomicDecrementStock(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id := range decrements {
		if f.decrementErrs[id] {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, errors.New("insufficient stock")
	}
	for i := range f.products {
		if qty, ok := decrements[f.products[i].ID]; ok {
			f.products[i].Stock -= qty
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) AtomicIncrementStock(ctx context.Context, increments map[uuid.UUID]int) error {
	if f.restored == nil {
		f.restored = make(map[uuid.UUID]int)
	}
	for id, qty := range increments {
		f.restored[id] += qty
	}
	return nil
}

type fakeAnalyticsRepo struct {
	sumFn func(from, to time.Time) (float64, error)
	calls int
}

func (f *fakeAnalyticsRepo) SumReceiptTotals(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (float64, error) {
	f.calls++
	if f.sumFn == nil {
		return 0, nil
	}
	return f.sumFn(from, to)
}

func (f *fakeAnalyticsRepo) CountLowStock(ctx context.Context, storeID uuid.UUID, threshold int) (int64, error) {
	return 0, nil
}

func newTestDashboard(receipts *fakeReceiptRepo, products *fakeProductRepo, analytics *fakeAnalyticsRepo, now time.Time) *DashboardService {
	s := NewDashboardService(receipts, products, analytics)
	s.now = func() time.Time { return now }
	return s
}

func receiptAt(ownerID uuid.UUID, createdAt time.Time, total, profit float64) entity.Receipt {
	return entity.Receipt{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		CreatedAt: createdAt,
		Total:     total,
		Profit:    profit,
	}
}

func TestTodayStats(t *testing.T) {
	ownerID := uuid.New()
	storeID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	receipts := &fakeReceiptRepo{receipts: []entity.Receipt{
		receiptAt(ownerID, now.Add(-3*time.Hour), 100, 20),
		receiptAt(ownerID, now.Add(6*time.Hour), 50, 10),
		receiptAt(ownerID, now.AddDate(0, 0, -1), 30, 5),
	}}
	products := &fakeProductRepo{products: []entity.Product{
		{ID: uuid.New(), StoreID: storeID, Stock: 3},
		{ID: uuid.New(), StoreID: storeID, Stock: 10},
	}}

	s := newTestDashboard(receipts, products, &fakeAnalyticsRepo{}, now)
	stats := s.TodayStats(context.Background(), ownerID, storeID)

	assert.Equal(t, 150.0, stats.TodayRevenue)
	assert.Equal(t, 30.0, stats.TodayProfit)
	assert.Equal(t, 2, stats.TodayTransactions)
	assert.Equal(t, 1, stats.LowStockCount)
}

func TestTodayStatsBoundaryIsLowStockInclusive(t *testing.T) {
	ownerID := uuid.New()
	storeID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	products := &fakeProductRepo{products: []entity.Product{
		{ID: uuid.New(), StoreID: storeID, Stock: 5},
		{ID: uuid.New(), StoreID: storeID, Stock: 6},
		{ID: uuid.New(), StoreID: storeID, Stock: 0},
	}}

	s := newTestDashboard(&fakeReceiptRepo{}, products, &fakeAnalyticsRepo{}, now)
	stats := s.TodayStats(context.Background(), ownerID, storeID)

	assert.Equal(t, 2, stats.LowStockCount)
}

func TestTodayStatsWithoutScopeSkipsQueries(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	receipts := &fakeReceiptRepo{}
	products := &fakeProductRepo{}

	s := newTestDashboard(receipts, products, &fakeAnalyticsRepo{}, now)
	stats := s.TodayStats(context.Background(), uuid.Nil, uuid.Nil)

	assert.Equal(t, &DashboardStats{}, stats)
	assert.Zero(t, receipts.listCalls)
	assert.Zero(t, products.listCalls)
}

func TestTodayStatsFetchFailureYieldsZeroDefaults(t *testing.T) {
	ownerID := uuid.New()
	storeID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	receipts := &fakeReceiptRepo{listErr: errors.New("connection refused")}
	products := &fakeProductRepo{listErr: errors.New("connection refused")}

	s := newTestDashboard(receipts, products, &fakeAnalyticsRepo{}, now)
	stats := s.TodayStats(context.Background(), ownerID, storeID)

	assert.Equal(t, &DashboardStats{}, stats)
}

func TestWeeklySalesAlwaysSevenSlots(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	s := newTestDashboard(&fakeReceiptRepo{}, &fakeProductRepo{}, &fakeAnalyticsRepo{}, now)

	points := s.WeeklySales(context.Background(), uuid.New())

	assert.Len(t, points, 7)
	assert.Equal(t, "9 Mar", points[0].Date)
	assert.Equal(t, "15 Mar", points[6].Date)
	for _, p := range points {
		assert.Zero(t, p.Revenue)
		assert.Zero(t, p.Transactions)
	}
}

func TestWeeklySalesBucketsByCalendarDay(t *testing.T) {
	ownerID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	receipts := &fakeReceiptRepo{receipts: []entity.Receipt{
		receiptAt(ownerID, time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local), 100, 0),
		receiptAt(ownerID, time.Date(2026, 3, 15, 18, 0, 0, 0, time.Local), 50, 0),
		receiptAt(ownerID, time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local), 70, 0),
	}}

	s := newTestDashboard(receipts, &fakeProductRepo{}, &fakeAnalyticsRepo{}, now)
	points := s.WeeklySales(context.Background(), ownerID)

	assert.Len(t, points, 7)
	assert.Equal(t, 150.0, points[6].Revenue)
	assert.Equal(t, 2, points[6].Transactions)
	assert.Equal(t, 70.0, points[3].Revenue)
	assert.Equal(t, 1, points[3].Transactions)
	assert.Zero(t, points[0].Revenue)
}

func TestWeeklySalesWithoutScopeSkipsFetch(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	receipts := &fakeReceiptRepo{}
	s := newTestDashboard(receipts, &fakeProductRepo{}, &fakeAnalyticsRepo{}, now)

	points := s.WeeklySales(context.Background(), uuid.Nil)

	assert.Len(t, points, 7)
	assert.Zero(t, receipts.listCalls)
}

func TestTopProductsMergesByName(t *testing.T) {
	ownerID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	r1 := receiptAt(ownerID, time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local), 3000, 0)
	r2 := receiptAt(ownerID, time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local), 2000, 0)

	receipts := &fakeReceiptRepo{
		receipts: []entity.Receipt{r1, r2},
		items: []entity.ReceiptItem{
			{ReceiptID: r1.ID, ProductName: "Pulpen", Quantity: 3, UnitPrice: 1000},
			{ReceiptID: r2.ID, ProductName: "Pulpen", Quantity: 2, UnitPrice: 1000},
		},
	}

	s := newTestDashboard(receipts, &fakeProductRepo{}, &fakeAnalyticsRepo{}, now)
	top := s.TopProducts(context.Background(), ownerID)

	assert.Len(t, top, 1)
	assert.Equal(t, TopProduct{Name: "Pulpen", Quantity: 5, Revenue: 5000}, top[0])
}

func TestTopProductsSortedAndCapped(t *testing.T) {
	ownerID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	r := receiptAt(ownerID, time.Date(2026, 3, 5, 9, 0, 0, 0, time.Local), 0, 0)
	items := []entity.ReceiptItem{
		{ReceiptID: r.ID, ProductName: "A", Quantity: 1, UnitPrice: 100},
		{ReceiptID: r.ID, ProductName: "B", Quantity: 1, UnitPrice: 700},
		{ReceiptID: r.ID, ProductName: "C", Quantity: 1, UnitPrice: 300},
		{ReceiptID: r.ID, ProductName: "D", Quantity: 1, UnitPrice: 500},
		{ReceiptID: r.ID, ProductName: "E", Quantity: 1, UnitPrice: 200},
		{ReceiptID: r.ID, ProductName: "F", Quantity: 1, UnitPrice: 600},
	}

	receipts := &fakeReceiptRepo{receipts: []entity.Receipt{r}, items: items}
	s := newTestDashboard(receipts, &fakeProductRepo{}, &fakeAnalyticsRepo{}, now)

	top := s.TopProducts(context.Background(), ownerID)

	assert.Len(t, top, 5)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Revenue, top[i].Revenue)
	}
	assert.Equal(t, "B", top[0].Name)
	assert.NotContains(t, []string{top[0].Name, top[1].Name, top[2].Name, top[3].Name, top[4].Name}, "A")
}

func TestTopProductsEmptyMonthSkipsItemFetch(t *testing.T) {
	ownerID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	receipts := &fakeReceiptRepo{receipts: []entity.Receipt{
		// Previous month only.
		receiptAt(ownerID, time.Date(2026, 2, 20, 9, 0, 0, 0, time.Local), 100, 0),
	}}

	s := newTestDashboard(receipts, &fakeProductRepo{}, &fakeAnalyticsRepo{}, now)
	top := s.TopProducts(context.Background(), ownerID)

	assert.Empty(t, top)
	assert.Zero(t, receipts.itemsCalls)
}

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		previous float64
		current  float64
		want     int
	}{
		{"both zero", 0, 0, 0},
		{"from zero", 0, 500, 100},
		{"growth", 1000, 1500, 50},
		{"decline", 1000, 500, -50},
		{"rounded", 1000, 1333, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, growthRate(tt.current, tt.previous))
		})
	}
}

func TestCompareMonths(t *testing.T) {
	ownerID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	currentStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)

	analytics := &fakeAnalyticsRepo{sumFn: func(from, to time.Time) (float64, error) {
		if from.Equal(currentStart) {
			return 1500, nil
		}
		return 1000, nil
	}}

	s := newTestDashboard(&fakeReceiptRepo{}, &fakeProductRepo{}, analytics, now)
	cmp := s.CompareMonths(context.Background(), ownerID)

	assert.Equal(t, 1500.0, cmp.CurrentMonth)
	assert.Equal(t, 1000.0, cmp.PreviousMonth)
	assert.Equal(t, 50, cmp.GrowthRate)
	assert.Equal(t, 2, analytics.calls)
}

func TestCompareMonthsWithoutScope(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	analytics := &fakeAnalyticsRepo{}

	s := newTestDashboard(&fakeReceiptRepo{}, &fakeProductRepo{}, analytics, now)
	cmp := s.CompareMonths(context.Background(), uuid.Nil)

	assert.Equal(t, &MonthComparison{}, cmp)
	assert.Zero(t, analytics.calls)
}

func TestSnapshotBundlesAllAggregations(t *testing.T) {
	ownerID := uuid.New()
	storeID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	receipts := &fakeReceiptRepo{receipts: []entity.Receipt{
		receiptAt(ownerID, now.Add(-time.Hour), 200, 40),
	}}
	products := &fakeProductRepo{products: []entity.Product{
		{ID: uuid.New(), StoreID: storeID, Stock: 1},
	}}

	s := newTestDashboard(receipts, products, &fakeAnalyticsRepo{}, now)
	snap := s.Snapshot(context.Background(), ownerID, storeID)

	assert.NotNil(t, snap.Stats)
	assert.Equal(t, 200.0, snap.Stats.TodayRevenue)
	assert.Len(t, snap.WeeklySales, 7)
	assert.NotNil(t, snap.Comparison)
	assert.NotNil(t, snap.TopProducts)
}
