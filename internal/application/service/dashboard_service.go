package service

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/kasirku/kasir-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// DashboardService derives dashboard statistics from raw receipts and
// products. Every operation is scoped to a store owner; a fetch failure
// is logged and treated as an empty result set so the dashboard always
// has something to render.
type DashboardService struct {
	receiptRepo   repository.ReceiptRepository
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository

	now func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	receiptRepo repository.ReceiptRepository,
	productRepo repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
) *DashboardService {
	return &DashboardService{
		receiptRepo:   receiptRepo,
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// DashboardStats is the "today" snapshot in local calendar date terms
type DashboardStats struct {
	TodayRevenue      float64 `json:"today_revenue"`
	TodayProfit       float64 `json:"today_profit"`
	TodayTransactions int     `json:"today_transactions"`
	LowStockCount     int     `json:"low_stock_count"`
}

// WeeklySalesPoint is one calendar day in the trailing 7-day series
type WeeklySalesPoint struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
}

// TopProduct is a month-to-date sales ranking entry
type TopProduct struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// MonthComparison compares current month-to-date revenue with the full
// previous month
type MonthComparison struct {
	CurrentMonth  float64 `json:"current_month"`
	PreviousMonth float64 `json:"previous_month"`
	GrowthRate    int     `json:"growth_rate"`
}

// DashboardSnapshot bundles all four aggregations for a single store
type DashboardSnapshot struct {
	Stats       *DashboardStats    `json:"stats"`
	WeeklySales []WeeklySalesPoint `json:"weekly_sales"`
	TopProducts []TopProduct       `json:"top_products"`
	Comparison  *MonthComparison   `json:"month_comparison"`
}

// TodayStats sums today's revenue, profit and transaction count and
// counts low-stock products. Missing scope identifiers short-circuit to
// the zero snapshot without querying.
func (s *DashboardService) TodayStats(ctx context.Context, ownerID, storeID uuid.UUID) *DashboardStats {
	stats := &DashboardStats{}
	if ownerID == uuid.Nil || storeID == uuid.Nil {
		return stats
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	receipts, err := s.receiptRepo.ListByOwnerBetween(ctx, ownerID, dayStart, &dayEnd, false)
	if err != nil {
		log.Printf("dashboard: today receipts fetch failed: %v", err)
		receipts = nil
	}
	for _, r := range receipts {
		stats.TodayRevenue += r.Total
		stats.TodayProfit += r.Profit
	}
	stats.TodayTransactions = len(receipts)

	products, err := s.productRepo.ListByStore(ctx, storeID)
	if err != nil {
		log.Printf("dashboard: products fetch failed: %v", err)
		products = nil
	}
	for _, p := range products {
		if p.IsLowStock() {
			stats.LowStockCount++
		}
	}

	return stats
}

// WeeklySales returns exactly 7 entries, one per local calendar day over
// the trailing week ending today, oldest first. Days without receipts
// stay at zero. Receipts whose calendar date falls outside the 7
// pre-seeded slots are dropped; the window is strict.
func (s *DashboardService) WeeklySales(ctx context.Context, ownerID uuid.UUID) []WeeklySalesPoint {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	points := make([]WeeklySalesPoint, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := dayStart.AddDate(0, 0, i-6)
		points[i] = WeeklySalesPoint{Date: day.Format("2 Jan")}
		index[day.Format("2006-01-02")] = i
	}

	if ownerID == uuid.Nil {
		return points
	}

	windowStart := dayStart.AddDate(0, 0, -6)
	receipts, err := s.receiptRepo.ListByOwnerBetween(ctx, ownerID, windowStart, nil, true)
	if err != nil {
		log.Printf("dashboard: weekly receipts fetch failed: %v", err)
		return points
	}

	for _, r := range receipts {
		key := r.CreatedAt.In(now.Location()).Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue
		}
		points[i].Revenue += r.Total
		points[i].Transactions++
	}

	return points
}

// topProductLimit caps the month-to-date product ranking
const topProductLimit = 5

// TopProducts ranks products sold this calendar month by revenue,
// descending, at most five entries. Line items are aggregated by the
// denormalized product name captured at sale time, so renamed products
// split and identically named products merge.
func (s *DashboardService) TopProducts(ctx context.Context, ownerID uuid.UUID) []TopProduct {
	if ownerID == uuid.Nil {
		return []TopProduct{}
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	receipts, err := s.receiptRepo.ListByOwnerBetween(ctx, ownerID, monthStart, nil, false)
	if err != nil {
		log.Printf("dashboard: monthly receipts fetch failed: %v", err)
		return []TopProduct{}
	}
	if len(receipts) == 0 {
		return []TopProduct{}
	}

	receiptIDs := make([]uuid.UUID, len(receipts))
	for i, r := range receipts {
		receiptIDs[i] = r.ID
	}

	items, err := s.receiptRepo.ListItemsByReceiptIDs(ctx, receiptIDs)
	if err != nil {
		log.Printf("dashboard: receipt items fetch failed: %v", err)
		return []TopProduct{}
	}

	byName := make(map[string]int)
	ranked := make([]TopProduct, 0)
	for _, item := range items {
		i, ok := byName[item.ProductName]
		if !ok {
			i = len(ranked)
			byName[item.ProductName] = i
			ranked = append(ranked, TopProduct{Name: item.ProductName})
		}
		ranked[i].Quantity += item.Quantity
		ranked[i].Revenue += item.UnitPrice * float64(item.Quantity)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if len(ranked) > topProductLimit {
		ranked = ranked[:topProductLimit]
	}

	return ranked
}

// CompareMonths sums revenue for the current month to date and the full
// previous month, querying both ranges concurrently, and derives the
// growth rate as a rounded integer percentage.
func (s *DashboardService) CompareMonths(ctx context.Context, ownerID uuid.UUID) *MonthComparison {
	if ownerID == uuid.Nil {
		return &MonthComparison{}
	}

	now := s.now()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousStart := currentStart.AddDate(0, -1, 0)
	previousEnd := currentStart.Add(-time.Second)

	var current, previous float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sum, err := s.analyticsRepo.SumReceiptTotals(gctx, ownerID, currentStart, now)
		if err != nil {
			log.Printf("dashboard: current month sum failed: %v", err)
			return nil
		}
		current = sum
		return nil
	})
	g.Go(func() error {
		sum, err := s.analyticsRepo.SumReceiptTotals(gctx, ownerID, previousStart, previousEnd)
		if err != nil {
			log.Printf("dashboard: previous month sum failed: %v", err)
			return nil
		}
		previous = sum
		return nil
	})
	_ = g.Wait()

	return &MonthComparison{
		CurrentMonth:  current,
		PreviousMonth: previous,
		GrowthRate:    growthRate(current, previous),
	}
}

// growthRate returns the month-over-month change as a rounded integer
// percent. A previous month of zero reads as 100% growth when anything
// was sold this month and 0% otherwise.
func growthRate(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}

// Snapshot runs all four aggregations concurrently and bundles the
// results. Individual failures have already been coerced to defaults,
// so a snapshot is always produced.
func (s *DashboardService) Snapshot(ctx context.Context, ownerID, storeID uuid.UUID) *DashboardSnapshot {
	snap := &DashboardSnapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.Stats = s.TodayStats(gctx, ownerID, storeID)
		return nil
	})
	g.Go(func() error {
		snap.WeeklySales = s.WeeklySales(gctx, ownerID)
		return nil
	})
	g.Go(func() error {
		snap.TopProducts = s.TopProducts(gctx, ownerID)
		return nil
	})
	g.Go(func() error {
		snap.Comparison = s.CompareMonths(gctx, ownerID)
		return nil
	})
	_ = g.Wait()

	return snap
}
