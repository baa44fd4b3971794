package service

import (
	"context"

	"github.com/google/uuid"
)

// CachedDashboard fronts DashboardService with a per-store single-flight
// cache. Each operation is keyed by the store identifier plus the
// operation name, so a burst of dashboard loads hits the database once
// per operation per store within the TTL.
type CachedDashboard struct {
	dashboard *DashboardService
	cache     *SnapshotCache
}

// NewCachedDashboard creates a cached dashboard front
func NewCachedDashboard(dashboard *DashboardService, cache *SnapshotCache) *CachedDashboard {
	return &CachedDashboard{dashboard: dashboard, cache: cache}
}

func dashboardKey(storeID uuid.UUID, op string) string {
	return storeID.String() + ":" + op
}

func (c *CachedDashboard) TodayStats(ctx context.Context, ownerID, storeID uuid.UUID) *DashboardStats {
	value, _ := c.cache.Get(dashboardKey(storeID, "stats"), func() (any, error) {
		return c.dashboard.TodayStats(ctx, ownerID, storeID), nil
	})
	return value.(*DashboardStats)
}

func (c *CachedDashboard) WeeklySales(ctx context.Context, ownerID, storeID uuid.UUID) []WeeklySalesPoint {
	value, _ := c.cache.Get(dashboardKey(storeID, "weekly"), func() (any, error) {
		return c.dashboard.WeeklySales(ctx, ownerID), nil
	})
	return value.([]WeeklySalesPoint)
}

func (c *CachedDashboard) TopProducts(ctx context.Context, ownerID, storeID uuid.UUID) []TopProduct {
	value, _ := c.cache.Get(dashboardKey(storeID, "top-products"), func() (any, error) {
		return c.dashboard.TopProducts(ctx, ownerID), nil
	})
	return value.([]TopProduct)
}

func (c *CachedDashboard) CompareMonths(ctx context.Context, ownerID, storeID uuid.UUID) *MonthComparison {
	value, _ := c.cache.Get(dashboardKey(storeID, "month-comparison"), func() (any, error) {
		return c.dashboard.CompareMonths(ctx, ownerID), nil
	})
	return value.(*MonthComparison)
}

func (c *CachedDashboard) Snapshot(ctx context.Context, ownerID, storeID uuid.UUID) *DashboardSnapshot {
	value, _ := c.cache.Get(dashboardKey(storeID, "snapshot"), func() (any, error) {
		return c.dashboard.Snapshot(ctx, ownerID, storeID), nil
	})
	return value.(*DashboardSnapshot)
}

// InvalidateStore drops every cached dashboard view of the store.
// Called after a completed sale so the next load reflects it.
func (c *CachedDashboard) InvalidateStore(storeID uuid.UUID) {
	c.cache.InvalidatePrefix(storeID.String() + ":")
}
