package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kasirku/kasir-api/internal/application/service"
	"github.com/kasirku/kasir-api/internal/presentation/http/dto/response"
	"github.com/kasirku/kasir-api/internal/presentation/http/middleware"
)

// DashboardHandler handles dashboard-related HTTP requests. Aggregations
// are scoped by the X-Store-ID header; requests without a store scope
// get the zero/empty defaults rather than an error, so the dashboard is
// always renderable.
type DashboardHandler struct {
	dashboard *service.CachedDashboard
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *service.CachedDashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetStats handles getting today's revenue, profit, transaction count
// and low-stock count
func (h *DashboardHandler) GetStats(c *gin.Context) {
	ownerID := middleware.GetStoreOwnerID(c)
	storeID := middleware.GetStoreID(c)

	stats := h.dashboard.TodayStats(c.Request.Context(), ownerID, storeID)
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// GetWeeklySales handles getting the trailing 7-day sales series
func (h *DashboardHandler) GetWeeklySales(c *gin.Context) {
	ownerID := middleware.GetStoreOwnerID(c)
	storeID := middleware.GetStoreID(c)

	sales := h.dashboard.WeeklySales(c.Request.Context(), ownerID, storeID)
	response.OK(c, "Weekly sales retrieved successfully", sales)
}

// GetTopProducts handles getting this month's top products by revenue
func (h *DashboardHandler) GetTopProducts(c *gin.Context) {
	ownerID := middleware.GetStoreOwnerID(c)
	storeID := middleware.GetStoreID(c)

	products := h.dashboard.TopProducts(c.Request.Context(), ownerID, storeID)
	response.OK(c, "Top products retrieved successfully", products)
}

// GetMonthComparison handles getting the month-over-month revenue
// comparison
func (h *DashboardHandler) GetMonthComparison(c *gin.Context) {
	ownerID := middleware.GetStoreOwnerID(c)
	storeID := middleware.GetStoreID(c)

	comparison := h.dashboard.CompareMonths(c.Request.Context(), ownerID, storeID)
	response.OK(c, "Month comparison retrieved successfully", comparison)
}

// GetSnapshot handles getting all four aggregations in one call
func (h *DashboardHandler) GetSnapshot(c *gin.Context) {
	ownerID := middleware.GetStoreOwnerID(c)
	storeID := middleware.GetStoreID(c)

	snapshot := h.dashboard.Snapshot(c.Request.Context(), ownerID, storeID)
	response.OK(c, "Dashboard snapshot retrieved successfully", snapshot)
}
