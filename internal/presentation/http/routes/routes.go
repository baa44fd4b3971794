package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kasirku/kasir-api/internal/config"
	domainRepo "github.com/kasirku/kasir-api/internal/domain/repository"
	"github.com/kasirku/kasir-api/internal/presentation/http/handler"
	"github.com/kasirku/kasir-api/internal/presentation/http/middleware"
	"github.com/kasirku/kasir-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Product   *handler.ProductHandler
	Receipt   *handler.ReceiptHandler
	Store     *handler.StoreHandler
	User      *handler.UserHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	StoreRepo       domainRepo.StoreRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes: authenticated, approved, rate limited.
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.RequireApproval())

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Store scope from the X-Store-ID header.
		protected.Use(middleware.StoreMiddleware(deps.StoreRepo))

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	registerDashboardRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerReceiptRoutes(protected, h, deps)
	registerStoreRoutes(protected, h)
	registerAdminRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("", h.Dashboard.GetSnapshot)
		dashboard.GET("/stats", h.Dashboard.GetStats)
		dashboard.GET("/weekly-sales", h.Dashboard.GetWeeklySales)
		dashboard.GET("/top-products", h.Dashboard.GetTopProducts)
		dashboard.GET("/month-comparison", h.Dashboard.GetMonthComparison)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	products.Use(middleware.RequireStore())
	{
		products.GET("", h.Product.ListProducts)
		products.POST("", h.Product.CreateProduct)
		products.GET("/low-stock", h.Product.GetLowStock)
		products.GET("/:id", h.Product.GetProduct)
		products.PUT("/:id", h.Product.UpdateProduct)
		products.DELETE("/:id", h.Product.DeleteProduct)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	receipts := protected.Group("/receipts")
	receipts.Use(middleware.RequireStore())
	{
		receipts.GET("", h.Receipt.ListReceipts)
		// Checkout uses idempotency middleware so terminal retries
		// cannot create duplicate sales.
		receipts.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Receipt.CreateSale)
		receipts.GET("/:id", h.Receipt.GetReceipt)
		receipts.POST("/:id/print", h.Receipt.PrintReceipt)
	}
}

func registerStoreRoutes(protected *gin.RouterGroup, h *Handlers) {
	stores := protected.Group("/stores")
	{
		stores.GET("", h.Store.ListStores)
		stores.POST("", h.Store.CreateStore)
		stores.GET("/:id", h.Store.GetStore)
		stores.PUT("/:id", h.Store.UpdateStore)
		stores.DELETE("/:id", h.Store.DeleteStore)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", h.User.ListUsers)
		admin.POST("/users/:id/approve", h.User.ApproveUser)
		admin.POST("/users/:id/revoke", h.User.RevokeUser)
		admin.DELETE("/users/:id", h.User.DeleteUser)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
	}
}
