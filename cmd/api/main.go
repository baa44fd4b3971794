package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kasirku/kasir-api/internal/application/service"
	"github.com/kasirku/kasir-api/internal/config"
	"github.com/kasirku/kasir-api/internal/infrastructure/database"
	"github.com/kasirku/kasir-api/internal/infrastructure/repository"
	"github.com/kasirku/kasir-api/internal/presentation/http/handler"
	"github.com/kasirku/kasir-api/internal/presentation/http/routes"
	"github.com/kasirku/kasir-api/pkg/oauth"
	"github.com/kasirku/kasir-api/pkg/printer"
	"github.com/kasirku/kasir-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the default admin account
	if err := database.SeedDefaultAdmin(db); err != nil {
		log.Printf("Warning: Failed to seed default admin: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, storeRepo, jwtManager)
	storeService := service.NewStoreService(storeRepo)
	productService := service.NewProductService(productRepo, analyticsRepo)
	userService := service.NewUserService(userRepo)

	dashboardService := service.NewDashboardService(receiptRepo, productRepo, analyticsRepo)
	snapshotCache := service.NewSnapshotCache(cfg.Dashboard.CacheTTL)
	cachedDashboard := service.NewCachedDashboard(dashboardService, snapshotCache)

	receiptService := service.NewReceiptService(receiptRepo, productRepo, cachedDashboard)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleOAuthService),
		Dashboard: handler.NewDashboardHandler(cachedDashboard),
		Product:   handler.NewProductHandler(productService),
		Receipt:   handler.NewReceiptHandler(receiptService, printerService, storeService),
		Store:     handler.NewStoreHandler(storeService),
		User:      handler.NewUserHandler(userService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		StoreRepo:       storeRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
