package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princebakery/pos-api/internal/application/service"
	"github.com/princebakery/pos-api/internal/config"
	"github.com/princebakery/pos-api/internal/infrastructure/database"
	"github.com/princebakery/pos-api/internal/infrastructure/repository"
	"github.com/princebakery/pos-api/internal/presentation/http/handler"
	"github.com/princebakery/pos-api/internal/presentation/http/routes"
	"github.com/princebakery/pos-api/pkg/printer"
	"github.com/princebakery/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
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

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Reap expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: failed to clean up idempotency keys: %v", err)
			}
		}
	}()

	// Initialize thermal printers. An empty address disables that copy.
	kitchenPrinter := printer.NewNullPrinter()
	if cfg.Printer.KitchenAddr != "" {
		kitchenPrinter = printer.NewNetworkPrinter(cfg.Printer.KitchenAddr, cfg.Printer.DialTimeout)
	}
	counterPrinter := printer.NewNullPrinter()
	if cfg.Printer.CounterAddr != "" {
		counterPrinter = printer.NewNetworkPrinter(cfg.Printer.CounterAddr, cfg.Printer.DialTimeout)
	}

	// Initialize services
	cartLocks := service.NewCartLocks()
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	cartService := service.NewCartService(cartRepo, productRepo, cartLocks)
	receiptService := service.NewReceiptService(
		kitchenPrinter,
		counterPrinter,
		cfg.Printer.Width,
		cfg.Restaurant,
		cfg.UPI,
	)
	orderService := service.NewOrderService(orderRepo, cartRepo, cartLocks, receiptService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Category: handler.NewCategoryHandler(categoryService),
		Cart:     handler.NewCartHandler(cartService),
		Order:    handler.NewOrderHandler(orderService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
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
		os.Exit(1)
	}
}
