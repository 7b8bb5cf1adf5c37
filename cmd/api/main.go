package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/shopbook/shopbook-api/internal/application/service"
	"github.com/shopbook/shopbook-api/internal/config"
	"github.com/shopbook/shopbook-api/internal/infrastructure/database"
	"github.com/shopbook/shopbook-api/internal/infrastructure/repository"
	"github.com/shopbook/shopbook-api/internal/presentation/http/handler"
	"github.com/shopbook/shopbook-api/internal/presentation/http/routes"
	"github.com/shopbook/shopbook-api/pkg/utils"
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

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	txManager := repository.NewTxManager(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	ledgerService := service.NewLedgerService(transactionRepo)
	inventoryService := service.NewInventoryService(productRepo, historyRepo, ledgerService, txManager)
	salesService := service.NewSalesService(saleRepo, productRepo, debtRepo, historyRepo, ledgerService, txManager)
	debtService := service.NewDebtService(debtRepo, salesService, ledgerService, txManager)
	analyticsService := service.NewAnalyticsService(saleRepo, productRepo, debtRepo, transactionRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(inventoryService),
		Sale:      handler.NewSaleHandler(salesService),
		Debt:      handler.NewDebtHandler(debtService),
		Ledger:    handler.NewLedgerHandler(ledgerService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Settings:  handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
