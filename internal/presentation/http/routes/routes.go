package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopbook/shopbook-api/internal/config"
	"github.com/shopbook/shopbook-api/internal/presentation/http/handler"
	"github.com/shopbook/shopbook-api/internal/presentation/http/middleware"
	"github.com/shopbook/shopbook-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Sale      *handler.SaleHandler
	Debt      *handler.DebtHandler
	Ledger    *handler.LedgerHandler
	Analytics *handler.AnalyticsHandler
	Settings  *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: deps.Cfg.RateLimit.RequestsPerSecond,
			BurstSize:         deps.Cfg.RateLimit.BurstSize,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Inventory
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.POST("/:id/restock", h.Product.Restock)
		products.GET("/:id/history", h.Product.History)
	}

	// Sales
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Record)
		sales.GET("/:id", h.Sale.Get)
	}

	// Debt book
	debts := protected.Group("/debts")
	{
		debts.GET("", h.Debt.List)
		debts.POST("", h.Debt.Create)
		debts.GET("/overdue", h.Debt.Overdue)
		debts.GET("/:id", h.Debt.Get)
		debts.POST("/:id/deposits", h.Debt.AddDeposit)
		debts.POST("/:id/mark-paid", h.Debt.MarkPaid)
	}

	// Financial ledger
	finance := protected.Group("/finance")
	{
		finance.GET("/transactions", h.Ledger.List)
		finance.POST("/transactions", h.Ledger.Add)
		finance.POST("/opening-balance", h.Ledger.SetOpeningBalance)
		finance.GET("/summary", h.Ledger.Summary)
	}

	// Analytics
	analytics := protected.Group("/analytics")
	{
		analytics.GET("/dashboard", h.Analytics.Dashboard)
		analytics.GET("/sales-series", h.Analytics.SalesSeries)
		analytics.GET("/top-products", h.Analytics.TopProducts)
		analytics.GET("/payment-split", h.Analytics.PaymentSplit)
		analytics.GET("/categories", h.Analytics.Categories)
	}

	// Company settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)
}
