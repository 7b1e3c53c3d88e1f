package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"creditflow/internal/config"
	"creditflow/internal/database"
	"creditflow/internal/handlers"
	"creditflow/internal/logger"
	"creditflow/internal/middleware"
	"creditflow/internal/services"
	"creditflow/internal/validator"

	_ "creditflow/internal/docs" // Import swagger docs
)

// @title           Creditflow API
// @version         1.0
// @description     Creditflow manages credit sales, debts, installment schedules, and recovery postings for commercial portfolios.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	portfolioService := services.NewPortfolioService(db)
	customerService := services.NewCustomerService(db)
	saleService := services.NewSaleService(db, portfolioService)
	debtService := services.NewDebtService(db)
	recoveryService := services.NewRecoveryService(db, appConfig.AllowOverpayment)
	sweepService := services.NewSweepService(db)
	searchService := services.NewSearchService(db)
	statsService := services.NewStatsService(db)
	historyService := services.NewHistoryService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, historyService)
	customerHandler := handlers.NewCustomerHandler(customerService, userService, historyService)
	saleHandler := handlers.NewSaleHandler(saleService, userService, historyService)
	debtHandler := handlers.NewDebtHandler(debtService, userService)
	recoveryHandler := handlers.NewRecoveryHandler(recoveryService, userService, historyService)
	searchHandler := handlers.NewSearchHandler(searchService, userService)
	statsHandler := handlers.NewStatsHandler(statsService, userService)
	sweepHandler := handlers.NewSweepHandler(sweepService)
	historyHandler := handlers.NewHistoryHandler(historyService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Sweep route, guarded by API key for schedulers
	sweep := v1.Group("/sweep")
	sweep.Use(middleware.SweepAuthMiddleware(appConfig.SweepAPIKey))
	sweep.POST("/run", sweepHandler.RunSweep)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Portfolio routes
	portfolios := protected.Group("/portfolios")
	portfolios.POST("", portfolioHandler.CreatePortfolio)
	portfolios.GET("", portfolioHandler.GetPortfolios)
	portfolios.GET("/:id", portfolioHandler.GetPortfolio)
	portfolios.POST("/:id/deactivate", portfolioHandler.DeactivatePortfolio)

	// Customer routes
	customers := protected.Group("/customers")
	customers.POST("", customerHandler.CreateCustomer)
	customers.GET("", customerHandler.GetCustomers)
	customers.GET("/:id", customerHandler.GetCustomer)
	customers.PUT("/:id", customerHandler.UpdateCustomer)
	customers.POST("/:id/deactivate", customerHandler.DeactivateCustomer)

	// Credit sale routes
	sales := protected.Group("/sales")
	sales.POST("", saleHandler.CreateSale)
	sales.GET("", saleHandler.GetSales)
	sales.GET("/:id", saleHandler.GetSale)
	sales.PATCH("/:id/status", saleHandler.UpdateSaleStatus)

	// Debt and term routes
	debts := protected.Group("/debts")
	debts.GET("", debtHandler.GetDebts)
	debts.GET("/:id", debtHandler.GetDebt)
	debts.GET("/:id/terms", debtHandler.GetDebtTerms)
	protected.GET("/terms/:id", debtHandler.GetTerm)

	// Recovery routes
	recoveries := protected.Group("/recoveries")
	recoveries.POST("", recoveryHandler.PostRecovery)
	recoveries.GET("", recoveryHandler.GetRecoveries)
	recoveries.GET("/:id", recoveryHandler.GetRecovery)

	// Search, stats, history
	protected.GET("/search", searchHandler.Search)
	protected.GET("/stats/dashboard", statsHandler.GetDashboard)
	protected.GET("/history/:type/:id", historyHandler.GetEntityHistory)

	log.Infof("Starting Creditflow backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
