package main

import (
	"fmt"
	"net/http"
	"os"

	"ledgerbook/internal/config"
	"ledgerbook/internal/database"
	"ledgerbook/internal/handlers"
	"ledgerbook/internal/logger"
	"ledgerbook/internal/middleware"
	"ledgerbook/internal/services"
	"ledgerbook/internal/validator"

	"github.com/gin-gonic/gin"
)

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
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db, categoryService)
	settingsService := services.NewSettingsService(db)
	reportService := services.NewReportService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, categoryService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, auditService)
	taxHandler := handlers.NewTaxHandler(settingsService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		if err := dbManager.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Company tax settings
	settings := protected.Group("/settings")
	settings.GET("/tax", settingsHandler.GetSettings)
	settings.PUT("/tax", settingsHandler.UpdateSettings)

	// Tax calculation
	protected.POST("/tax/calculate", taxHandler.Calculate)

	// Reports
	reportRoutes := protected.Group("/reports")
	reportRoutes.GET("/summary", reportHandler.GetSummary)
	reportRoutes.GET("/export", reportHandler.ExportCSV)

	// Unmatched routes return the list of available endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "endpoint not found",
			"available_endpoints": []string{
				"POST /api/v1/auth/register",
				"POST /api/v1/auth/login",
				"GET /api/v1/profile",
				"POST /api/v1/transactions",
				"GET /api/v1/transactions",
				"GET /api/v1/transactions/:id",
				"PUT /api/v1/transactions/:id",
				"DELETE /api/v1/transactions/:id",
				"POST /api/v1/categories",
				"GET /api/v1/categories",
				"GET /api/v1/categories/:id",
				"PUT /api/v1/categories/:id",
				"DELETE /api/v1/categories/:id",
				"GET /api/v1/settings/tax",
				"PUT /api/v1/settings/tax",
				"POST /api/v1/tax/calculate",
				"GET /api/v1/reports/summary",
				"GET /api/v1/reports/export",
				"GET /api/health",
			},
		})
	})

	log.Infof("Starting ledgerbook backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
