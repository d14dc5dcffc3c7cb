package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/crosayo/cardstock/internal/auth"
	"github.com/crosayo/cardstock/internal/handler"
	mid "github.com/crosayo/cardstock/internal/middleware"
	"github.com/crosayo/cardstock/internal/scrape"
	"github.com/crosayo/cardstock/pkg/config"
	"github.com/crosayo/cardstock/pkg/database"
	"github.com/crosayo/cardstock/pkg/jwtutil"
	"github.com/crosayo/cardstock/pkg/logger"
	"github.com/crosayo/cardstock/prometheus"
)

func main() {
	// Load .env file if present; environment variables win otherwise.
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	logger.Init(appConfig.Server.Env)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting cardstock",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	users, err := auth.LoadUserFile(appConfig.Auth.UserFile)
	if err != nil {
		log.Fatal("Failed to load user file", zap.Error(err))
	}
	log.Info("User file loaded", zap.String("path", appConfig.Auth.UserFile))

	scraper := scrape.NewScraper(appConfig.Scrape.Timeout, appConfig.Scrape.RequestsPerMinute, log)
	previews := scrape.NewPreviewCache(appConfig.Scrape.PreviewTTL)
	handler.Initialize(users, scraper, previews)

	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/auth/login", handler.Login)

	// Catalog API routes
	itemAPI := e.Group("/api/items", mid.AuthMiddleware)
	itemAPI.GET("", handler.ListItems)
	itemAPI.GET("/by-category", handler.ListByCategory)
	itemAPI.GET("/export", handler.ExportCSV)
	itemAPI.POST("/import", handler.ImportCSV)
	itemAPI.POST("/batch-stock", handler.BatchStock)
	itemAPI.POST("/bulk-delete", handler.BulkDeleteItems)
	itemAPI.GET("/:id", handler.GetItem)
	itemAPI.POST("", handler.CreateItem)
	itemAPI.PUT("/:id", handler.UpdateItem)
	itemAPI.DELETE("/:id", handler.DeleteItem)
	itemAPI.POST("/:id/stock", handler.AdjustStock)

	// Product master API routes
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("", handler.ListProducts)
	productAPI.GET("/check-categories", handler.CheckCategories)
	productAPI.GET("/:id", handler.GetProduct)
	productAPI.POST("", handler.CreateProduct)
	productAPI.PUT("/:id", handler.UpdateProduct)
	productAPI.DELETE("/:id", handler.DeleteProduct)

	// Admin routes
	adminAPI := e.Group("/api/admin", mid.AuthMiddleware)
	adminAPI.GET("/rarities", handler.ListRarities)
	adminAPI.POST("/unify-rarities", handler.UnifyRarities)

	// Scrape import routes
	scrapeAPI := e.Group("/api/scrape", mid.AuthMiddleware)
	scrapeAPI.POST("/preview", handler.ScrapePreview)
	scrapeAPI.POST("/confirm", handler.ScrapeConfirm)

	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
