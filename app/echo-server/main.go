package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fsmpAdvisor/app/echo-server/router"
	"fsmpAdvisor/business/catalog"
	"fsmpAdvisor/business/recommender"
	"fsmpAdvisor/business/stats"
	"fsmpAdvisor/internal/middleware"
	psqlRepo "fsmpAdvisor/internal/repository/postgres"
	redisRepo "fsmpAdvisor/internal/repository/redis"
	"fsmpAdvisor/internal/rest"
	"fsmpAdvisor/pkg/config"
	"fsmpAdvisor/pkg/database"
	redisdb "fsmpAdvisor/pkg/database/redis"
	"fsmpAdvisor/pkg/logger"
	"fsmpAdvisor/pkg/metrics"
	"fsmpAdvisor/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting FSMP Advisor", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init repo
	productRepo := psqlRepo.NewProductRepository(db)
	nutritionRepo := psqlRepo.NewNutritionRepository(db)
	eventRepo := psqlRepo.NewEventRepository(db)

	engineCfg := recommender.Config{
		Workers:      cfg.Engine.Workers,
		DefaultLimit: cfg.Engine.DefaultLimit,
		CacheTTL:     time.Duration(cfg.Engine.CacheTTLSeconds) * time.Second,
	}

	// Result cache is optional; the service runs uncached without redis.
	var resultCache recommender.ResultCache
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.InitRedis(cfg)
		if err != nil {
			logger.Warn("Failed to connect to redis, running without result cache", "error", err)
		} else {
			logger.Info("Redis connected successfully")
			resultCache = redisRepo.NewRecommendationCache(redisClient, engineCfg.CacheTTL)
		}
	}

	// Init service
	catalogService := catalog.NewCatalogService(productRepo, nutritionRepo)
	statsService := stats.NewStatsService(productRepo, nutritionRepo)
	recommenderService := recommender.NewRecommenderService(productRepo, nutritionRepo, eventRepo, resultCache, engineCfg)

	// Init handler
	productHandler := rest.NewProductHandler(catalogService)
	recommendHandler := rest.NewRecommendHandler(recommenderService)
	statsHandler := rest.NewStatsHandler(statsService)
	importHandler := rest.NewImportHandler(catalogService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupRecommendRoutes(api, recommendHandler, authRequired, adminOnly)
	router.SetupStatsRoutes(api, statsHandler)
	router.SetupImportRoutes(api, importHandler, authRequired, adminOnly)

	// Prometheus metrics
	metrics.Init()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
