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

	"dmars/app/echo-server/router"
	analyticsService "dmars/business/analytics"
	listingService "dmars/business/listing"
	"dmars/business/ranking"
	"dmars/internal/middleware"
	psqlRepo "dmars/internal/repository/postgres"
	"dmars/internal/rest"
	"dmars/pkg/config"
	"dmars/pkg/database"
	"dmars/pkg/logger"
	"dmars/pkg/metrics"

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
	defer logger.Sync()

	logger.Info("Starting DMARS backend", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init metrics
	metrics.Init()

	// Init repo
	listingRepo := psqlRepo.NewListingRepository(db)
	analyticsRepo := psqlRepo.NewAnalyticsRepository(db)

	// Init service
	rankEngine := ranking.NewEngine(ranking.DefaultConfig())
	listingSvc := listingService.NewListingService(listingRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo)
	rankingSvc := ranking.NewRankingService(listingRepo, rankEngine)

	// Init handler
	listingHandler := rest.NewListingHandler(listingSvc)
	analyticsHandler := rest.NewAnalyticsHandler(analyticsSvc)
	recommendationHandler := rest.NewRecommendationHandler(rankingSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8501"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware for listing writes
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupListingRoutes(api, listingHandler, authRequired, adminOnly)
	router.SetupAnalyticsRoutes(api, analyticsHandler)
	router.SetupRecommendationRoutes(api, recommendationHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
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

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
