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

	appmetrics "brewCompass/app/echo-server/metrics"
	"brewCompass/app/echo-server/router"
	"brewCompass/business/catalog"
	"brewCompass/business/recommender"
	"brewCompass/domain"
	"brewCompass/internal/middleware"
	"brewCompass/internal/repository/csvfile"
	psqlRepo "brewCompass/internal/repository/postgres"
	"brewCompass/internal/rest"
	"brewCompass/pkg/config"
	"brewCompass/pkg/database"
	"brewCompass/pkg/logger"

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
	logger.Info("Starting BrewCompass", "version", cfg.App.Version)

	appmetrics.Init()

	rows, err := loadCatalogRows(cfg)
	if err != nil {
		logger.Fatal("Failed to read catalog source", "error", err)
	}

	// One-time fit: cleaned items, scaler bounds, TF-IDF matrix. The
	// result is immutable shared state for the process lifetime.
	fitted, err := recommender.Load(rows)
	if err != nil {
		logger.Fatal("Failed to load catalog", "error", err)
	}

	// Init service
	recommendService := recommender.NewService(fitted)
	catalogService := catalog.NewService(fitted)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendService, cfg.Recommend.DefaultTopN, cfg.Recommend.DefaultAlpha)
	catalogHandler := rest.NewCatalogHandler(catalogService)

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
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupHealthRoutes(api)
	router.SetupCatalogRoutes(api, catalogHandler)
	router.SetupRecommendRoutes(api, recommendHandler, appmetrics.Middleware())

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

func loadCatalogRows(cfg *config.Config) ([]domain.CoffeeRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.Catalog.Source {
	case "postgres":
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connected successfully")
		return psqlRepo.NewCatalogRepository(db).FindAll(ctx)
	default:
		logger.Info("Reading catalog file", "path", cfg.Catalog.Path)
		return csvfile.NewCatalogRepository(cfg.Catalog.Path).FindAll(ctx)
	}
}
