package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hishab-app/hishab_backend/internal/core/services"
	"github.com/hishab-app/hishab_backend/internal/handlers"
	"github.com/hishab-app/hishab_backend/internal/middleware"
	"github.com/hishab-app/hishab_backend/internal/platform/config"
	portsrepo "github.com/hishab-app/hishab_backend/internal/core/ports/repositories"
	kvrepo "github.com/hishab-app/hishab_backend/internal/repositories/kv"
	"github.com/hishab-app/hishab_backend/internal/repositories/kvstore/memory"
	"github.com/hishab-app/hishab_backend/internal/repositories/kvstore/pgsql"
	"github.com/hishab-app/hishab_backend/internal/repositories/kvstore/sqlite"
	"github.com/hishab-app/hishab_backend/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Hishab Backend API
// @version 1.0
// @description This is the server for the Hishab personal finance backend.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, cleanup, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	repos := &portsrepo.RepositoryProvider{
		TransactionRepo: kvrepo.NewTransactionRepository(store),
		SuggestionRepo:  kvrepo.NewSuggestionRepository(store),
	}
	serviceContainer := services.NewContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStore builds the key-value store selected by STORE_DRIVER and returns
// it with a cleanup func that releases any underlying resources.
func openStore(cfg *config.Config, logger *slog.Logger) (portsrepo.KVStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Warn("Using in-memory storage, data will not survive restarts")
		return memory.NewStore(), func() {}, nil

	case config.StoreDriverPgsql:
		if err := pgsql.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		logger.Info("Database migrations applied")
		pool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connection pool established")
		return pgsql.NewStore(pool), func() { database.ClosePgxPool(pool) }, nil

	default: // sqlite
		store, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("SQLite storage ready", slog.String("path", cfg.SQLitePath))
		cleanup := func() {
			if cerr := store.Close(); cerr != nil {
				logger.Error("Error closing storage", slog.String("error", cerr.Error()))
			}
		}
		return store, cleanup, nil
	}
}
