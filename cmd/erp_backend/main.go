package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/SscSPs/shopdesk_erp/internal/core/ports/repositories"
	"github.com/SscSPs/shopdesk_erp/internal/core/services"
	"github.com/SscSPs/shopdesk_erp/internal/handlers"
	"github.com/SscSPs/shopdesk_erp/internal/middleware"
	"github.com/SscSPs/shopdesk_erp/internal/platform/config"
	"github.com/SscSPs/shopdesk_erp/internal/repositories/database/pgsql"
	"github.com/SscSPs/shopdesk_erp/internal/repositories/database/sqlite"
	"github.com/SscSPs/shopdesk_erp/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Shopdesk ERP API
// @version 1.0
// @description Cash register and customer accounts for a USD/SYP shop.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var settingRepo repositories.SettingRepositoryFacade
	if cfg.SettingsStore == config.SettingsStoreSQLite {
		sqliteRepo, err := sqlite.NewSettingRepository(ctx, cfg.SQLitePath)
		if err != nil {
			logger.Error("Failed to open SQLite settings store", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer sqliteRepo.Close()
		settingRepo = sqliteRepo
		logger.Info("Using SQLite settings store", slog.String("path", cfg.SQLitePath))
	}

	repoProvider := pgsql.NewRepositoryProvider(dbPool, settingRepo)
	serviceContainer := services.NewServiceContainer(repoProvider)

	rate := serviceContainer.Currency.LoadDefaultRate(ctx)
	logger.Info("Default exchange rate in effect", slog.Float64("rate", rate))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), newCORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var apiMiddlewares []gin.HandlerFunc
	if cfg.RateLimit != "" {
		rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Invalid RATE_LIMIT", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
			os.Exit(1)
		}
		apiMiddlewares = append(apiMiddlewares, middleware.RateLimit(rateLimiter))
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, apiMiddlewares...)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Open a temporary standard sql.DB connection for migrations
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func newCORS(origins []string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return cors.New(corsCfg)
}
