package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
	"github.com/wekesamabwi/theboat_backend/internal/core/services"
	"github.com/wekesamabwi/theboat_backend/internal/handlers"
	"github.com/wekesamabwi/theboat_backend/internal/middleware"
	"github.com/wekesamabwi/theboat_backend/internal/platform/config"
	"github.com/wekesamabwi/theboat_backend/internal/repositories/database/sqlite"
	"github.com/wekesamabwi/theboat_backend/migrations"
	"github.com/wekesamabwi/theboat_backend/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// One embedded database backs every store; repositories share the handle.
	db, err := database.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()), slog.String("path", cfg.SQLitePath))
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Database opened", slog.String("path", cfg.SQLitePath))

	if err := database.RunMigrations(db, migrations.FS); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied")

	// Repositories over the shared handle
	userRepo := sqlite.NewUserRepository(db)
	conversionRepo := sqlite.NewConversionRepository(db)
	balanceRepo := sqlite.NewBalanceRepository(db)

	// Services
	serviceContainer := &ports.ServiceContainer{
		Auth:      services.NewAuthService(userRepo),
		Converter: services.NewConverterService(conversionRepo, logger),
		Ledger:    services.NewLedgerService(conversionRepo),
		Balance:   services.NewBalanceService(balanceRepo),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
