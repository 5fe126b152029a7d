package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/videotube_backend/internal/adapters/media"
	"github.com/SscSPs/videotube_backend/internal/core/services"
	"github.com/SscSPs/videotube_backend/internal/handlers"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/SscSPs/videotube_backend/internal/platform/observability"
	"github.com/SscSPs/videotube_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/videotube_backend/migrations"
	"github.com/SscSPs/videotube_backend/pkg/database"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// @title VideoTube Backend API
// @version 1.0
// @description Video sharing backend: accounts, sessions, videos, comments, likes, playlists and subscriptions.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := observability.InitSentry(cfg.SentryDSN, cfg.SentryEnvironment, version); err != nil {
		logger.Error("Failed to initialize Sentry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.FlushSentry()

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped", slog.String("error", err.Error()))
		observability.FlushSentry()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS); err != nil {
		return err
	}

	storage, err := media.NewStorage(ctx, cfg.Media)
	if err != nil {
		return err
	}
	logger.Info("Media storage ready", slog.String("backend", cfg.Media.Backend))

	repos := pgsql.NewRepositoryProvider(dbPool)
	svc := services.NewServiceContainer(cfg, repos, storage)

	var health handlers.HealthChecker
	if cfg.EnableDBCheck {
		health = dbPool
	}

	r, err := handlers.NewRouter(cfg, svc, repos.UserRepo, health, logger)
	if err != nil {
		return err
	}
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}
