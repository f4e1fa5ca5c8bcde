package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/server"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	stdout := logging.Setup()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Error logs are also persisted to system_logs
	pgLogHandler := logging.NewPGHandler(db, 5*time.Second)
	logging.WithDatabase(stdout, pgLogHandler)

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetention, cleanupDone)

	// Bootstrap super admin
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	_, err = services.EnsureSuperAdmin(ctx,
		repository.NewSuperAdminRepository(db),
		auth.NewPasswordHasher(cfg.BcryptCost),
		services.BootstrapCredentials{
			Email:    cfg.SuperAdminEmail,
			Username: cfg.SuperAdminUsername,
			Password: cfg.SuperAdminPassword,
		},
	)
	cancel()
	if err != nil {
		slog.Error("super admin bootstrap failed", "error", err)
		os.Exit(1)
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	app, err := server.New(cfg, db, server.Options{})
	if err != nil {
		slog.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
