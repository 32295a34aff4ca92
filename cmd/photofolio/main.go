// Package main is the entry point for the Photofolio API server.
// It loads configuration, selects the content repository backend, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photofolio/internal/auth"
	"photofolio/internal/cache"
	"photofolio/internal/config"
	"photofolio/internal/database"
	"photofolio/internal/handlers"
	"photofolio/internal/router"
	"photofolio/internal/storage"
	"photofolio/internal/store"
	"photofolio/internal/store/document"
	"photofolio/internal/store/localfile"
	"photofolio/internal/store/memory"
	"photofolio/internal/store/postgres"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"backend", cfg.StorageBackend,
	)

	// Admin credentials. The local-file backend may carry a persisted
	// secret that overrides the environment (set through the stored
	// document, mirroring how the site behaves without a server).
	adminPassword := cfg.AdminPassword

	// Select the content repository backend. The choice holds for the
	// lifetime of the process.
	var repo store.Repository
	switch cfg.StorageBackend {
	case config.BackendMemory:
		repo = memory.New()

	case config.BackendLocal:
		local, err := localfile.Open(cfg.LocalDataDir)
		if err != nil {
			slog.Error("failed to open local data store", "dir", cfg.LocalDataDir, "error", err)
			os.Exit(1)
		}
		if secret, ok := local.AdminSecret(); ok {
			adminPassword = secret
		}
		repo = local

	case config.BackendPostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		// Seed development data (no-op if data already exists).
		if cfg.IsDev() {
			if err := database.Seed(db); err != nil {
				slog.Error("failed to seed database", "error", err)
				os.Exit(1)
			}
		}
		repo = postgres.New(db)

	case config.BackendDocument:
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		docStore, err := document.New(context.Background(), valkeyClient)
		if err != nil {
			slog.Error("failed to initialize document store", "error", err)
			os.Exit(1)
		}
		repo = docStore
	}

	// Wrap the backend in the query/mutation cache: read dedup + TTL,
	// invalidate on write, retry on transient backend failures.
	repo = cache.NewRepository(repo, cache.DefaultQueryTTL)

	verifier := auth.New(adminPassword, cfg.AdminPasswordHash, cfg.AdminTOTPSecret)

	// Connect to S3-compatible object storage (optional — inline data-URI
	// photos stay inline without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — photo uploads stay inline")
	}

	api := handlers.New(repo, verifier, storageClient)

	// Set up the Chi router with all middleware and routes.
	r := router.New(api, verifier, cfg.CORSAllowedOrigins)

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate large inline photo payloads.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
