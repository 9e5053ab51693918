// Package main is the entry point for the PageCraft server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pagecraft/internal/cache"
	"pagecraft/internal/config"
	"pagecraft/internal/database"
	"pagecraft/internal/engine"
	"pagecraft/internal/handlers"
	"pagecraft/internal/pages"
	"pagecraft/internal/router"
	"pagecraft/internal/store"
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
		"render_ttl", cfg.RenderTTL,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
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

	// Pick the render cache backend. Valkey shares cached renders across
	// instances; without it each instance keeps its own in-process cache.
	var renderCache cache.RenderCache
	if cfg.ValkeyHost != "" {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		renderCache = cache.NewValkeyCache(valkeyClient, cfg.RenderTTL)
		slog.Info("render cache using valkey", "addr", cfg.ValkeyAddr())
	} else {
		renderCache = cache.NewMemoryCache(cfg.RenderTTL)
		slog.Info("render cache using process memory")
	}

	// Initialize data stores.
	customerStore := store.NewCustomerStore(db)
	templateStore := store.NewTemplateStore(db)
	pageStore := store.NewPageStore(db)
	elementStore := store.NewElementStore(db)

	// Page lifecycle service and the public render engine.
	service := pages.NewService(pageStore, templateStore, customerStore, elementStore)
	eng := engine.New(pageStore)

	// Create handler groups with their dependencies.
	templateHandlers := handlers.NewTemplates(templateStore, service)
	pageHandlers := handlers.NewPages(service)
	customerHandlers := handlers.NewCustomers(customerStore)
	publicHandlers := handlers.NewPublic(eng, renderCache, cfg.RenderTTL)

	// Set up the Chi router with all middleware and routes.
	r := router.New(templateHandlers, pageHandlers, customerHandlers, publicHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
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
