package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openheads/headstore/internal/bootstrap"
	"github.com/openheads/headstore/internal/cache"
	"github.com/openheads/headstore/internal/catalog"
	"github.com/openheads/headstore/internal/concurrency"
	"github.com/openheads/headstore/internal/config"
	"github.com/openheads/headstore/internal/database"
	"github.com/openheads/headstore/internal/database/schema"
	"github.com/openheads/headstore/internal/economy"
	"github.com/openheads/headstore/internal/server"
	"github.com/openheads/headstore/internal/shop"
)

const shutdownTimeout = 15 * time.Second

// @title Head Store API
// @version 1.0
// @description Catalog and transaction engine for player-owned heads.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := context.Background()

	// Run migrations before anything touches the schema
	if err := schema.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBPoolMaxConns, cfg.DBPoolMaxIdle, cfg.DBPoolMaxLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	// Load the catalog and seed the registry
	registry := catalog.NewRegistry()
	loader := catalog.NewLoader()
	if err := bootstrap.SyncCatalog(ctx, loader, cfg.CatalogConfigPath, repos.Catalog, registry); err != nil {
		slog.Error("Catalog sync failed", "error", err)
		os.Exit(1)
	}

	ownershipCache := cache.NewOwnershipCache(cfg.CachePlayerCeiling, cfg.CacheTTL)
	locks := concurrency.NewLockManager(cfg.PlayerLockTimeout)

	var gateway economy.Gateway
	if cfg.GatewayBaseURL != "" {
		gateway = economy.NewHTTPGateway(cfg.GatewayBaseURL, cfg.GatewayTimeout)
	} else {
		slog.Warn("ECONOMY_GATEWAY_URL not set, using in-memory gateway")
		gateway = economy.NewMemoryGateway(nil)
	}

	shopService := shop.NewService(shop.Deps{
		Registry:    registry,
		Loader:      loader,
		ConfigPath:  cfg.CatalogConfigPath,
		Ownership:   repos.Ownership,
		Favorites:   repos.Favorites,
		CatalogRepo: repos.Catalog,
		Gateway:     gateway,
		Cache:       ownershipCache,
		Locks:       locks,
		Bus:         publisher,

		StoreTimeout: cfg.StoreCallTimeout,
	})

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, shopService)

	// Serve until interrupted
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
