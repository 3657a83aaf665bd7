package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openheads/headstore/internal/catalog"
	"github.com/openheads/headstore/internal/metrics"
	"github.com/openheads/headstore/internal/repository"
)

// SyncCatalog loads, validates, and syncs the catalog configuration, then
// seeds the in-memory registry. It handles the complete lifecycle:
// load JSON → validate → sync to DB → swap registry snapshot.
// The same path runs at startup and on admin reload.
func SyncCatalog(ctx context.Context, loader catalog.Loader, configPath string, catalogRepo repository.Catalog, registry *catalog.Registry) error {
	slog.Info(LogMsgSyncingCatalog, "path", configPath)

	cfg, err := loader.Load(configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := loader.Validate(cfg); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	syncResult, err := loader.SyncToDatabase(ctx, cfg, catalogRepo)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	registry.Replace(cfg.DomainEntries(), cfg.DomainCategories())
	metrics.CatalogEntries.Set(float64(registry.Len()))

	slog.Info(LogMsgCatalogSynced,
		"entries", syncResult.EntriesSynced,
		"categories", syncResult.CategoriesSynced)

	return nil
}
