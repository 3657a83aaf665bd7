package shop

import (
	"context"
	"fmt"

	"github.com/openheads/headstore/internal/event"
	"github.com/openheads/headstore/internal/logger"
	"github.com/openheads/headstore/internal/metrics"
)

// ReloadCatalog re-reads the catalog config, persists it, and swaps the
// in-memory registry in one atomic step. Readers keep seeing the old
// catalog until the swap; a failed reload leaves it untouched.
func (s *service) ReloadCatalog(ctx context.Context) (*ReloadResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReloadCalled, "path", s.configPath)

	config, err := s.loader.Load(s.configPath)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}
	if err := s.loader.Validate(config); err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}

	// Persist first: if the database rejects the new catalog the
	// in-memory registry must not advance past it
	if _, err := s.loader.SyncToDatabase(ctx, config, s.catalogRepo); err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, fmt.Errorf(ErrMsgSyncCatalogFailed, err)
	}

	entries := config.DomainEntries()
	categories := config.DomainCategories()
	s.registry.Replace(entries, categories)

	result := &ReloadResult{
		Entries:    len(entries),
		Categories: len(s.registry.Categories()),
	}

	s.publish(ctx, event.NewCatalogReloadedEvent(result.Entries, result.Categories))
	log.Info(LogMsgCatalogReloaded, "entries", result.Entries, "categories", result.Categories)
	return result, nil
}
