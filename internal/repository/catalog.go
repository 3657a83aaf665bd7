package repository

import (
	"context"

	"github.com/openheads/headstore/internal/domain"
)

// Catalog defines the interface for catalog persistence.
// The store is authoritative; the in-memory registry is rebuilt from it.
type Catalog interface {
	// FetchEntries returns every catalog entry.
	FetchEntries(ctx context.Context) ([]domain.CatalogEntry, error)

	// ReplaceEntries swaps the stored catalog for the given set in a single
	// transaction. Used by the config sync at startup and on admin reload.
	ReplaceEntries(ctx context.Context, entries []domain.CatalogEntry) error
}
