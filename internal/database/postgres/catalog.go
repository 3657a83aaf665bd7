package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/logger"
	"github.com/openheads/headstore/internal/repository"
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) repository.Catalog {
	return &CatalogRepository{db: db}
}

// FetchEntries returns every catalog entry
func (r *CatalogRepository) FetchEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	query := `
		SELECT entry_id, display_name, COALESCE(texture, ''), tags, price, category, acquire_mode
		FROM catalog_entries
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storeError("fetch catalog entries", err)
	}
	defer rows.Close()

	var entries []domain.CatalogEntry
	for rows.Next() {
		var e domain.CatalogEntry
		var mode string
		if err := rows.Scan(&e.ID, &e.DisplayName, &e.Texture, &e.Tags, &e.Price, &e.Category, &mode); err != nil {
			return nil, storeError("scan catalog entry", err)
		}
		e.AcquireMode = domain.AcquireMode(mode)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate catalog entries", err)
	}

	return entries, nil
}

// ReplaceEntries swaps the stored catalog for the given set in one transaction.
// Readers keep seeing the old rows until commit; the in-memory registry does
// its own atomic swap after reloading.
func (r *CatalogRepository) ReplaceEntries(ctx context.Context, entries []domain.CatalogEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return storeError("begin catalog replace", err)
	}
	defer safeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM catalog_entries`); err != nil {
		return storeError("clear catalog entries", err)
	}

	query := `
		INSERT INTO catalog_entries (entry_id, display_name, texture, tags, price, category, acquire_mode, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, NOW())
	`
	for _, e := range entries {
		tags := e.Tags
		if tags == nil {
			tags = []string{}
		}
		if _, err := tx.Exec(ctx, query, e.ID, e.DisplayName, e.Texture, tags, e.Price, e.Category, string(e.AcquireMode)); err != nil {
			return storeError("insert catalog entry", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return storeError("commit catalog replace", err)
	}

	return nil
}

// safeRollback rolls back a transaction and logs unexpected failures.
// Rollback after commit returns pgx.ErrTxClosed, which is expected noise.
func safeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
