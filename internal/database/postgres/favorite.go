package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openheads/headstore/internal/repository"
)

// FavoriteRepository implements repository.Favorite for PostgreSQL
type FavoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *pgxpool.Pool) repository.Favorite {
	return &FavoriteRepository{db: db}
}

// AddFavorite marks an entry as a favorite. Marking twice is a no-op.
func (r *FavoriteRepository) AddFavorite(ctx context.Context, playerID, entryID string) error {
	query := `
		INSERT INTO favorites (player_id, entry_id)
		VALUES ($1, $2)
		ON CONFLICT (player_id, entry_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, playerID, entryID); err != nil {
		return storeError("add favorite", err)
	}
	return nil
}

// RemoveFavorite clears a favorite mark. Removing a missing mark is a no-op.
func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, playerID, entryID string) error {
	query := `DELETE FROM favorites WHERE player_id = $1 AND entry_id = $2`
	if _, err := r.db.Exec(ctx, query, playerID, entryID); err != nil {
		return storeError("remove favorite", err)
	}
	return nil
}

// IsFavorite reports whether the player has marked the entry
func (r *FavoriteRepository) IsFavorite(ctx context.Context, playerID, entryID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE player_id = $1 AND entry_id = $2)`

	var marked bool
	if err := r.db.QueryRow(ctx, query, playerID, entryID).Scan(&marked); err != nil {
		return false, storeError("check favorite", err)
	}
	return marked, nil
}

// GetFavorites returns the entry IDs the player has marked
func (r *FavoriteRepository) GetFavorites(ctx context.Context, playerID string) ([]string, error) {
	query := `SELECT entry_id FROM favorites WHERE player_id = $1 ORDER BY marked_at`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, storeError("fetch favorites", err)
	}
	defer rows.Close()

	var entryIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storeError("scan favorite row", err)
		}
		entryIDs = append(entryIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate favorite rows", err)
	}

	return entryIDs, nil
}
