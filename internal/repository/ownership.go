package repository

import (
	"context"

	"github.com/openheads/headstore/internal/domain"
)

// Ownership defines the interface for ownership persistence.
// The (player_id, entry_id) primary key is the final arbiter of uniqueness:
// two requests that race past the cache check cannot both insert.
type Ownership interface {
	// FetchOwnership returns all ownership rows for a player.
	FetchOwnership(ctx context.Context, playerID string) ([]domain.OwnershipRecord, error)

	// InsertOwnership creates one ownership row. Returns domain.ErrConflict
	// if the (player, entry) pair already exists.
	InsertOwnership(ctx context.Context, record domain.OwnershipRecord) error

	// DeleteOwnership removes one ownership row. Returns domain.ErrNotOwned
	// if no such row exists.
	DeleteOwnership(ctx context.Context, playerID, entryID string) error
}

// Favorite defines the interface for favorite-mark persistence.
type Favorite interface {
	AddFavorite(ctx context.Context, playerID, entryID string) error
	RemoveFavorite(ctx context.Context, playerID, entryID string) error
	IsFavorite(ctx context.Context, playerID, entryID string) (bool, error)
	// GetFavorites returns the entry IDs the player has marked.
	GetFavorites(ctx context.Context, playerID string) ([]string, error)
}
