package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/repository"
)

// OwnershipRepository implements repository.Ownership for PostgreSQL
type OwnershipRepository struct {
	db *pgxpool.Pool
}

// NewOwnershipRepository creates a new OwnershipRepository
func NewOwnershipRepository(db *pgxpool.Pool) repository.Ownership {
	return &OwnershipRepository{db: db}
}

// FetchOwnership returns all ownership rows for a player
func (r *OwnershipRepository) FetchOwnership(ctx context.Context, playerID string) ([]domain.OwnershipRecord, error) {
	query := `
		SELECT player_id, entry_id, acquired_at, source_mode
		FROM ownerships
		WHERE player_id = $1
	`
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, storeError("fetch ownership", err)
	}
	defer rows.Close()

	var records []domain.OwnershipRecord
	for rows.Next() {
		var rec domain.OwnershipRecord
		var mode string
		if err := rows.Scan(&rec.PlayerID, &rec.EntryID, &rec.AcquiredAt, &mode); err != nil {
			return nil, storeError("scan ownership row", err)
		}
		rec.SourceMode = domain.AcquireMode(mode)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate ownership rows", err)
	}

	return records, nil
}

// InsertOwnership creates one ownership row.
// The primary key on (player_id, entry_id) turns a lost race into
// domain.ErrConflict instead of a duplicate grant.
func (r *OwnershipRepository) InsertOwnership(ctx context.Context, record domain.OwnershipRecord) error {
	query := `
		INSERT INTO ownerships (player_id, entry_id, acquired_at, source_mode)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, record.PlayerID, record.EntryID, record.AcquiredAt, string(record.SourceMode))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: player %s entry %s", domain.ErrConflict, record.PlayerID, record.EntryID)
		}
		return storeError("insert ownership", err)
	}

	return nil
}

// DeleteOwnership removes one ownership row
func (r *OwnershipRepository) DeleteOwnership(ctx context.Context, playerID, entryID string) error {
	query := `DELETE FROM ownerships WHERE player_id = $1 AND entry_id = $2`

	tag, err := r.db.Exec(ctx, query, playerID, entryID)
	if err != nil {
		return storeError("delete ownership", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: player %s entry %s", domain.ErrNotOwned, playerID, entryID)
	}

	return nil
}
