package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/event"
	"github.com/openheads/headstore/internal/logger"
	"github.com/openheads/headstore/internal/metrics"
)

// AdminGrant gives a player any catalog entry without charging. Reward and
// admin-only entries can only be obtained this way.
func (s *service) AdminGrant(ctx context.Context, playerID, entryID string) (*AcquireResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAdminGrantCalled, "player_id", playerID, "entry_id", entryID)

	release, err := s.lockPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer release()

	entry, err := s.registry.Get(entryID)
	if err != nil {
		metrics.Acquisitions.WithLabelValues(metrics.OutcomeUnknownEntry, "").Inc()
		return nil, err
	}

	owned, err := s.owns(ctx, playerID, entryID)
	if err != nil {
		return nil, err
	}
	if owned {
		metrics.Acquisitions.WithLabelValues(metrics.OutcomeAlreadyOwned, string(domain.AcquireModeAdminGranted)).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, entryID)
	}

	// No charge, so there is nothing to compensate on failure
	if err := s.grant(ctx, playerID, entry, domain.AcquireModeAdminGranted, 0); err != nil {
		return nil, err
	}

	metrics.Acquisitions.WithLabelValues(metrics.OutcomeGranted, string(domain.AcquireModeAdminGranted)).Inc()
	log.Info(LogMsgHeadGranted, "player_id", playerID, "entry_id", entryID, "charged", 0)

	return &AcquireResult{
		EntryID:     entry.ID,
		DisplayName: entry.DisplayName,
		Price:       entry.Price,
		Charged:     0,
		SourceMode:  domain.AcquireModeAdminGranted,
	}, nil
}

// AdminRemove takes a head away from a player. The store row is deleted
// first and the cache entry only after the store confirms. Removal does
// not refund the original purchase.
func (s *service) AdminRemove(ctx context.Context, playerID, entryID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAdminRemoveCalled, "player_id", playerID, "entry_id", entryID)

	release, err := s.lockPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	defer release()

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	if err := s.ownership.DeleteOwnership(sctx, playerID, entryID); err != nil {
		if errors.Is(err, domain.ErrNotOwned) {
			return err
		}
		return fmt.Errorf(ErrMsgRemoveFailed, storeErr(err))
	}

	s.cache.Remove(playerID, entryID)

	// Favorites survive removal; a favorite is a bookmark on the
	// catalog, not on the player's collection
	s.publish(ctx, event.NewHeadRemovedEvent(playerID, entryID))
	log.Info(LogMsgHeadRemoved, "player_id", playerID, "entry_id", entryID)
	return nil
}
