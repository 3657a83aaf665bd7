package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openheads/headstore/internal/concurrency"
	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/event"
	"github.com/openheads/headstore/internal/logger"
	"github.com/openheads/headstore/internal/metrics"
)

// Acquire obtains a catalog entry for a player. The whole flow runs
// under the player's lock, so a player never has two acquisitions in
// flight at once. Reward and free entries skip the debit; paid entries
// follow debit-then-grant with a compensating credit if the grant fails.
func (s *service) Acquire(ctx context.Context, playerID, entryID string) (*AcquireResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAcquireCalled, "player_id", playerID, "entry_id", entryID)

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

	if entry.AcquireMode == domain.AcquireModeAdminGranted {
		metrics.Acquisitions.WithLabelValues(metrics.OutcomeError, string(entry.AcquireMode)).Inc()
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, ErrMsgEntryAdminOnly, entryID)
	}

	// Owned check before spending anything
	owned, err := s.owns(ctx, playerID, entryID)
	if err != nil {
		metrics.Acquisitions.WithLabelValues(metrics.OutcomeError, string(entry.AcquireMode)).Inc()
		return nil, err
	}
	if owned {
		metrics.Acquisitions.WithLabelValues(metrics.OutcomeAlreadyOwned, string(entry.AcquireMode)).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, entryID)
	}

	charged := 0
	if entry.AcquireMode == domain.AcquireModePurchasable && !entry.Free() {
		ok, err := s.gateway.TryDebit(ctx, playerID, entry.Price)
		if err != nil {
			metrics.Acquisitions.WithLabelValues(metrics.OutcomeError, string(entry.AcquireMode)).Inc()
			return nil, fmt.Errorf(ErrMsgDebitFailed, err)
		}
		if !ok {
			metrics.Acquisitions.WithLabelValues(metrics.OutcomeInsufficientFunds, string(entry.AcquireMode)).Inc()
			return nil, fmt.Errorf("%w: %s costs %d", domain.ErrInsufficientFunds, entryID, entry.Price)
		}
		charged = entry.Price
	}

	if err := s.grant(ctx, playerID, entry, entry.AcquireMode, charged); err != nil {
		return nil, err
	}

	metrics.Acquisitions.WithLabelValues(metrics.OutcomeGranted, string(entry.AcquireMode)).Inc()
	log.Info(LogMsgHeadGranted, "player_id", playerID, "entry_id", entryID, "charged", charged)

	return &AcquireResult{
		EntryID:     entry.ID,
		DisplayName: entry.DisplayName,
		Price:       entry.Price,
		Charged:     charged,
		SourceMode:  entry.AcquireMode,
	}, nil
}

// grant records ownership after the player has been charged. From here on
// the work must finish even if the caller goes away, so it runs on a
// context detached from cancellation. Failures refund the charge.
func (s *service) grant(ctx context.Context, playerID string, entry domain.CatalogEntry, mode domain.AcquireMode, charged int) error {
	ctx = context.WithoutCancel(ctx)

	record := domain.OwnershipRecord{
		PlayerID:   playerID,
		EntryID:    entry.ID,
		AcquiredAt: time.Now().UTC(),
		SourceMode: mode,
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	if err := s.ownership.InsertOwnership(sctx, record); err != nil {
		s.compensate(ctx, playerID, entry.ID, charged)

		if errors.Is(err, domain.ErrConflict) {
			// The store-level uniqueness check is the final arbiter;
			// losing the race means the player already owns the entry
			metrics.Acquisitions.WithLabelValues(metrics.OutcomeAlreadyOwned, string(mode)).Inc()
			s.cache.Add(playerID, entry.ID)
			return fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, entry.ID)
		}
		metrics.Acquisitions.WithLabelValues(metrics.OutcomeError, string(mode)).Inc()
		return fmt.Errorf(ErrMsgGrantFailed, storeErr(err))
	}

	s.cache.Add(playerID, entry.ID)
	s.publish(ctx, event.NewHeadAcquiredEvent(playerID, entry, mode, charged))
	return nil
}

// compensate refunds a charge after a failed grant. It is a single
// best-effort credit; an undeliverable refund is surfaced loudly in logs
// and metrics for operator reconciliation rather than retried forever.
func (s *service) compensate(ctx context.Context, playerID, entryID string, charged int) {
	if charged == 0 {
		return
	}

	log := logger.FromContext(ctx)
	if err := s.gateway.Credit(ctx, playerID, charged); err != nil {
		metrics.CompensationFailures.Inc()
		log.Error(LogMsgCompensationFailed,
			"player_id", playerID,
			"entry_id", entryID,
			"amount", charged,
			"error", err)
		return
	}

	metrics.Compensations.Inc()
	metrics.CurrencyRefunded.Add(float64(charged))
	log.Info(LogMsgDebitRefunded, "player_id", playerID, "entry_id", entryID, "amount", charged)
}

// lockPlayer serializes mutating operations for one player and records
// lock wait metrics.
func (s *service) lockPlayer(ctx context.Context, playerID string) (func(), error) {
	start := time.Now()
	release, err := s.locks.Acquire(ctx, playerID)
	metrics.LockWaitDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, concurrency.ErrLockTimeout) {
			metrics.LockTimeouts.Inc()
			logger.FromContext(ctx).Warn(LogMsgLockAcquireTimedOut, "player_id", playerID)
		}
		return nil, fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}
	return release, nil
}
