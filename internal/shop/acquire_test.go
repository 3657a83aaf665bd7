package shop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openheads/headstore/internal/cache"
	"github.com/openheads/headstore/internal/catalog"
	"github.com/openheads/headstore/internal/concurrency"
	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/event"
	"github.com/openheads/headstore/internal/metrics"
)

func expectNoOwnership(h *harness, playerID string) {
	h.ownership.On("FetchOwnership", mock.Anything, playerID).
		Return([]domain.OwnershipRecord{}, nil)
}

func TestAcquire_PaidEntry(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	expectNoOwnership(h, "player-1")
	h.gateway.On("TryDebit", mock.Anything, "player-1", 100).Return(true, nil)
	h.ownership.On("InsertOwnership", mock.Anything, mock.MatchedBy(func(r domain.OwnershipRecord) bool {
		return r.PlayerID == "player-1" && r.EntryID == "heads_zombie" &&
			r.SourceMode == domain.AcquireModePurchasable && !r.AcquiredAt.IsZero()
	})).Return(nil)

	result, err := h.svc.Acquire(ctx, "player-1", "heads_zombie")
	require.NoError(t, err)

	assert.Equal(t, "heads_zombie", result.EntryID)
	assert.Equal(t, 100, result.Charged)
	assert.Equal(t, domain.AcquireModePurchasable, result.SourceMode)

	// Grant is reflected in the cache without another store read
	owned, hit := h.cache.Contains("player-1", "heads_zombie")
	assert.True(t, hit)
	assert.True(t, owned)

	assert.Equal(t, []event.Type{event.HeadAcquired}, h.bus.typesSeen())
	h.gateway.AssertExpectations(t)
	h.ownership.AssertExpectations(t)
}

func TestAcquire_FreeEntrySkipsDebit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	expectNoOwnership(h, "player-1")
	h.ownership.On("InsertOwnership", mock.Anything, mock.Anything).Return(nil)

	result, err := h.svc.Acquire(ctx, "player-1", "heads_globe")
	require.NoError(t, err)
	assert.Zero(t, result.Charged)

	// No TryDebit expectation was set; a call would have panicked
	h.gateway.AssertNotCalled(t, "TryDebit", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcquire_UnknownEntry(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Acquire(context.Background(), "player-1", "heads_missing")
	assert.ErrorIs(t, err, domain.ErrUnknownEntry)
}

func TestAcquire_GrantedCountedOnce(t *testing.T) {
	registry := catalog.NewRegistry()
	registry.Replace(testEntries(), nil)

	// Wire the real bus plus the metrics collector, the production setup
	bus := event.NewMemoryBus()
	require.NoError(t, metrics.NewEventMetricsCollector().Register(bus))

	ownership := new(MockOwnership)
	ownership.On("FetchOwnership", mock.Anything, "player-1").Return([]domain.OwnershipRecord{}, nil)
	ownership.On("InsertOwnership", mock.Anything, mock.Anything).Return(nil)

	gateway := new(MockGateway)
	gateway.On("TryDebit", mock.Anything, "player-1", 100).Return(true, nil)

	svc := NewService(Deps{
		Registry:  registry,
		Ownership: ownership,
		Favorites: new(MockFavorites),
		Gateway:   gateway,
		Cache:     cache.NewOwnershipCache(10, time.Minute),
		Locks:     concurrency.NewLockManager(time.Second),
		Bus:       bus,

		StoreTimeout: time.Second,
	})

	mode := string(domain.AcquireModePurchasable)
	granted := testutil.ToFloat64(metrics.Acquisitions.WithLabelValues(metrics.OutcomeGranted, mode))
	spent := testutil.ToFloat64(metrics.CurrencySpent)

	_, err := svc.Acquire(context.Background(), "player-1", "heads_zombie")
	require.NoError(t, err)

	assert.Equal(t, granted+1,
		testutil.ToFloat64(metrics.Acquisitions.WithLabelValues(metrics.OutcomeGranted, mode)),
		"one grant is one granted outcome")
	assert.Equal(t, spent+100, testutil.ToFloat64(metrics.CurrencySpent))
}

func TestAcquire_RewardEntrySkipsDebit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	expectNoOwnership(h, "player-1")
	h.ownership.On("InsertOwnership", mock.Anything, mock.MatchedBy(func(r domain.OwnershipRecord) bool {
		return r.SourceMode == domain.AcquireModeReward
	})).Return(nil)

	// Trophy carries a price but is a reward entry; no money moves
	result, err := h.svc.Acquire(ctx, "player-1", "heads_trophy")
	require.NoError(t, err)
	assert.Zero(t, result.Charged)
	assert.Equal(t, domain.AcquireModeReward, result.SourceMode)

	h.gateway.AssertNotCalled(t, "TryDebit", mock.Anything, mock.Anything, mock.Anything)
	h.ownership.AssertExpectations(t)
}

func TestAcquire_AdminOnlyRejected(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Acquire(context.Background(), "player-1", "heads_crown")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAcquire_AlreadyOwnedBeforeDebit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.cache.Set("player-1", []string{"heads_zombie"})

	_, err := h.svc.Acquire(ctx, "player-1", "heads_zombie")
	assert.ErrorIs(t, err, domain.ErrAlreadyOwned)

	// The owned check fires before any money moves
	h.gateway.AssertNotCalled(t, "TryDebit", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcquire_InsufficientFunds(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	expectNoOwnership(h, "player-1")
	h.gateway.On("TryDebit", mock.Anything, "player-1", 2500).Return(false, nil)

	_, err := h.svc.Acquire(ctx, "player-1", "heads_dragon")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	h.ownership.AssertNotCalled(t, "InsertOwnership", mock.Anything, mock.Anything)
}

func TestAcquire_GatewayFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	expectNoOwnership(h, "player-1")
	h.gateway.On("TryDebit", mock.Anything, "player-1", 100).
		Return(false, domain.ErrGatewayTimeout)

	_, err := h.svc.Acquire(ctx, "player-1", "heads_zombie")
	assert.ErrorIs(t, err, domain.ErrGatewayTimeout)
}

func TestAcquire_ConflictRefundsAndReportsAlreadyOwned(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	expectNoOwnership(h, "player-1")
	h.gateway.On("TryDebit", mock.Anything, "player-1", 100).Return(true, nil)
	h.ownership.On("InsertOwnership", mock.Anything, mock.Anything).
		Return(domain.ErrConflict)
	h.gateway.On("Credit", mock.Anything, "player-1", 100).Return(nil)

	_, err := h.svc.Acquire(ctx, "player-1", "heads_zombie")
	assert.ErrorIs(t, err, domain.ErrAlreadyOwned)

	// The charge was returned and no grant event went out
	h.gateway.AssertCalled(t, "Credit", mock.Anything, "player-1", 100)
	assert.Empty(t, h.bus.typesSeen())
}

func TestAcquire_StoreFailureRefunds(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	expectNoOwnership(h, "player-1")
	h.gateway.On("TryDebit", mock.Anything, "player-1", 100).Return(true, nil)
	h.ownership.On("InsertOwnership", mock.Anything, mock.Anything).
		Return(domain.ErrStoreUnavailable)
	h.gateway.On("Credit", mock.Anything, "player-1", 100).Return(nil)

	_, err := h.svc.Acquire(ctx, "player-1", "heads_zombie")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyOwned)

	h.gateway.AssertCalled(t, "Credit", mock.Anything, "player-1", 100)
}

func TestAcquire_CompensationFailureStillReturnsOriginalError(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	expectNoOwnership(h, "player-1")
	h.gateway.On("TryDebit", mock.Anything, "player-1", 100).Return(true, nil)
	h.ownership.On("InsertOwnership", mock.Anything, mock.Anything).
		Return(domain.ErrStoreUnavailable)
	h.gateway.On("Credit", mock.Anything, "player-1", 100).
		Return(errors.New("gateway down"))

	_, err := h.svc.Acquire(ctx, "player-1", "heads_zombie")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestAcquire_FreeEntryConflictNeedsNoRefund(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	expectNoOwnership(h, "player-1")
	h.ownership.On("InsertOwnership", mock.Anything, mock.Anything).
		Return(domain.ErrConflict)

	_, err := h.svc.Acquire(ctx, "player-1", "heads_globe")
	assert.ErrorIs(t, err, domain.ErrAlreadyOwned)

	h.gateway.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminGrant(t *testing.T) {
	ctx := context.Background()

	t.Run("grants reward entries without charge", func(t *testing.T) {
		h := newHarness(t)
		expectNoOwnership(h, "player-1")
		h.ownership.On("InsertOwnership", mock.Anything, mock.MatchedBy(func(r domain.OwnershipRecord) bool {
			return r.SourceMode == domain.AcquireModeAdminGranted
		})).Return(nil)

		result, err := h.svc.AdminGrant(ctx, "player-1", "heads_trophy")
		require.NoError(t, err)
		assert.Zero(t, result.Charged)
		assert.Equal(t, domain.AcquireModeAdminGranted, result.SourceMode)

		h.gateway.AssertNotCalled(t, "TryDebit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("grants paid entries without charge", func(t *testing.T) {
		h := newHarness(t)
		expectNoOwnership(h, "player-1")
		h.ownership.On("InsertOwnership", mock.Anything, mock.Anything).Return(nil)

		result, err := h.svc.AdminGrant(ctx, "player-1", "heads_dragon")
		require.NoError(t, err)
		assert.Zero(t, result.Charged)
	})

	t.Run("already owned", func(t *testing.T) {
		h := newHarness(t)
		h.cache.Set("player-1", []string{"heads_trophy"})

		_, err := h.svc.AdminGrant(ctx, "player-1", "heads_trophy")
		assert.ErrorIs(t, err, domain.ErrAlreadyOwned)
	})

	t.Run("unknown entry", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.svc.AdminGrant(ctx, "player-1", "heads_missing")
		assert.ErrorIs(t, err, domain.ErrUnknownEntry)
	})
}

func TestAdminRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes store row then cache", func(t *testing.T) {
		h := newHarness(t)
		h.cache.Set("player-1", []string{"heads_zombie"})

		h.ownership.On("DeleteOwnership", mock.Anything, "player-1", "heads_zombie").Return(nil)

		require.NoError(t, h.svc.AdminRemove(ctx, "player-1", "heads_zombie"))

		owned, hit := h.cache.Contains("player-1", "heads_zombie")
		assert.True(t, hit)
		assert.False(t, owned)

		assert.Equal(t, []event.Type{event.HeadRemoved}, h.bus.typesSeen())

		// Favorites are bookmarks on the catalog and survive removal
		h.favorites.AssertNotCalled(t, "RemoveFavorite", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not owned", func(t *testing.T) {
		h := newHarness(t)
		h.ownership.On("DeleteOwnership", mock.Anything, "player-1", "heads_zombie").
			Return(domain.ErrNotOwned)

		err := h.svc.AdminRemove(ctx, "player-1", "heads_zombie")
		assert.ErrorIs(t, err, domain.ErrNotOwned)
	})

	t.Run("store failure keeps cache intact", func(t *testing.T) {
		h := newHarness(t)
		h.cache.Set("player-1", []string{"heads_zombie"})
		h.ownership.On("DeleteOwnership", mock.Anything, "player-1", "heads_zombie").
			Return(domain.ErrStoreUnavailable)

		err := h.svc.AdminRemove(ctx, "player-1", "heads_zombie")
		require.Error(t, err)

		owned, hit := h.cache.Contains("player-1", "heads_zombie")
		assert.True(t, hit)
		assert.True(t, owned, "cache must not drop ownership the store still holds")
	})
}
