package shop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openheads/headstore/internal/cache"
	"github.com/openheads/headstore/internal/catalog"
	"github.com/openheads/headstore/internal/concurrency"
	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/economy"
)

// memoryOwnership is a thread-safe in-memory repository.Ownership that
// enforces the same uniqueness the database primary key does.
type memoryOwnership struct {
	mu      sync.Mutex
	records map[string]domain.OwnershipRecord
}

func newMemoryOwnership() *memoryOwnership {
	return &memoryOwnership{records: make(map[string]domain.OwnershipRecord)}
}

func ownershipKey(playerID, entryID string) string {
	return playerID + "/" + entryID
}

func (m *memoryOwnership) FetchOwnership(_ context.Context, playerID string) ([]domain.OwnershipRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.OwnershipRecord
	for _, rec := range m.records {
		if rec.PlayerID == playerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memoryOwnership) InsertOwnership(_ context.Context, record domain.OwnershipRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := ownershipKey(record.PlayerID, record.EntryID)
	if _, exists := m.records[key]; exists {
		return fmt.Errorf("%w: player %s entry %s", domain.ErrConflict, record.PlayerID, record.EntryID)
	}
	m.records[key] = record
	return nil
}

func (m *memoryOwnership) DeleteOwnership(_ context.Context, playerID, entryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := ownershipKey(playerID, entryID)
	if _, exists := m.records[key]; !exists {
		return domain.ErrNotOwned
	}
	delete(m.records, key)
	return nil
}

func newConcurrencyService(balances map[string]int) (Service, *economy.MemoryGateway, *memoryOwnership) {
	registry := catalog.NewRegistry()
	registry.Replace(testEntries(), nil)

	gateway := economy.NewMemoryGateway(balances)
	ownership := newMemoryOwnership()

	svc := NewService(Deps{
		Registry:  registry,
		Ownership: ownership,
		Favorites: new(MockFavorites),
		Gateway:   gateway,
		Cache:     cache.NewOwnershipCache(100, time.Minute),
		Locks:     concurrency.NewLockManager(5 * time.Second),
		Bus:       &recordingBus{},
	})
	return svc, gateway, ownership
}

// Concurrent acquisitions of the same entry by the same player must
// produce exactly one grant and exactly one debit.
func TestAcquire_ConcurrentSamePlayerSameEntry(t *testing.T) {
	svc, gateway, ownership := newConcurrencyService(map[string]int{"player-1": 10000})
	ctx := context.Background()

	const workers = 16

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Acquire(ctx, "player-1", "heads_zombie")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var granted, alreadyOwned int
	for err := range errs {
		switch {
		case err == nil:
			granted++
		case errors.Is(err, domain.ErrAlreadyOwned):
			alreadyOwned++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, granted, "exactly one acquisition should win")
	assert.Equal(t, workers-1, alreadyOwned)

	// Exactly one debit of 100
	balance, err := gateway.GetBalance(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 9900, balance)

	records, err := ownership.FetchOwnership(ctx, "player-1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

// Different players proceed independently; one player's serialization
// must not affect another's.
func TestAcquire_ConcurrentDistinctPlayers(t *testing.T) {
	balances := make(map[string]int)
	for i := 0; i < 8; i++ {
		balances[fmt.Sprintf("player-%d", i)] = 1000
	}
	svc, gateway, _ := newConcurrencyService(balances)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			playerID := fmt.Sprintf("player-%d", n)
			_, err := svc.Acquire(ctx, playerID, "heads_zombie")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		balance, err := gateway.GetBalance(ctx, fmt.Sprintf("player-%d", i))
		require.NoError(t, err)
		assert.Equal(t, 900, balance)
	}
}

// A player who cannot afford the entry keeps their full balance no matter
// how many attempts race.
func TestAcquire_ConcurrentInsufficientFunds(t *testing.T) {
	svc, gateway, ownership := newConcurrencyService(map[string]int{"player-1": 50})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Acquire(ctx, "player-1", "heads_zombie")
			assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		}()
	}
	wg.Wait()

	balance, err := gateway.GetBalance(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 50, balance)

	records, err := ownership.FetchOwnership(ctx, "player-1")
	require.NoError(t, err)
	assert.Empty(t, records)
}
