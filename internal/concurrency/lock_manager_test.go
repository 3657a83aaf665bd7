package concurrency

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openheads/headstore/internal/testing/leaktest"
)

func TestLockManager_SerializesSameKey(t *testing.T) {
	lm := NewLockManager(time.Second)
	ctx := context.Background()

	var counter int
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := lm.Acquire(ctx, "player-1")
			require.NoError(t, err)
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestLockManager_DifferentKeysDoNotBlock(t *testing.T) {
	lm := NewLockManager(100 * time.Millisecond)
	ctx := context.Background()

	releaseA, err := lm.Acquire(ctx, "player-a")
	require.NoError(t, err)
	defer releaseA()

	// A held lock on another key must not delay this acquisition
	releaseB, err := lm.Acquire(ctx, "player-b")
	require.NoError(t, err)
	releaseB()
}

func TestLockManager_TimeoutWhileHeld(t *testing.T) {
	lm := NewLockManager(50 * time.Millisecond)
	ctx := context.Background()

	release, err := lm.Acquire(ctx, "player-1")
	require.NoError(t, err)

	start := time.Now()
	_, err = lm.Acquire(ctx, "player-1")
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	release()

	// Freed lock is acquirable again
	release2, err := lm.Acquire(ctx, "player-1")
	require.NoError(t, err)
	release2()
}

func TestLockManager_ContextCancellation(t *testing.T) {
	lm := NewLockManager(time.Minute)

	release, err := lm.Acquire(context.Background(), "player-1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = lm.Acquire(ctx, "player-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLockManager_ReleaseIsIdempotent(t *testing.T) {
	lm := NewLockManager(time.Second)
	ctx := context.Background()

	release, err := lm.Acquire(ctx, "player-1")
	require.NoError(t, err)

	release()
	release() // Second call must not free the slot twice

	release2, err := lm.Acquire(ctx, "player-1")
	require.NoError(t, err)
	release2()
}

func TestLockManager_TryAcquire(t *testing.T) {
	lm := NewLockManager(time.Second)

	release, ok := lm.TryAcquire("player-1")
	require.True(t, ok)

	_, ok = lm.TryAcquire("player-1")
	assert.False(t, ok)

	release()

	release2, ok := lm.TryAcquire("player-1")
	assert.True(t, ok)
	release2()
}

func TestLockManager_NoGoroutineLeak(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		lm := NewLockManager(time.Second)
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				key := []string{"a", "b", "c"}[n%3]
				release, err := lm.Acquire(ctx, key)
				if err != nil {
					return
				}
				defer release()
				time.Sleep(time.Millisecond)
			}(i)
		}
		wg.Wait()
	})
}
