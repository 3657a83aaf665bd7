package concurrency

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLockTimeout is returned when a lock cannot be acquired within the
// configured wait window.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// LockManager hands out per-key locks so that operations for the same key
// are serialized while operations for different keys proceed in parallel.
// Acquisition is context-aware and bounded by a wait timeout.
type LockManager struct {
	locks   sync.Map
	timeout time.Duration
}

// NewLockManager creates a LockManager. A non-positive timeout means waiters
// block until the context is done.
func NewLockManager(timeout time.Duration) *LockManager {
	return &LockManager{timeout: timeout}
}

func (lm *LockManager) slot(key string) chan struct{} {
	slot, _ := lm.locks.LoadOrStore(key, make(chan struct{}, 1))
	return slot.(chan struct{})
}

// Acquire takes the lock for key, waiting up to the configured timeout.
// On success it returns a release function that must be called exactly once,
// typically via defer.
func (lm *LockManager) Acquire(ctx context.Context, key string) (func(), error) {
	slot := lm.slot(key)

	if lm.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, lm.timeout)
		defer cancel()
	}

	select {
	case slot <- struct{}{}:
		var once sync.Once
		release := func() {
			once.Do(func() { <-slot })
		}
		return release, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrLockTimeout
		}
		return nil, ctx.Err()
	}
}

// TryAcquire takes the lock only if it is immediately free.
func (lm *LockManager) TryAcquire(key string) (func(), bool) {
	slot := lm.slot(key)
	select {
	case slot <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-slot }) }, true
	default:
		return nil, false
	}
}
