package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedOwnershipEntry wraps a player's owned-entry set with version metadata
// for cache invalidation.
type cachedOwnershipEntry struct {
	Version  string
	Owned    map[string]struct{}
	CachedAt time.Time

	mu sync.RWMutex
}

// OwnershipCache provides an in-memory LRU cache of each player's owned
// entry set, with time-based expiration and version-based invalidation.
// Eviction only ever drops cached reads; the database remains the source
// of truth.
type OwnershipCache struct {
	lru *expirable.LRU[string, *cachedOwnershipEntry]
}

// NewOwnershipCache creates a new ownership cache.
// size: maximum number of cached players
// ttl: time-to-live for cached entries
func NewOwnershipCache(size int, ttl time.Duration) *OwnershipCache {
	return &OwnershipCache{
		lru: expirable.NewLRU[string, *cachedOwnershipEntry](size, nil, ttl),
	}
}

// Get returns the cached owned-entry IDs for a player.
// Returns (ids, true) on a hit, (nil, false) if absent, expired, or the
// schema version does not match.
func (c *OwnershipCache) Get(playerID string) ([]string, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}

	// Check version - auto-invalidate if mismatch
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()
	ids := make([]string, 0, len(entry.Owned))
	for id := range entry.Owned {
		ids = append(ids, id)
	}
	return ids, true
}

// Contains reports whether the player's cached set holds entryID.
// The second return is false on a cache miss, in which case the caller
// must fall back to the store.
func (c *OwnershipCache) Contains(playerID, entryID string) (owned bool, hit bool) {
	entry, found := c.lru.Get(playerID)
	if !found || entry.Version != CacheSchemaVersion {
		return false, false
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()
	_, owned = entry.Owned[entryID]
	return owned, true
}

// Set replaces the cached owned-entry set for a player.
func (c *OwnershipCache) Set(playerID string, entryIDs []string) {
	owned := make(map[string]struct{}, len(entryIDs))
	for _, id := range entryIDs {
		owned[id] = struct{}{}
	}
	c.lru.Add(playerID, &cachedOwnershipEntry{
		Version:  CacheSchemaVersion,
		Owned:    owned,
		CachedAt: time.Now(),
	})
}

// Add records entryID in the player's cached set. A miss is left as a miss
// rather than seeding a partial set.
func (c *OwnershipCache) Add(playerID, entryID string) {
	entry, found := c.lru.Get(playerID)
	if !found || entry.Version != CacheSchemaVersion {
		return
	}
	entry.mu.Lock()
	entry.Owned[entryID] = struct{}{}
	entry.mu.Unlock()
}

// Remove drops entryID from the player's cached set, if present.
func (c *OwnershipCache) Remove(playerID, entryID string) {
	entry, found := c.lru.Get(playerID)
	if !found || entry.Version != CacheSchemaVersion {
		return
	}
	entry.mu.Lock()
	delete(entry.Owned, entryID)
	entry.mu.Unlock()
}

// Invalidate removes a player's entry from the cache.
// Useful when ownership data changed outside the cached path.
func (c *OwnershipCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

// Clear removes all entries from the cache.
func (c *OwnershipCache) Clear() {
	c.lru.Purge()
}

// Len returns the number of cached players.
func (c *OwnershipCache) Len() int {
	return c.lru.Len()
}
