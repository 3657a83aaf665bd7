// Package shop implements the head store's transaction engine: catalog
// listings, atomic debit-plus-grant acquisitions serialized per player,
// administrative grants and removals, favorites, and catalog reloads.
package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openheads/headstore/internal/cache"
	"github.com/openheads/headstore/internal/catalog"
	"github.com/openheads/headstore/internal/concurrency"
	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/economy"
	"github.com/openheads/headstore/internal/event"
	"github.com/openheads/headstore/internal/logger"
	"github.com/openheads/headstore/internal/metrics"
	"github.com/openheads/headstore/internal/repository"
)

// AcquireResult describes a successful grant.
type AcquireResult struct {
	EntryID     string             `json:"entry_id"`
	DisplayName string             `json:"display_name"`
	Price       int                `json:"price"`
	Charged     int                `json:"charged"`
	SourceMode  domain.AcquireMode `json:"source_mode"`
}

// ReloadResult describes a completed catalog reload.
type ReloadResult struct {
	Entries    int `json:"entries"`
	Categories int `json:"categories"`
}

// Service defines the interface for store operations
type Service interface {
	ListCatalog(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogEntry, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetEntry(ctx context.Context, entryID string) (domain.CatalogEntry, error)

	ListOwned(ctx context.Context, playerID string) ([]domain.CatalogEntry, error)
	Acquire(ctx context.Context, playerID, entryID string) (*AcquireResult, error)
	AdminGrant(ctx context.Context, playerID, entryID string) (*AcquireResult, error)
	AdminRemove(ctx context.Context, playerID, entryID string) error

	AddFavorite(ctx context.Context, playerID, entryID string) error
	RemoveFavorite(ctx context.Context, playerID, entryID string) error
	ListFavorites(ctx context.Context, playerID string) ([]domain.CatalogEntry, error)

	GetBalance(ctx context.Context, playerID string) (int, error)
	ReloadCatalog(ctx context.Context) (*ReloadResult, error)
}

type service struct {
	registry   *catalog.Registry
	loader     catalog.Loader
	configPath string

	ownership   repository.Ownership
	favorites   repository.Favorite
	catalogRepo repository.Catalog
	gateway     economy.Gateway
	cache       *cache.OwnershipCache
	locks       *concurrency.LockManager
	bus         event.Bus

	storeTimeout time.Duration
}

// Deps bundles the collaborators the store service needs.
type Deps struct {
	Registry    *catalog.Registry
	Loader      catalog.Loader
	ConfigPath  string
	Ownership   repository.Ownership
	Favorites   repository.Favorite
	CatalogRepo repository.Catalog
	Gateway     economy.Gateway
	Cache       *cache.OwnershipCache
	Locks       *concurrency.LockManager
	Bus         event.Bus

	// StoreTimeout bounds every database call the service makes. Zero
	// disables the bound.
	StoreTimeout time.Duration
}

// NewService creates a new store service
func NewService(deps Deps) Service {
	return &service{
		registry:    deps.Registry,
		loader:      deps.Loader,
		configPath:  deps.ConfigPath,
		ownership:   deps.Ownership,
		favorites:   deps.Favorites,
		catalogRepo: deps.CatalogRepo,
		gateway:     deps.Gateway,
		cache:       deps.Cache,
		locks:       deps.Locks,
		bus:         deps.Bus,

		storeTimeout: deps.StoreTimeout,
	}
}

// storeCtx derives the bounded context for a single store call. A hung
// connection must not hold the player's lock past the configured deadline.
func (s *service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

// storeErr surfaces a store deadline hit as ErrStoreUnavailable.
func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}

func (s *service) ListCatalog(_ context.Context, filter domain.CatalogFilter) ([]domain.CatalogEntry, error) {
	return s.registry.List(filter), nil
}

func (s *service) ListCategories(_ context.Context) ([]domain.Category, error) {
	return s.registry.Categories(), nil
}

func (s *service) GetEntry(_ context.Context, entryID string) (domain.CatalogEntry, error) {
	return s.registry.Get(entryID)
}

// ListOwned returns the player's owned heads with catalog details, serving
// from the ownership cache when possible.
func (s *service) ListOwned(ctx context.Context, playerID string) ([]domain.CatalogEntry, error) {
	ids, err := s.ownedIDs(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s.describeEntries(ids), nil
}

// ownedIDs is the read-through path for a player's owned-entry set.
func (s *service) ownedIDs(ctx context.Context, playerID string) ([]string, error) {
	if ids, hit := s.cache.Get(playerID); hit {
		metrics.CacheHits.Inc()
		return ids, nil
	}
	metrics.CacheMisses.Inc()

	log := logger.FromContext(ctx)
	log.Debug(LogMsgOwnershipCacheMiss, "player_id", playerID)

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	records, err := s.ownership.FetchOwnership(sctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadOwnershipFailed, storeErr(err))
	}

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.EntryID
	}
	s.cache.Set(playerID, ids)
	return ids, nil
}

// owns reports whether the player owns entryID, preferring the cache.
func (s *service) owns(ctx context.Context, playerID, entryID string) (bool, error) {
	if owned, hit := s.cache.Contains(playerID, entryID); hit {
		metrics.CacheHits.Inc()
		return owned, nil
	}

	ids, err := s.ownedIDs(ctx, playerID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == entryID {
			return true, nil
		}
	}
	return false, nil
}

// describeEntries resolves entry IDs against the catalog. Entries that have
// since left the catalog are still listed, with the raw id as display name,
// so removal from the catalog never hides owned heads.
func (s *service) describeEntries(ids []string) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(ids))
	for _, id := range ids {
		entry, err := s.registry.Get(id)
		if err != nil {
			entry = domain.CatalogEntry{ID: id, DisplayName: id}
		}
		out = append(out, entry)
	}
	return out
}

// AddFavorite marks a catalog entry as a favorite. Favorites are menu
// bookmarks and track ownership in neither direction; the entry just has
// to exist in the catalog.
func (s *service) AddFavorite(ctx context.Context, playerID, entryID string) error {
	if _, err := s.registry.Get(entryID); err != nil {
		return err
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	if err := s.favorites.AddFavorite(sctx, playerID, entryID); err != nil {
		return fmt.Errorf(ErrMsgFavoriteFailed, storeErr(err))
	}
	return nil
}

func (s *service) RemoveFavorite(ctx context.Context, playerID, entryID string) error {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	if err := s.favorites.RemoveFavorite(sctx, playerID, entryID); err != nil {
		return fmt.Errorf(ErrMsgFavoriteFailed, storeErr(err))
	}
	return nil
}

func (s *service) ListFavorites(ctx context.Context, playerID string) ([]domain.CatalogEntry, error) {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	ids, err := s.favorites.GetFavorites(sctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFavoritesFailed, storeErr(err))
	}
	return s.describeEntries(ids), nil
}

// GetBalance passes through to the currency gateway.
func (s *service) GetBalance(ctx context.Context, playerID string) (int, error) {
	balance, err := s.gateway.GetBalance(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBalanceFailed, err)
	}
	return balance, nil
}

// publish sends an event without letting publish failures fail the
// operation that already succeeded.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}
