package shop

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/event"
)

// MockOwnership implements repository.Ownership for testing
type MockOwnership struct {
	mock.Mock
}

func (m *MockOwnership) FetchOwnership(ctx context.Context, playerID string) ([]domain.OwnershipRecord, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnershipRecord), args.Error(1)
}

func (m *MockOwnership) InsertOwnership(ctx context.Context, record domain.OwnershipRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOwnership) DeleteOwnership(ctx context.Context, playerID, entryID string) error {
	args := m.Called(ctx, playerID, entryID)
	return args.Error(0)
}

// MockFavorites implements repository.Favorite for testing
type MockFavorites struct {
	mock.Mock
}

func (m *MockFavorites) AddFavorite(ctx context.Context, playerID, entryID string) error {
	args := m.Called(ctx, playerID, entryID)
	return args.Error(0)
}

func (m *MockFavorites) RemoveFavorite(ctx context.Context, playerID, entryID string) error {
	args := m.Called(ctx, playerID, entryID)
	return args.Error(0)
}

func (m *MockFavorites) IsFavorite(ctx context.Context, playerID, entryID string) (bool, error) {
	args := m.Called(ctx, playerID, entryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavorites) GetFavorites(ctx context.Context, playerID string) ([]string, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockCatalogRepo implements repository.Catalog for testing
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) FetchEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogRepo) ReplaceEntries(ctx context.Context, entries []domain.CatalogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockGateway implements economy.Gateway for testing
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetBalance(ctx context.Context, playerID string) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

func (m *MockGateway) TryDebit(ctx context.Context, playerID string, amount int) (bool, error) {
	args := m.Called(ctx, playerID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockGateway) Credit(ctx context.Context, playerID string, amount int) error {
	args := m.Called(ctx, playerID, amount)
	return args.Error(0)
}

// recordingBus captures published events for assertions.
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, e event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) typesSeen() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type
	}
	return out
}
