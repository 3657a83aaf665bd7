package shop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openheads/headstore/internal/cache"
	"github.com/openheads/headstore/internal/catalog"
	"github.com/openheads/headstore/internal/concurrency"
	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/event"
	"github.com/openheads/headstore/internal/repository"
)

// MockLoader implements catalog.Loader for testing
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(path string) (*catalog.Config, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Config), args.Error(1)
}

func (m *MockLoader) Validate(config *catalog.Config) error {
	args := m.Called(config)
	return args.Error(0)
}

func (m *MockLoader) SyncToDatabase(ctx context.Context, config *catalog.Config, repo repository.Catalog) (*catalog.SyncResult, error) {
	args := m.Called(ctx, config, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SyncResult), args.Error(1)
}

func newReloadHarness(t *testing.T, loader catalog.Loader) (Service, *catalog.Registry, *recordingBus) {
	t.Helper()

	registry := catalog.NewRegistry()
	registry.Replace(testEntries(), nil)
	bus := &recordingBus{}

	svc := NewService(Deps{
		Registry:    registry,
		Loader:      loader,
		ConfigPath:  "configs/catalog.json",
		Ownership:   new(MockOwnership),
		Favorites:   new(MockFavorites),
		CatalogRepo: new(MockCatalogRepo),
		Gateway:     new(MockGateway),
		Cache:       cache.NewOwnershipCache(10, time.Minute),
		Locks:       concurrency.NewLockManager(time.Second),
		Bus:         bus,
	})
	return svc, registry, bus
}

func TestReloadCatalog_SwapsRegistry(t *testing.T) {
	loader := new(MockLoader)
	svc, registry, bus := newReloadHarness(t, loader)
	ctx := context.Background()

	config := &catalog.Config{
		Version: "2.0",
		Categories: []catalog.CategoryDef{
			{Name: "seasonal", DisplayName: "Seasonal"},
		},
		Entries: []catalog.Def{
			{ID: "heads_pumpkin", DisplayName: "Pumpkin", Price: 200, Category: "seasonal"},
		},
	}

	loader.On("Load", "configs/catalog.json").Return(config, nil)
	loader.On("Validate", config).Return(nil)
	loader.On("SyncToDatabase", mock.Anything, config, mock.Anything).
		Return(&catalog.SyncResult{EntriesSynced: 1, CategoriesSynced: 1}, nil)

	result, err := svc.ReloadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Entries)
	assert.Equal(t, 1, result.Categories)

	// Old entries are gone after the swap
	_, err = registry.Get("heads_zombie")
	assert.ErrorIs(t, err, domain.ErrUnknownEntry)

	entry, err := registry.Get("heads_pumpkin")
	require.NoError(t, err)
	assert.Equal(t, "Pumpkin", entry.DisplayName)

	assert.Equal(t, []event.Type{event.CatalogReloaded}, bus.typesSeen())
	loader.AssertExpectations(t)
}

func TestReloadCatalog_FailuresLeaveRegistryUntouched(t *testing.T) {
	ctx := context.Background()

	config := &catalog.Config{
		Entries: []catalog.Def{{ID: "heads_new", DisplayName: "New", Price: 1, Category: "misc"}},
	}

	tests := []struct {
		name  string
		setup func(loader *MockLoader)
	}{
		{
			name: "load fails",
			setup: func(loader *MockLoader) {
				loader.On("Load", mock.Anything).Return(nil, errors.New("file missing"))
			},
		},
		{
			name: "validation fails",
			setup: func(loader *MockLoader) {
				loader.On("Load", mock.Anything).Return(config, nil)
				loader.On("Validate", config).Return(catalog.ErrInvalidConfig)
			},
		},
		{
			name: "sync fails",
			setup: func(loader *MockLoader) {
				loader.On("Load", mock.Anything).Return(config, nil)
				loader.On("Validate", config).Return(nil)
				loader.On("SyncToDatabase", mock.Anything, config, mock.Anything).
					Return(nil, errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := new(MockLoader)
			tt.setup(loader)
			svc, registry, bus := newReloadHarness(t, loader)

			_, err := svc.ReloadCatalog(ctx)
			require.Error(t, err)

			// The active catalog still serves the previous snapshot
			_, err = registry.Get("heads_zombie")
			assert.NoError(t, err)
			_, err = registry.Get("heads_new")
			assert.ErrorIs(t, err, domain.ErrUnknownEntry)

			assert.Empty(t, bus.typesSeen())
		})
	}
}
