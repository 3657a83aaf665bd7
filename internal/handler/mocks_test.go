package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/shop"
)

// MockShopService is a hand-written testify mock of shop.Service.
type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) ListCatalog(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockShopService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockShopService) GetEntry(ctx context.Context, entryID string) (domain.CatalogEntry, error) {
	args := m.Called(ctx, entryID)
	return args.Get(0).(domain.CatalogEntry), args.Error(1)
}

func (m *MockShopService) ListOwned(ctx context.Context, playerID string) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockShopService) Acquire(ctx context.Context, playerID, entryID string) (*shop.AcquireResult, error) {
	args := m.Called(ctx, playerID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.AcquireResult), args.Error(1)
}

func (m *MockShopService) AdminGrant(ctx context.Context, playerID, entryID string) (*shop.AcquireResult, error) {
	args := m.Called(ctx, playerID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.AcquireResult), args.Error(1)
}

func (m *MockShopService) AdminRemove(ctx context.Context, playerID, entryID string) error {
	args := m.Called(ctx, playerID, entryID)
	return args.Error(0)
}

func (m *MockShopService) AddFavorite(ctx context.Context, playerID, entryID string) error {
	args := m.Called(ctx, playerID, entryID)
	return args.Error(0)
}

func (m *MockShopService) RemoveFavorite(ctx context.Context, playerID, entryID string) error {
	args := m.Called(ctx, playerID, entryID)
	return args.Error(0)
}

func (m *MockShopService) ListFavorites(ctx context.Context, playerID string) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockShopService) GetBalance(ctx context.Context, playerID string) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

func (m *MockShopService) ReloadCatalog(ctx context.Context) (*shop.ReloadResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.ReloadResult), args.Error(1)
}
