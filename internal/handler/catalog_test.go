package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openheads/headstore/internal/domain"
)

func TestHandleListCatalog(t *testing.T) {
	entries := []domain.CatalogEntry{
		{ID: "heads_zombie", DisplayName: "Zombie", Price: 100, Category: "monsters", AcquireMode: domain.AcquireModePurchasable},
		{ID: "heads_dragon", DisplayName: "Ender Dragon", Price: 2500, Category: "monsters", AcquireMode: domain.AcquireModePurchasable},
	}

	t.Run("Success", func(t *testing.T) {
		svc := new(MockShopService)
		svc.On("ListCatalog", mock.Anything, domain.CatalogFilter{}).Return(entries, nil)

		req := httptest.NewRequest("GET", "/catalog", nil)
		w := httptest.NewRecorder()

		HandleListCatalog(svc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response CatalogResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Count)
		assert.Equal(t, "heads_zombie", response.Entries[0].ID)
		svc.AssertExpectations(t)
	})

	t.Run("FilterFromQueryParams", func(t *testing.T) {
		svc := new(MockShopService)
		want := domain.CatalogFilter{
			Category: "monsters",
			Search:   "zombie",
			Mode:     domain.AcquireModePurchasable,
		}
		svc.On("ListCatalog", mock.Anything, want).Return(entries[:1], nil)

		req := httptest.NewRequest("GET", "/catalog?category=monsters&search=zombie&mode=purchasable", nil)
		w := httptest.NewRecorder()

		HandleListCatalog(svc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		svc := new(MockShopService)
		svc.On("ListCatalog", mock.Anything, mock.Anything).Return(nil, errors.New("registry exploded"))

		req := httptest.NewRequest("GET", "/catalog", nil)
		w := httptest.NewRecorder()

		HandleListCatalog(svc)(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgListCatalogFailed)
	})
}

func TestHandleListCategories(t *testing.T) {
	svc := new(MockShopService)
	svc.On("ListCategories", mock.Anything).Return([]domain.Category{
		{Name: "monsters", DisplayName: "Monsters", EntryCount: 4},
	}, nil)

	req := httptest.NewRequest("GET", "/catalog/categories", nil)
	w := httptest.NewRecorder()

	HandleListCategories(svc)(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response CategoriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "Monsters", response.Categories[0].DisplayName)
}

func TestHandleGetEntry(t *testing.T) {
	router := func(svc *MockShopService) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/catalog/{entryID}", HandleGetEntry(svc))
		return r
	}

	t.Run("Success", func(t *testing.T) {
		svc := new(MockShopService)
		svc.On("GetEntry", mock.Anything, "heads_zombie").Return(domain.CatalogEntry{
			ID: "heads_zombie", DisplayName: "Zombie", Price: 100,
		}, nil)

		req := httptest.NewRequest("GET", "/catalog/heads_zombie", nil)
		w := httptest.NewRecorder()
		router(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var entry domain.CatalogEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, "Zombie", entry.DisplayName)
	})

	t.Run("UnknownEntry", func(t *testing.T) {
		svc := new(MockShopService)
		svc.On("GetEntry", mock.Anything, "heads_missing").Return(domain.CatalogEntry{}, domain.ErrUnknownEntry)

		req := httptest.NewRequest("GET", "/catalog/heads_missing", nil)
		w := httptest.NewRecorder()
		router(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUnknownEntryError)
	})
}
