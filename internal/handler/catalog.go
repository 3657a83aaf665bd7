package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/logger"
	"github.com/openheads/headstore/internal/shop"
)

// CatalogResponse wraps a catalog listing
type CatalogResponse struct {
	Entries []domain.CatalogEntry `json:"entries"`
	Count   int                   `json:"count"`
}

// CategoriesResponse wraps a category listing
type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
	Count      int               `json:"count"`
}

// HandleListCatalog lists catalog entries, optionally filtered
// @Summary List catalog
// @Description List catalog entries, filtered by category, search term or acquire mode
// @Tags catalog
// @Produce json
// @Param category query string false "Restrict to a category"
// @Param search query string false "Case-insensitive display name search"
// @Param mode query string false "Restrict to an acquire mode" Enums(purchasable, reward, admin_granted)
// @Success 200 {object} CatalogResponse
// @Failure 500 {object} ErrorResponse
// @Router /catalog [get]
func HandleListCatalog(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter := domain.CatalogFilter{
			Category: r.URL.Query().Get("category"),
			Search:   r.URL.Query().Get("search"),
			Mode:     domain.AcquireMode(r.URL.Query().Get("mode")),
		}

		entries, err := svc.ListCatalog(r.Context(), filter)
		if err != nil {
			log.Error("Failed to list catalog", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListCatalogFailed)
			return
		}

		respondJSON(w, http.StatusOK, CatalogResponse{Entries: entries, Count: len(entries)})
	}
}

// HandleListCategories lists the catalog's categories
// @Summary List categories
// @Description List categories with display metadata and entry counts
// @Tags catalog
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 500 {object} ErrorResponse
// @Router /catalog/categories [get]
func HandleListCategories(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			log.Error("Failed to list categories", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListCategoriesFailed)
			return
		}

		respondJSON(w, http.StatusOK, CategoriesResponse{Categories: categories, Count: len(categories)})
	}
}

// HandleGetEntry returns a single catalog entry
// @Summary Get catalog entry
// @Description Get one catalog entry by id
// @Tags catalog
// @Produce json
// @Param entryID path string true "Catalog entry id"
// @Success 200 {object} domain.CatalogEntry
// @Failure 404 {object} ErrorResponse
// @Router /catalog/{entryID} [get]
func HandleGetEntry(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		entryID := chi.URLParam(r, "entryID")
		if entryID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingEntryID)
			return
		}

		entry, err := svc.GetEntry(r.Context(), entryID)
		if err != nil {
			log.Debug("Catalog entry lookup failed", "entry_id", entryID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}
