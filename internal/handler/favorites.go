package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/logger"
	"github.com/openheads/headstore/internal/shop"
)

// FavoritesResponse wraps a player's favorite heads
type FavoritesResponse struct {
	PlayerID string                `json:"player_id"`
	Entries  []domain.CatalogEntry `json:"entries"`
	Count    int                   `json:"count"`
}

// FavoriteRequest is the body of an add-favorite request
type FavoriteRequest struct {
	EntryID string `json:"entry_id" validate:"required,max=100,entry_id"`
}

// HandleListFavorites lists a player's favorite heads
// @Summary List favorites
// @Description List the heads a player has marked as favorites, in the order they were marked
// @Tags favorites
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} FavoritesResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/{playerID}/favorites [get]
func HandleListFavorites(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		player, ok := playerID(w, r)
		if !ok {
			return
		}

		entries, err := svc.ListFavorites(r.Context(), player)
		if err != nil {
			log.Error("Failed to list favorites", "error", err, "player_id", player)
			respondError(w, http.StatusInternalServerError, ErrMsgListFavoritesFailed)
			return
		}

		respondJSON(w, http.StatusOK, FavoritesResponse{PlayerID: player, Entries: entries, Count: len(entries)})
	}
}

// HandleAddFavorite marks a head as a favorite
// @Summary Add favorite
// @Description Mark a catalog head as a favorite, owned or not. Idempotent.
// @Tags favorites
// @Accept json
// @Produce json
// @Param playerID path string true "Player id"
// @Param request body FavoriteRequest true "Entry to favorite"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/favorites [post]
func HandleAddFavorite(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		player, ok := playerID(w, r)
		if !ok {
			return
		}

		var req FavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode favorite request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid favorite request", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		if err := svc.AddFavorite(r.Context(), player, req.EntryID); err != nil {
			log.Warn("Failed to add favorite", "error", err, "player_id", player, "entry_id", req.EntryID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFavoriteAddedSuccess})
	}
}

// HandleRemoveFavorite unmarks a favorite head
// @Summary Remove favorite
// @Description Remove a head from the player's favorites. Idempotent.
// @Tags favorites
// @Produce json
// @Param playerID path string true "Player id"
// @Param entryID path string true "Catalog entry id"
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/{playerID}/favorites/{entryID} [delete]
func HandleRemoveFavorite(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		player, ok := playerID(w, r)
		if !ok {
			return
		}

		entryID := chi.URLParam(r, "entryID")
		if entryID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingEntryID)
			return
		}

		if err := svc.RemoveFavorite(r.Context(), player, entryID); err != nil {
			log.Error("Failed to remove favorite", "error", err, "player_id", player, "entry_id", entryID)
			respondError(w, http.StatusInternalServerError, ErrMsgRemoveFavoriteFailed)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFavoriteRemovedSuccess})
	}
}
