package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openheads/headstore/internal/logger"
	"github.com/openheads/headstore/internal/shop"
)

// GrantRequest is the body of an admin grant request
type GrantRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=100"`
	EntryID  string `json:"entry_id" validate:"required,max=100,entry_id"`
}

// HandleAdminGrant grants a head without charging the player
// @Summary Grant a head
// @Description Grant any catalog entry to a player without a debit, regardless of acquire mode
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GrantRequest true "Grant details"
// @Success 200 {object} shop.AcquireResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/heads/grant [post]
func HandleAdminGrant(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req GrantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode grant request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid grant request", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		result, err := svc.AdminGrant(r.Context(), req.PlayerID, req.EntryID)
		if err != nil {
			log.Warn("Admin grant failed", "error", err, "player_id", req.PlayerID, "entry_id", req.EntryID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Head granted by admin", "player_id", req.PlayerID, "entry_id", req.EntryID)

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleAdminRemove removes a head from a player
// @Summary Remove a head
// @Description Delete the ownership record and clear the player's favorite mark. No refund is issued.
// @Tags admin
// @Produce json
// @Param playerID path string true "Player id"
// @Param entryID path string true "Catalog entry id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/players/{playerID}/heads/{entryID} [delete]
func HandleAdminRemove(svc shop.Service) http.HandlerFunc {
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

		if err := svc.AdminRemove(r.Context(), player, entryID); err != nil {
			log.Warn("Admin remove failed", "error", err, "player_id", player, "entry_id", entryID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Head removed by admin", "player_id", player, "entry_id", entryID)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHeadRemovedSuccess})
	}
}

// ReloadResponse reports the size of the freshly loaded catalog
type ReloadResponse struct {
	Message    string `json:"message"`
	Entries    int    `json:"entries"`
	Categories int    `json:"categories"`
}

// HandleReloadCatalog reloads the catalog from the config file
// @Summary Reload catalog
// @Description Re-read the catalog config, sync it to the database and swap the in-memory registry
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/catalog/reload [post]
func HandleReloadCatalog(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		result, err := svc.ReloadCatalog(r.Context())
		if err != nil {
			log.Error("Catalog reload failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadCatalogFailed)
			return
		}

		log.Info("Catalog reloaded", "entries", result.Entries, "categories", result.Categories)

		respondJSON(w, http.StatusOK, ReloadResponse{
			Message:    MsgCatalogReloadedSuccess,
			Entries:    result.Entries,
			Categories: result.Categories,
		})
	}
}
