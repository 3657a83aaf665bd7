package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openheads/headstore/internal/domain"
	"github.com/openheads/headstore/internal/logger"
	"github.com/openheads/headstore/internal/shop"
)

// OwnedResponse wraps a player's owned heads
type OwnedResponse struct {
	PlayerID string                `json:"player_id"`
	Entries  []domain.CatalogEntry `json:"entries"`
	Count    int                   `json:"count"`
}

// BalanceResponse wraps a player's currency balance
type BalanceResponse struct {
	PlayerID string `json:"player_id"`
	Balance  int    `json:"balance"`
}

// AcquireRequest is the body of an acquire request
type AcquireRequest struct {
	EntryID string `json:"entry_id" validate:"required,max=100,entry_id"`
}

// playerID extracts the player path parameter, writing a 400 on absence.
func playerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "playerID")
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingPlayerID)
		return "", false
	}
	return id, true
}

// HandleListOwned lists the heads a player owns
// @Summary List owned heads
// @Description List the heads a player owns, with catalog details
// @Tags players
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} OwnedResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/{playerID}/heads [get]
func HandleListOwned(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		player, ok := playerID(w, r)
		if !ok {
			return
		}

		entries, err := svc.ListOwned(r.Context(), player)
		if err != nil {
			log.Error("Failed to list owned heads", "error", err, "player_id", player)
			respondError(w, http.StatusInternalServerError, ErrMsgListOwnedFailed)
			return
		}

		respondJSON(w, http.StatusOK, OwnedResponse{PlayerID: player, Entries: entries, Count: len(entries)})
	}
}

// HandleAcquire purchases or claims a head for a player
// @Summary Acquire a head
// @Description Debit the player and grant the head atomically. Free and reward heads skip the debit.
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player id"
// @Param request body AcquireRequest true "Entry to acquire"
// @Success 200 {object} shop.AcquireResult
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/{playerID}/heads [post]
func HandleAcquire(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		player, ok := playerID(w, r)
		if !ok {
			return
		}

		var req AcquireRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode acquire request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid acquire request", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		log.Debug("Acquire request", "player_id", player, "entry_id", req.EntryID)

		result, err := svc.Acquire(r.Context(), player, req.EntryID)
		if err != nil {
			log.Warn("Acquire failed", "error", err, "player_id", player, "entry_id", req.EntryID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Head acquired", "player_id", player, "entry_id", result.EntryID, "charged", result.Charged)

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetBalance returns a player's currency balance
// @Summary Get balance
// @Description Pass-through to the currency gateway
// @Tags players
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} BalanceResponse
// @Failure 504 {object} ErrorResponse
// @Router /players/{playerID}/balance [get]
func HandleGetBalance(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		player, ok := playerID(w, r)
		if !ok {
			return
		}

		balance, err := svc.GetBalance(r.Context(), player)
		if err != nil {
			log.Error("Failed to get balance", "error", err, "player_id", player)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{PlayerID: player, Balance: balance})
	}
}
