package handler

import (
	"net/http"

	"github.com/osse101/MuForge_Go/internal/game"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// SearchRequest is the body of /search
type SearchRequest struct {
	SessionID string `json:"session_id" validate:"required,sessionid"`
}

// HandleSearch searches the current location
// @Summary Search
// @Tags adventure
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search"
// @Success 200 {object} game.SearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /search [post]
func HandleSearch(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SearchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Search"); err != nil {
			return
		}

		result, err := svc.Search(r.Context(), req.SessionID)
		if err != nil {
			respondServiceError(w, r, "Search", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleAdventure starts an encounter
// @Summary Start an encounter
// @Tags adventure
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} game.EncounterResult
// @Failure 404 {object} ErrorResponse
// @Router /adventure [post]
func HandleAdventure(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetQueryParam(r, w, QueryParamSessionID)
		if !ok {
			return
		}

		result, err := svc.StartEncounter(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, "Adventure", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleAttack strikes one enemy
// @Summary Attack
// @Tags adventure
// @Produce json
// @Param session_id query string true "Session ID"
// @Param enemy_id query int true "Enemy ID"
// @Param attack query int false "Attack power" default(10)
// @Success 200 {object} game.AttackResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /attack [post]
func HandleAttack(svc game.Service) http.HandlerFunc {
	defaultAttack := DefaultAttackPower
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetQueryParam(r, w, QueryParamSessionID)
		if !ok {
			return
		}
		enemyID, ok := GetIntQueryParam(r, w, QueryParamEnemyID, nil)
		if !ok {
			return
		}
		attackPower, ok := GetIntQueryParam(r, w, QueryParamAttack, &defaultAttack)
		if !ok {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "session_id", sessionID, "enemy_id", enemyID, "attack", attackPower)

		result, err := svc.Attack(r.Context(), sessionID, enemyID, attackPower)
		if err != nil {
			respondServiceError(w, r, "Attack", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleClaimLoot claims the pending encounter loot
// @Summary Claim loot
// @Tags adventure
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} game.ClaimResult
// @Failure 404 {object} ErrorResponse
// @Router /loot/claim [post]
func HandleClaimLoot(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetQueryParam(r, w, QueryParamSessionID)
		if !ok {
			return
		}

		result, err := svc.ClaimLoot(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, "Claim loot", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}
