package handler

import (
	"net/http"

	"github.com/osse101/MuForge_Go/internal/game"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// StartResponse carries the id of a new session
type StartResponse struct {
	SessionID string `json:"session_id"`
}

// CommandRequest is the body of /command
type CommandRequest struct {
	SessionID string   `json:"session_id" validate:"required,sessionid"`
	Command   string   `json:"command" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Args      []string `json:"args" validate:"max=16,dive,max=100"`
}

// HandleStart creates a new game session
// @Summary Start a game
// @Tags game
// @Produce json
// @Success 201 {object} StartResponse
// @Failure 500 {object} ErrorResponse
// @Router /start [post]
func HandleStart(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := svc.CreateSession(r.Context())
		if err != nil {
			respondServiceError(w, r, "Start", err)
			return
		}
		respondJSON(w, http.StatusCreated, StartResponse{SessionID: id})
	}
}

// HandleGetState returns the session's player, node, combat and loot
// @Summary Get game state
// @Tags game
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} game.State
// @Failure 404 {object} ErrorResponse
// @Router /state [get]
func HandleGetState(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetQueryParam(r, w, QueryParamSessionID)
		if !ok {
			return
		}

		state, err := svc.GetState(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, "Get state", err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandleCommand runs a free-form command. Command failures are reported in
// the body with ok=false and a 200 status.
// @Summary Run a command
// @Tags game
// @Accept json
// @Produce json
// @Param request body CommandRequest true "Command"
// @Success 200 {object} game.CommandResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /command [post]
func HandleCommand(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CommandRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Command"); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "session_id", req.SessionID, "command", req.Command)

		result, err := svc.ExecuteCommand(r.Context(), req.SessionID, req.Command, req.Args)
		if err != nil {
			respondServiceError(w, r, "Command", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleHeal restores health
// @Summary Heal
// @Tags game
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} game.HealResult
// @Failure 404 {object} ErrorResponse
// @Router /heal [post]
func HandleHeal(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetQueryParam(r, w, QueryParamSessionID)
		if !ok {
			return
		}

		result, err := svc.Heal(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, "Heal", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}
