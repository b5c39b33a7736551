package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/MuForge_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker defines the interface for components that can report health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// readinessTimeout bounds a single readiness probe
const readinessTimeout = 2 * time.Second

// HandlePing is the client connectivity probe
// @Summary Ping
// @Tags game
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/ping [get]
func HandlePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports whether the service should receive traffic
// @Summary Readiness check
// @Description Returns OK until the server starts draining for shutdown
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := checker.CheckHealth(ctx); err != nil {
			logger.FromContext(ctx).Warn(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: err.Error(),
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
