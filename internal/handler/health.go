package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ConnectionState reports whether notification sources are connected.
type ConnectionState interface {
	Connected() bool
	Sources() []string
}

// Pinger is satisfied by the database pool when history is enabled.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the process is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready while a notification source is connected and,
// when history is enabled, the database answers.
// @Summary Readiness check
// @Description Returns OK when a notification listener is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(state ConnectionState, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if !state.Connected() {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: StatusUnavailable, Message: ErrMsgNotReady})
			return
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				log.Error(LogMsgReadinessFailed, "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: StatusUnavailable, Message: ErrMsgDatabaseUnavailable})
				return
			}
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
