package handler

import (
	"net/http"

	"github.com/osse101/SmsAuto_Go/internal/sink"
)

// LogSource provides the accumulated live log.
type LogSource interface {
	Log() string
}

// StatusResponse is the service status shown above the live log.
type StatusResponse struct {
	ListenerEnabled bool     `json:"listener_enabled"`
	Connected       bool     `json:"connected"`
	Sources         []string `json:"sources"`
	Hint            string   `json:"hint,omitempty"`
	Text            string   `json:"text"`
}

// HandleStatus reports the listener state.
// @Summary Service status
// @Description Listener enablement, connection state and the rendered status header
// @Tags view
// @Produce json
// @Success 200 {object} StatusResponse
// @Security ApiKeyAuth
// @Router /api/v1/status [get]
func HandleStatus(enabled bool, state ConnectionState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connected := state.Connected()
		sources := state.Sources()
		if sources == nil {
			sources = []string{}
		}
		respondJSON(w, http.StatusOK, StatusResponse{
			ListenerEnabled: enabled,
			Connected:       connected,
			Sources:         sources,
			Hint:            sink.StatusHint(enabled, connected),
			Text:            sink.RenderStatus(enabled, connected),
		})
	}
}

// HandleLog renders the live view as plain text: status header, then log.
// @Summary Live log
// @Description Status header followed by every log entry since start
// @Tags view
// @Produce plain
// @Success 200 {string} string
// @Security ApiKeyAuth
// @Router /api/v1/log [get]
func HandleLog(enabled bool, state ConnectionState, logs LogSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(sink.RenderStatus(enabled, state.Connected()) + logs.Log()))
	}
}
