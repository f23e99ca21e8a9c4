package handler

import (
	"context"
	"net/http"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/logger"
)

// HistoryReader lists recent history entries, newest first.
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}

// HistoryResponse wraps a page of history entries.
type HistoryResponse struct {
	Entries []domain.HistoryEntry `json:"entries"`
}

// HandleHistory returns recent code events from the history store.
// @Summary Notification history
// @Description Recent code events, newest first (only when history is enabled)
// @Tags history
// @Produce json
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/history [get]
func HandleHistory(reader HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(r, DefaultHistoryLimit, MaxHistoryLimit)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}

		entries, err := reader.Recent(r.Context(), limit)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgHistoryFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgHistoryFailed)
			return
		}
		if entries == nil {
			entries = []domain.HistoryEntry{}
		}
		respondJSON(w, http.StatusOK, HistoryResponse{Entries: entries})
	}
}
