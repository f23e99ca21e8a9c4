package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/logger"
	"github.com/osse101/SmsAuto_Go/internal/record"
)

// RecordReader reads the current record.
type RecordReader interface {
	Read(ctx context.Context) (domain.CodeRecord, error)
}

// RecordDeleter deletes the current record and reports the outcome.
type RecordDeleter interface {
	DeleteRecord(ctx context.Context) record.DeleteOutcome
}

// DeleteRecordResponse carries the outcome and its user message.
type DeleteRecordResponse struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

// HandleGetRecord returns the current record, re-encoded in the file format.
// @Summary Current record
// @Description The most recent verification code record
// @Tags record
// @Produce json
// @Success 200 {object} domain.CodeRecord
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/record [get]
func HandleGetRecord(reader RecordReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := reader.Read(r.Context())
		if errors.Is(err, record.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, ErrMsgRecordNotFound)
			return
		}
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgReadRecordFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReadRecordFailed)
			return
		}

		data, err := record.Encode(rec)
		if err != nil {
			respondError(w, http.StatusInternalServerError, ErrMsgReadRecordFailed)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// HandleDeleteRecord deletes the record file. A missing file is not an error.
// @Summary Delete record
// @Description Remove the verification code record; repeat deletes report not_found
// @Tags record
// @Produce json
// @Success 200 {object} DeleteRecordResponse
// @Failure 500 {object} DeleteRecordResponse
// @Security ApiKeyAuth
// @Router /api/v1/record [delete]
func HandleDeleteRecord(deleter RecordDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome := deleter.DeleteRecord(r.Context())

		status := http.StatusOK
		if outcome.Failed() {
			status = http.StatusInternalServerError
		}
		respondJSON(w, status, DeleteRecordResponse{
			Outcome: string(outcome.Kind),
			Message: outcome.Message(),
		})
	}
}
