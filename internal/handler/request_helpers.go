package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/osse101/SmsAuto_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On failure the response has already been written and the handler should
// return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn("Failed to decode "+actionName+" request", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Invalid "+actionName+" request", "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	if value := r.URL.Query().Get(paramName); value != "" {
		return value
	}
	return defaultValue
}

// parseLimit reads ?limit, defaulting and clamping it. ok is false for a
// malformed or non-positive value.
func parseLimit(r *http.Request, def, max int) (limit int, ok bool) {
	raw := GetOptionalQueryParam(r, "limit", "")
	if raw == "" {
		return def, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, false
	}
	if limit > max {
		limit = max
	}
	return limit, true
}
