package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/logger"
)

// NotificationReceiver accepts notifications pushed over HTTP.
type NotificationReceiver interface {
	Receive(ctx context.Context, n domain.Notification) (domain.CodeEvent, bool)
}

// IngestNotificationRequest is a notification posted by a forwarding app.
type IngestNotificationRequest struct {
	Key         string     `json:"key" validate:"max=256"`
	PackageName string     `json:"package_name" validate:"required,max=255,package_name"`
	Title       string     `json:"title" validate:"max=1024"`
	Text        string     `json:"text" validate:"max=8192"`
	BigText     string     `json:"big_text" validate:"max=16384"`
	PostedAt    *time.Time `json:"posted_at"`
}

// IngestNotificationResponse tells the caller what happened to the notification.
type IngestNotificationResponse struct {
	Duplicate bool   `json:"duplicate"`
	CodeFound bool   `json:"code_found"`
	Code      string `json:"code,omitempty"`
}

// HandleIngestNotification feeds a posted notification into the pipeline.
// @Summary Ingest notification
// @Description Submit a device notification; a six-digit code in it becomes the current record
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body IngestNotificationRequest true "Notification"
// @Success 202 {object} IngestNotificationResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/notifications [post]
func HandleIngestNotification(receiver NotificationReceiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req IngestNotificationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "ingest notification"); err != nil {
			return
		}

		n := domain.Notification{
			Key:         req.Key,
			PackageName: req.PackageName,
			Title:       req.Title,
			Text:        req.Text,
			BigText:     req.BigText,
			PostedAt:    time.Now(),
		}
		if req.PostedAt != nil {
			n.PostedAt = *req.PostedAt
		}

		ev, accepted := receiver.Receive(r.Context(), n)
		if !accepted {
			log.Debug(LogMsgDuplicateIngest, "key", req.Key)
			respondJSON(w, http.StatusAccepted, IngestNotificationResponse{Duplicate: true})
			return
		}

		log.Info(LogMsgNotificationIngested, "package", req.PackageName, "code_found", ev.HasCode())
		respondJSON(w, http.StatusAccepted, IngestNotificationResponse{
			CodeFound: ev.HasCode(),
			Code:      ev.Code,
		})
	}
}
