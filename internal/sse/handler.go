package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/logger"
)

// Handler returns an HTTP handler for SSE connections
func Handler(hub *Hub) http.HandlerFunc {
	return handler(hub, KeepaliveInterval)
}

func handler(hub *Hub, keepalive time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, LogMsgStreamUnsupported, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		var filters []string
		if raw := r.URL.Query().Get(FilterQueryParam); raw != "" {
			filters = strings.Split(raw, ",")
		}

		client := hub.Register(filters)
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", filters)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		write := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   ConnectedPayload{ClientID: client.ID, Filters: filters},
		}) {
			return
		}

		ticker := time.NewTicker(keepalive)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case evt, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !write(evt) {
					return
				}
			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
