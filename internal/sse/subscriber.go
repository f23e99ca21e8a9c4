package sse

import (
	"context"

	"github.com/osse101/SmsAuto_Go/internal/event"
	"github.com/osse101/SmsAuto_Go/internal/logger"
)

// Subscriber forwards code events that reached the fallback bus to live
// viewers as code.fallback, so a code is still visible when the primary
// consumer is missing or failed.
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers on the fallback bus.
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.CodeReceived, s.handleCodeReceived)
	logger.Info(LogMsgFallbackRegistered, "type", event.CodeReceived)
}

func (s *Subscriber) handleCodeReceived(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.CodeReceivedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	source, _ := evt.GetMetadataValue("source").(string)

	s.hub.Broadcast(EventTypeCodeFallback, CodeFallbackPayload{
		EventID:   evt.ID,
		Code:      payload.Code,
		Sender:    payload.Sender,
		Content:   payload.Content,
		SourceApp: payload.SourceApp,
		Source:    source,
	})

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", EventTypeCodeFallback, "event_id", evt.ID)
	return nil
}
