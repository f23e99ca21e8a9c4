package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	ID       string      `json:"id"`
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	// CodeReceived carries the outcome of one processed notification.
	CodeReceived Type = "code.received"
)

// CodeReceivedPayloadV1 is the typed payload for code.received events.
// Code is empty when no verification code was found.
type CodeReceivedPayloadV1 struct {
	Code      string `json:"code"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	SourceApp string `json:"source_app"`
}

// NewCodeReceivedEvent creates a code.received event for ev, tagged with the
// source that delivered the notification.
func NewCodeReceivedEvent(ev domain.CodeEvent, source string) Event {
	return Event{
		ID:      uuid.NewString(),
		Version: EventSchemaVersion,
		Type:    CodeReceived,
		Payload: CodeReceivedPayloadV1{
			Code:      ev.Code,
			Sender:    ev.Sender,
			Content:   ev.Content,
			SourceApp: ev.SourceApp,
		},
		Metadata: Metadata{"source": source},
	}
}

// CodeEvent converts the payload back into the domain type.
func (p CodeReceivedPayloadV1) CodeEvent() domain.CodeEvent {
	return domain.CodeEvent{
		Code:      p.Code,
		Sender:    p.Sender,
		Content:   p.Content,
		SourceApp: p.SourceApp,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously on the publisher's goroutine.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// HasSubscribers reports whether any handler listens for eventType.
func (b *MemoryBus) HasSubscribers(eventType Type) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType]) > 0
}
