package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/SmsAuto_Go/internal/logger"
	"github.com/osse101/SmsAuto_Go/internal/metrics"
)

// ErrNoSubscriber is reported when an event is published with no registered subscriber.
var ErrNoSubscriber = errors.New("no subscriber registered")

// Dispatcher delivers each event at most once to a single registered
// subscriber. When the subscriber is missing or fails, the event is handed
// once to the fallback bus. Nothing is queued or retried and no failure is
// returned to the publisher.
type Dispatcher struct {
	mu       sync.RWMutex
	primary  Handler
	gen      uint64
	fallback Bus
}

// NewDispatcher creates a Dispatcher. fallback may be nil.
func NewDispatcher(fallback Bus) *Dispatcher {
	return &Dispatcher{fallback: fallback}
}

// Register installs h as the only subscriber, replacing any previous one.
// The returned function unregisters h; it is a no-op once h has been replaced.
func (d *Dispatcher) Register(h Handler) (unregister func()) {
	d.mu.Lock()
	if d.primary != nil {
		logger.Warn(LogMsgSubscriberReplaced)
	}
	d.primary = h
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.gen == gen {
			d.primary = nil
		}
	}
}

// Registered reports whether a subscriber is currently installed.
func (d *Dispatcher) Registered() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.primary != nil
}

// Publish delivers event to the subscriber, falling back on failure.
func (d *Dispatcher) Publish(ctx context.Context, event Event) {
	log := logger.FromContext(ctx)

	d.mu.RLock()
	h := d.primary
	d.mu.RUnlock()

	if h == nil {
		log.Debug(LogMsgNoSubscriber, "event_type", event.Type, "event_id", event.ID)
		d.publishFallback(ctx, event, ErrNoSubscriber)
		return
	}

	if err := d.deliver(ctx, h, event); err != nil {
		log.Warn(LogMsgSubscriberFailed, "event_type", event.Type, "event_id", event.ID, "error", err)
		d.publishFallback(ctx, event, err)
		return
	}

	metrics.TransportDeliveries.WithLabelValues(PathPrimary).Inc()
	log.Debug(LogMsgEventDelivered, "event_type", event.Type, "event_id", event.ID)
}

// deliver calls h, turning a panic into an error so one bad subscriber
// cannot take down the source that published the event.
func (d *Dispatcher) deliver(ctx context.Context, h Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgSubscriberPanicked, "event_type", event.Type, "panic", r)
			err = fmt.Errorf("subscriber panic: %v", r)
		}
	}()
	return h(ctx, event)
}

func (d *Dispatcher) publishFallback(ctx context.Context, event Event, cause error) {
	log := logger.FromContext(ctx)
	if d.fallback == nil {
		metrics.TransportDeliveries.WithLabelValues(PathDropped).Inc()
		log.Info(LogMsgEventDropped, "event_type", event.Type, "event_id", event.ID, "cause", cause)
		return
	}
	if err := d.fallback.Publish(ctx, event); err != nil {
		metrics.TransportDeliveries.WithLabelValues(PathDropped).Inc()
		log.Error(LogMsgFallbackFailed, "event_type", event.Type, "event_id", event.ID, "error", err)
		return
	}
	metrics.TransportDeliveries.WithLabelValues(PathFallback).Inc()
}
