// Package watcher turns raw notifications into code events and owns the
// listener connection state.
package watcher

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/event"
	"github.com/osse101/SmsAuto_Go/internal/extract"
	"github.com/osse101/SmsAuto_Go/internal/logger"
	"github.com/osse101/SmsAuto_Go/internal/metrics"
)

// Publisher hands an event to the delivery transport. It must not block on
// the consumer's I/O.
type Publisher interface {
	Publish(ctx context.Context, evt event.Event)
}

// Watcher is the producer side of the pipeline. It is safe for concurrent
// use; every source calls into the same Watcher.
type Watcher struct {
	extractor *extract.Extractor
	publisher Publisher
	deduper   *Deduper

	connected atomic.Bool
	mu        sync.Mutex
	sources   map[string]struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDeduper drops repeated deliveries of the same notification key.
func WithDeduper(d *Deduper) Option {
	return func(w *Watcher) { w.deduper = d }
}

// New creates a Watcher. It always starts disconnected.
func New(extractor *extract.Extractor, publisher Publisher, opts ...Option) *Watcher {
	if extractor == nil {
		extractor = extract.New(extract.Options{})
	}
	w := &Watcher{
		extractor: extractor,
		publisher: publisher,
		sources:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	metrics.SetListenerConnected(false)
	return w
}

// OnNotification resolves the notification, extracts the code and publishes
// exactly one code.received event whether or not a code was found.
func (w *Watcher) OnNotification(ctx context.Context, n domain.Notification) domain.CodeEvent {
	ev := w.extractor.Event(n)

	metrics.NotificationsReceived.WithLabelValues(n.Source).Inc()
	if ev.HasCode() {
		metrics.CodesExtracted.WithLabelValues(n.Source).Inc()
	}

	logger.FromContext(ctx).Debug(LogMsgNotificationReceived,
		"source", n.Source,
		"package", ev.SourceApp,
		"sender", ev.Sender,
		"has_code", ev.HasCode())

	w.publisher.Publish(ctx, event.NewCodeReceivedEvent(ev, n.Source))
	return ev
}

// Receive is OnNotification behind the deduper. The boolean is false when
// the notification was already seen and nothing was published.
func (w *Watcher) Receive(ctx context.Context, n domain.Notification) (domain.CodeEvent, bool) {
	if w.deduper != nil && !w.deduper.FirstSeen(n) {
		metrics.NotificationsDuplicate.WithLabelValues(n.Source).Inc()
		logger.FromContext(ctx).Debug(LogMsgDuplicateDropped, "source", n.Source, "key", n.Key)
		return domain.CodeEvent{}, false
	}
	return w.OnNotification(ctx, n), true
}

// OnListenerConnected marks source as connected.
func (w *Watcher) OnListenerConnected(source string) {
	w.mu.Lock()
	_, already := w.sources[source]
	w.sources[source] = struct{}{}
	w.connected.Store(true)
	w.mu.Unlock()

	metrics.SetListenerConnected(true)
	if !already {
		logger.Info(LogMsgListenerConnected, "source", source)
	}
}

// OnListenerDisconnected marks source as disconnected. The watcher stays
// connected while any other source is still up.
func (w *Watcher) OnListenerDisconnected(source string) {
	w.mu.Lock()
	_, was := w.sources[source]
	delete(w.sources, source)
	up := len(w.sources) > 0
	w.connected.Store(up)
	w.mu.Unlock()

	metrics.SetListenerConnected(up)
	if was {
		logger.Warn(LogMsgListenerDisconnected, "source", source)
	}
}

// Connected reports whether at least one source is connected.
func (w *Watcher) Connected() bool {
	return w.connected.Load()
}

// Sources lists the connected sources in name order.
func (w *Watcher) Sources() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.sources))
	for s := range w.sources {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
