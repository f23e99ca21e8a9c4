// Package sink is the consumer side of the pipeline: it keeps the live log,
// streams it to viewers and persists codes through the worker pool.
package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/event"
	"github.com/osse101/SmsAuto_Go/internal/logger"
	"github.com/osse101/SmsAuto_Go/internal/metrics"
	"github.com/osse101/SmsAuto_Go/internal/record"
	"github.com/osse101/SmsAuto_Go/internal/worker"
)

// RecordStore is the durable side of the sink.
type RecordStore interface {
	Write(ctx context.Context, rec domain.CodeRecord) error
	Delete(ctx context.Context) record.DeleteOutcome
}

// Submitter accepts fire-and-forget jobs.
type Submitter interface {
	Submit(job worker.Job) bool
}

// Broadcaster pushes messages to live viewers.
type Broadcaster interface {
	Broadcast(eventType string, payload interface{})
}

// HistoryRecorder keeps an optional trail of every code event.
type HistoryRecorder interface {
	Record(ctx context.Context, ev domain.CodeEvent, source string, at time.Time) error
}

// LogAppended is the payload of a log.appended stream event.
type LogAppended struct {
	Line string `json:"line"`
	Code string `json:"code,omitempty"`
}

// Toast is the payload of a toast stream event.
type Toast struct {
	Message string `json:"message"`
}

// CodeSink handles code events. Every method is safe for concurrent use.
type CodeSink struct {
	store       RecordStore
	pool        Submitter
	broadcaster Broadcaster
	history     HistoryRecorder
	log         *LogBuffer
	now         func() time.Time
}

// Option configures a CodeSink.
type Option func(*CodeSink)

// WithBroadcaster streams log lines and toasts to b.
func WithBroadcaster(b Broadcaster) Option {
	return func(s *CodeSink) { s.broadcaster = b }
}

// WithHistory records every event through h, off the caller's goroutine.
func WithHistory(h HistoryRecorder) Option {
	return func(s *CodeSink) { s.history = h }
}

// WithClock overrides the time source used for log stamps.
func WithClock(now func() time.Time) Option {
	return func(s *CodeSink) { s.now = now }
}

// New creates a CodeSink writing records through pool.
func New(store RecordStore, pool Submitter, opts ...Option) *CodeSink {
	s := &CodeSink{
		store: store,
		pool:  pool,
		log:   &LogBuffer{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnCodeEvent stamps and logs ev and, when it carries a code, queues the
// record write and raises a toast. It never blocks on I/O.
func (s *CodeSink) OnCodeEvent(ctx context.Context, ev domain.CodeEvent) {
	s.handle(ctx, ev, "")
}

func (s *CodeSink) handle(ctx context.Context, ev domain.CodeEvent, source string) {
	log := logger.FromContext(ctx)
	at := s.now()

	line := FormatLogLine(at, ev)
	s.log.Append(line)
	metrics.LiveLogBytes.Set(float64(s.log.Len()))
	s.broadcast(StreamEventLogAppended, LogAppended{Line: line, Code: ev.Code})
	log.Debug(LogMsgCodeEventHandled, "entry", line)

	if s.history != nil {
		s.submitHistory(ctx, ev, source, at)
	}

	if !ev.HasCode() {
		return
	}

	if s.pool.Submit(&writeJob{store: s.store, rec: domain.RecordFromEvent(ev)}) {
		log.Debug(LogMsgWriteQueued, "code", ev.Code)
	} else {
		log.Warn(LogMsgWriteNotQueued, "code", ev.Code)
	}

	s.toast(ToastForCode(ev.Code))
}

// Handle adapts the sink to the delivery transport.
func (s *CodeSink) Handle(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.CodeReceivedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadPayload, "event_id", evt.ID, "error", err)
		return fmt.Errorf("decode %s payload: %w", evt.Type, err)
	}
	source, _ := evt.GetMetadataValue("source").(string)
	s.handle(ctx, payload.CodeEvent(), source)
	return nil
}

// DeleteRecord removes the record file and reports the outcome as a toast.
func (s *CodeSink) DeleteRecord(ctx context.Context) record.DeleteOutcome {
	outcome := s.store.Delete(ctx)
	s.toast(outcome.Message())
	return outcome
}

// Log returns the accumulated log entries.
func (s *CodeSink) Log() string {
	return s.log.String()
}

// View renders the status header followed by the log, as the live view shows it.
func (s *CodeSink) View(enabled, connected bool) string {
	return RenderStatus(enabled, connected) + s.log.String()
}

func (s *CodeSink) toast(msg string) {
	s.broadcast(StreamEventToast, Toast{Message: msg})
}

func (s *CodeSink) broadcast(eventType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(eventType, payload)
	}
}

func (s *CodeSink) submitHistory(ctx context.Context, ev domain.CodeEvent, source string, at time.Time) {
	job := &historyJob{recorder: s.history, ev: ev, source: source, at: at}
	if !s.pool.Submit(job) {
		logger.FromContext(ctx).Warn(LogMsgHistoryNotQueued, "source_app", ev.SourceApp)
	}
}
