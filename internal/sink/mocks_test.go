package sink

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/record"
	"github.com/osse101/SmsAuto_Go/internal/worker"
)

type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) Write(ctx context.Context, rec domain.CodeRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecordStore) Delete(ctx context.Context) record.DeleteOutcome {
	args := m.Called(ctx)
	return args.Get(0).(record.DeleteOutcome)
}

// inlinePool runs jobs synchronously so tests can assert on their effects.
type inlinePool struct {
	reject bool
	mu     sync.Mutex
	jobs   int
}

func (p *inlinePool) Submit(job worker.Job) bool {
	if p.reject {
		return false
	}
	p.mu.Lock()
	p.jobs++
	p.mu.Unlock()
	_ = job.Process(context.Background())
	return true
}

type broadcast struct {
	Type    string
	Payload interface{}
}

type fakeBroadcaster struct {
	mu   sync.Mutex
	sent []broadcast
}

func (b *fakeBroadcaster) Broadcast(eventType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, broadcast{Type: eventType, Payload: payload})
}

func (b *fakeBroadcaster) ofType(eventType string) []broadcast {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []broadcast
	for _, s := range b.sent {
		if s.Type == eventType {
			out = append(out, s)
		}
	}
	return out
}

type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) Record(ctx context.Context, ev domain.CodeEvent, source string, at time.Time) error {
	args := m.Called(ctx, ev, source, at)
	return args.Error(0)
}
