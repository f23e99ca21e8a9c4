package event

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu    sync.Mutex
	calls []Event
	err   error
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, event)
	return m.err
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func testEvent() Event {
	return NewCodeReceivedEvent(domain.CodeEvent{
		Code:      "483920",
		Sender:    "Bank",
		Content:   "Your code is 483920",
		SourceApp: "com.bank.x",
	}, "test")
}

func TestDispatcher_DeliversToSubscriber(t *testing.T) {
	fallback := &mockBus{}
	d := NewDispatcher(fallback)

	var got []Event
	d.Register(func(ctx context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	evt := testEvent()
	d.Publish(context.Background(), evt)

	require.Len(t, got, 1, "subscriber receives the event exactly once")
	assert.Equal(t, evt.ID, got[0].ID)
	assert.Equal(t, 0, fallback.CallCount(), "fallback is not used on success")
}

func TestDispatcher_NoSubscriberUsesFallback(t *testing.T) {
	fallback := &mockBus{}
	d := NewDispatcher(fallback)

	d.Publish(context.Background(), testEvent())

	assert.Equal(t, 1, fallback.CallCount())
}

func TestDispatcher_NoSubscriberNoFallbackDrops(t *testing.T) {
	d := NewDispatcher(nil)

	assert.NotPanics(t, func() {
		d.Publish(context.Background(), testEvent())
	})
}

func TestDispatcher_SubscriberErrorUsesFallback(t *testing.T) {
	fallback := &mockBus{}
	d := NewDispatcher(fallback)

	var calls int32
	d.Register(func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("boom")
	})

	d.Publish(context.Background(), testEvent())

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retry to the subscriber")
	assert.Equal(t, 1, fallback.CallCount())
}

func TestDispatcher_SubscriberPanicIsRecovered(t *testing.T) {
	fallback := &mockBus{}
	d := NewDispatcher(fallback)
	d.Register(func(ctx context.Context, e Event) error {
		panic("subscriber bug")
	})

	assert.NotPanics(t, func() {
		d.Publish(context.Background(), testEvent())
	})
	assert.Equal(t, 1, fallback.CallCount())
}

func TestDispatcher_FallbackErrorIsSwallowed(t *testing.T) {
	fallback := &mockBus{err: errors.New("fallback down")}
	d := NewDispatcher(fallback)

	assert.NotPanics(t, func() {
		d.Publish(context.Background(), testEvent())
	})
	assert.Equal(t, 1, fallback.CallCount())
}

func TestDispatcher_RegisterReplacesSubscriber(t *testing.T) {
	d := NewDispatcher(nil)

	var first, second int32
	unregisterFirst := d.Register(func(ctx context.Context, e Event) error {
		atomic.AddInt32(&first, 1)
		return nil
	})
	d.Register(func(ctx context.Context, e Event) error {
		atomic.AddInt32(&second, 1)
		return nil
	})

	// A stale unregister must not remove the newer subscriber.
	unregisterFirst()
	assert.True(t, d.Registered())

	d.Publish(context.Background(), testEvent())
	assert.Equal(t, int32(0), atomic.LoadInt32(&first))
	assert.Equal(t, int32(1), atomic.LoadInt32(&second))
}

func TestDispatcher_Unregister(t *testing.T) {
	fallback := &mockBus{}
	d := NewDispatcher(fallback)

	unregister := d.Register(func(ctx context.Context, e Event) error { return nil })
	unregister()

	assert.False(t, d.Registered())
	d.Publish(context.Background(), testEvent())
	assert.Equal(t, 1, fallback.CallCount())
}

func TestDecodePayload(t *testing.T) {
	evt := testEvent()

	t.Run("typed payload", func(t *testing.T) {
		p, err := DecodePayload[CodeReceivedPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, "483920", p.Code)
	})

	t.Run("map payload", func(t *testing.T) {
		raw := map[string]interface{}{
			"code":       "111111",
			"sender":     "Bank",
			"content":    "c",
			"source_app": "com.bank.x",
		}
		p, err := DecodePayload[CodeReceivedPayloadV1](raw)
		require.NoError(t, err)
		assert.Equal(t, domain.CodeEvent{Code: "111111", Sender: "Bank", Content: "c", SourceApp: "com.bank.x"}, p.CodeEvent())
	})
}

func TestNewCodeReceivedEvent(t *testing.T) {
	evt := testEvent()
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, CodeReceived, evt.Type)
	assert.Equal(t, "test", evt.GetMetadataValue("source"))
	assert.Nil(t, evt.GetMetadataValue("missing"))
}
