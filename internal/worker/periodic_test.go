package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodicRunsImmediatelyAndRepeats(t *testing.T) {
	var runs int32
	w := NewPeriodic("test", 10*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	})
	w.Start()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Shutdown(context.Background()))

	after := atomic.LoadInt32(&runs)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&runs), "no runs after shutdown")
}

func TestPeriodicKeepsRunningAfterError(t *testing.T) {
	var runs int32
	w := NewPeriodic("failing", 5*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return errors.New("poll failed")
	})
	w.Start()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestPeriodicShutdownCancelsRunningTask(t *testing.T) {
	entered := make(chan struct{})
	w := NewPeriodic("slow", time.Hour, func(ctx context.Context) error {
		close(entered)
		<-ctx.Done()
		return ctx.Err()
	})
	w.Start()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))
	assert.NoError(t, w.Shutdown(ctx), "second shutdown is a no-op")
}
