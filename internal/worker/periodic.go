package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/logger"
)

// Task is the unit of work run by a Periodic worker.
type Task func(ctx context.Context) error

// Periodic runs a task every interval. Runs never overlap: the next run is
// scheduled only after the previous one returns.
type Periodic struct {
	name     string
	interval time.Duration
	task     Task

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
	wg     sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// NewPeriodic creates a worker; nothing runs until Start.
func NewPeriodic(name string, interval time.Duration, task Task) *Periodic {
	ctx, cancel := context.WithCancel(context.Background())
	return &Periodic{
		name:     name,
		interval: interval,
		task:     task,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the task once right away and then on every interval.
func (w *Periodic) Start() {
	logger.Info(LogMsgPeriodicStarted, "worker", w.name, "interval", w.interval)
	w.schedule(0)
}

func (w *Periodic) schedule(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.timer = time.AfterFunc(d, w.fire)
}

func (w *Periodic) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()

	if err := w.task(w.ctx); err != nil && w.ctx.Err() == nil {
		logger.FromContext(w.ctx).Error(LogMsgPeriodicRunFailed, "worker", w.name, "error", err)
	}
	w.wg.Done()

	w.schedule(w.interval)
}

// Shutdown cancels the pending run, cancels the context of a run in
// progress and waits for it to return.
func (w *Periodic) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	w.cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgPeriodicStopped, "worker", w.name)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgPeriodicStopTimeout, "worker", w.name)
		return ctx.Err()
	}
}
