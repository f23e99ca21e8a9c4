package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/SmsAuto_Go/internal/logger"
	"github.com/osse101/SmsAuto_Go/internal/metrics"
)

// ErrPoolStopped is returned by Enqueue once Stop has been called.
var ErrPoolStopped = errors.New("worker pool stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a plain function to the Job interface.
type JobFunc func(ctx context.Context) error

// Process calls f(ctx).
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool runs submitted jobs on a fixed set of goroutines. Submission never
// blocks; a full queue drops the job.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	mu      sync.RWMutex
	started bool
	stopped bool

	// quit is closed before Stop takes the write lock, releasing any
	// Enqueue blocked on a full queue.
	quit     chan struct{}
	quitOnce sync.Once

	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers. Calling it twice is a no-op.
func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.stopped {
		return
	}
	p.started = true
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		metrics.WorkerQueueDepth.Set(float64(len(p.jobQueue)))
		p.run(job)
	}
}

func (p *Pool) run(job Job) {
	log := logger.FromContext(p.ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanicked, "panic", fmt.Sprint(r))
		}
	}()
	if err := job.Process(p.ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Submit queues job without blocking. It returns false when the queue is
// full or the pool has been stopped.
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		logger.Warn(LogMsgWorkerPoolStopped)
		return false
	}

	select {
	case p.jobQueue <- job:
		metrics.WorkerQueueDepth.Set(float64(len(p.jobQueue)))
		return true
	default:
		metrics.WorkerJobsDropped.Inc()
		logger.Warn(LogMsgWorkerQueueFull, "capacity", cap(p.jobQueue))
		return false
	}
}

// Enqueue queues job, waiting for room in the queue until ctx is done or
// the pool is stopped. Submit is never held up by a waiting Enqueue.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		metrics.WorkerQueueDepth.Set(float64(len(p.jobQueue)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop refuses new jobs, lets the workers drain what is already queued and
// waits for them. If ctx expires first the running jobs see their context
// cancelled and ctx.Err() is returned.
func (p *Pool) Stop(ctx context.Context) error {
	p.quitOnce.Do(func() { close(p.quit) })

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		logger.FromContext(ctx).Info(LogMsgWorkerPoolDrained)
		return nil
	case <-ctx.Done():
		p.cancel()
		logger.FromContext(ctx).Warn(LogMsgWorkerPoolStopTimeout)
		return ctx.Err()
	}
}
