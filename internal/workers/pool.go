package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"insight-mailer/internal/observability"
)

var (
	ErrPoolNotStarted   = errors.New("worker pool not started")
	ErrPoolShuttingDown = errors.New("worker pool is shutting down")
	ErrDrainTimeout     = errors.New("drain timeout exceeded")
)

// Result is the outcome of processing one item.
type Result[T any] struct {
	Item  T
	Error error
}

// PoolConfig holds configuration for the worker pool.
type PoolConfig[T any] struct {
	// NumWorkers is the number of concurrent workers to run.
	NumWorkers int

	// QueueSize is the size of the item queue buffer.
	// If the queue is full, Submit() will block.
	QueueSize int

	// DrainTimeout is the maximum time to wait for in-flight items
	// to complete during graceful shutdown.
	DrainTimeout time.Duration

	// OnResult is called after each item is processed (optional).
	// It may be called concurrently from several workers.
	OnResult func(result Result[T])
}

const (
	defaultNumWorkers   = 5
	defaultQueueSize    = 100
	defaultDrainTimeout = 5 * time.Minute
)

var _ WorkerPool[struct{}] = (*Pool[struct{}])(nil)

// Pool implements WorkerPool over a buffered channel.
type Pool[T any] struct {
	config    PoolConfig[T]
	processor Processor[T]
	logger    *observability.Logger

	items chan T
	quit  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup

	// mu is held for reading while an item is being queued so that the
	// queue is never closed under a pending send.
	mu       sync.RWMutex
	started  bool
	draining bool
	stopped  bool
	cancelFn context.CancelFunc
}

// NewPool creates a new worker pool for processor.
func NewPool[T any](config PoolConfig[T], processor Processor[T], logger *observability.Logger) *Pool[T] {
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaultNumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaultQueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = defaultDrainTimeout
	}

	return &Pool[T]{
		config:    config,
		processor: processor,
		logger:    logger,
		items:     make(chan T, config.QueueSize),
		quit:      make(chan struct{}),
	}
}

// Start launches the workers.
func (p *Pool[T]) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("worker pool already started")
	}
	if p.stopped {
		return fmt.Errorf("worker pool already stopped")
	}

	workerCtx, cancel := context.WithCancel(ctx)
	p.cancelFn = cancel
	p.started = true

	for i := 0; i < p.config.NumWorkers; i++ {
		p.wg.Add(1)
		go p.worker(workerCtx, i)
	}

	p.logger.Debug(ctx, fmt.Sprintf("Started %d workers for %s processor",
		p.config.NumWorkers, p.processor.Name()))

	return nil
}

// Submit adds an item to the queue.
func (p *Pool[T]) Submit(ctx context.Context, item T) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.started {
		return ErrPoolNotStarted
	}
	if p.draining || p.stopped {
		return ErrPoolShuttingDown
	}

	select {
	case p.items <- item:
		return nil
	case <-p.quit:
		return ErrPoolShuttingDown
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain stops accepting new items and waits for the queue to empty.
// Items still queued when DrainTimeout expires are dropped.
func (p *Pool[T]) Drain(ctx context.Context) error {
	drainCtx, cancel := context.WithTimeout(ctx, p.config.DrainTimeout)
	defer cancel()
	return p.drain(ctx, drainCtx.Done())
}

// Wait stops accepting new items and blocks until every queued item has been processed.
// It returns ctx.Err() if ctx ended first.
func (p *Pool[T]) Wait(ctx context.Context) error {
	return p.drain(ctx, nil)
}

func (p *Pool[T]) drain(ctx context.Context, deadline <-chan struct{}) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return ErrPoolNotStarted
	}
	if p.draining || p.stopped {
		p.mu.Unlock()
		return fmt.Errorf("worker pool already draining")
	}
	p.draining = true
	close(p.items)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.stopWorkers()
		if deadline == nil {
			// workers also exit on ctx, leaving queued items behind
			return ctx.Err()
		}
		return nil
	case <-deadline:
		p.logger.Warn(ctx, fmt.Sprintf("Drain timeout exceeded for %s processor, forcing shutdown",
			p.processor.Name()))
		p.Stop()
		return ErrDrainTimeout
	}
}

// Stop stops all workers and waits for in-flight items to return. Queued items are dropped.
func (p *Pool[T]) Stop() {
	p.once.Do(func() { close(p.quit) })

	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		if p.cancelFn != nil {
			p.cancelFn()
		}
		if !p.draining {
			close(p.items)
		}
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool[T]) stopWorkers() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	if p.cancelFn != nil {
		p.cancelFn()
	}
}

func (p *Pool[T]) worker(ctx context.Context, workerID int) {
	defer p.wg.Done()

	workerCtx := observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: workerID},
		observability.Field{Key: "processor", Value: p.processor.Name()},
	)

	for {
		select {
		case <-ctx.Done():
			return

		case <-p.quit:
			return

		case item, ok := <-p.items:
			if !ok {
				return
			}
			// a stopped pool must not start queued items
			select {
			case <-p.quit:
				return
			default:
			}

			err := p.processor.Process(workerCtx, item)
			if err != nil {
				p.logger.Error(workerCtx, fmt.Sprintf("Worker %d failed to process item", workerID), err)
			}

			if p.config.OnResult != nil {
				p.config.OnResult(Result[T]{Item: item, Error: err})
			}
		}
	}
}

// Run processes items with a bounded pool and blocks until all of them are done.
// DrainTimeout does not apply; cancelling ctx is the only way to cut a run short.
func Run[T any](ctx context.Context, config PoolConfig[T], processor Processor[T], logger *observability.Logger, items []T) error {
	pool := NewPool(config, processor, logger)
	if err := pool.Start(ctx); err != nil {
		return err
	}
	for _, item := range items {
		if err := pool.Submit(ctx, item); err != nil {
			pool.Stop()
			return fmt.Errorf("failed to submit %s item: %w", processor.Name(), err)
		}
	}
	return pool.Wait(ctx)
}
