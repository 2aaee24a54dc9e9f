package workers

import (
	"context"
)

// Processor handles a single item submitted to a Pool.
// Implementations must be safe for concurrent use by all workers of the pool.
type Processor[T any] interface {
	// Process handles one item. The returned error is reported to OnResult
	// and logged; it does not stop the pool.
	Process(ctx context.Context, item T) error

	// Name returns the processor name for logging.
	Name() string
}

// WorkerPool defines the interface for managing a bounded pool of workers.
type WorkerPool[T any] interface {
	// Start launches the configured number of workers.
	Start(ctx context.Context) error

	// Submit queues an item for processing.
	// Blocks if the queue is full.
	Submit(ctx context.Context, item T) error

	// Drain stops accepting new items and waits for queued and in-flight items to complete.
	// Items still queued after DrainTimeout are dropped.
	Drain(ctx context.Context) error

	// Wait is Drain without a deadline.
	Wait(ctx context.Context) error

	// Stop stops all workers and waits for in-flight items to return.
	Stop()
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc[T any] struct {
	ProcessorName string
	Fn            func(ctx context.Context, item T) error
}

func (f ProcessorFunc[T]) Process(ctx context.Context, item T) error {
	return f.Fn(ctx, item)
}

func (f ProcessorFunc[T]) Name() string {
	return f.ProcessorName
}
