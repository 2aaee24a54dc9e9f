package jobs

import (
	"context"
	"fmt"
	"sync"

	"insight-mailer/internal/observability"
)

// LocalTrigger runs triggered work in background goroutines of the current process. It is used
// when redis is not configured. Overlapping requests for the same job are collapsed.
type LocalTrigger struct {
	dispatch   DispatchRunner
	generation GenerationRunner
	logger     *observability.Logger

	mu      sync.Mutex
	running map[string]bool
	wg      sync.WaitGroup
}

func NewLocalTrigger(dispatch DispatchRunner, generation GenerationRunner, logger *observability.Logger) *LocalTrigger {
	return &LocalTrigger{
		dispatch:   dispatch,
		generation: generation,
		logger:     logger,
		running:    make(map[string]bool),
	}
}

func (l *LocalTrigger) TriggerDispatch(ctx context.Context, requestedBy string) error {
	l.start(ctx, TypeDispatchPass, requestedBy, func(ctx context.Context) error {
		_, err := l.dispatch.Pass(ctx)
		return err
	})
	return nil
}

func (l *LocalTrigger) TriggerGeneration(ctx context.Context, kinds []string, requestedBy string) error {
	l.start(ctx, TypeInsightsGenerate, requestedBy, func(ctx context.Context) error {
		_, err := l.generation.GenerateForAllUsers(ctx, kinds)
		return err
	})
	return nil
}

// Wait blocks until all triggered work has finished
func (l *LocalTrigger) Wait() {
	l.wg.Wait()
}

func (l *LocalTrigger) start(ctx context.Context, name, requestedBy string, fn func(ctx context.Context) error) {
	l.mu.Lock()
	if l.running[name] {
		l.mu.Unlock()
		l.logger.Info(ctx, fmt.Sprintf("%s already running", name))
		return
	}
	l.running[name] = true
	l.mu.Unlock()

	// the request context ends with the response
	ctx = observability.WithFields(context.WithoutCancel(ctx), observability.Field{Key: "requested_by", Value: requestedBy})
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			l.mu.Lock()
			delete(l.running, name)
			l.mu.Unlock()
		}()
		if err := fn(ctx); err != nil {
			l.logger.Error(ctx, fmt.Sprintf("triggered %s failed", name), err)
		}
	}()
}
