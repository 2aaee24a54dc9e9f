package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"insight-mailer/internal/observability"

	"github.com/hibiken/asynq"
)

// Trigger starts dispatch passes and generation runs outside the schedule
type Trigger interface {
	TriggerDispatch(ctx context.Context, requestedBy string) error
	TriggerGeneration(ctx context.Context, kinds []string, requestedBy string) error
}

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(opt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(opt),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// TriggerDispatch enqueues a dispatch pass. A pass already queued within the last minute
// absorbs the request.
func (c *Client) TriggerDispatch(ctx context.Context, requestedBy string) error {
	task, err := NewDispatchPassTask(DispatchPassPayload{RequestedBy: requestedBy, RequestedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to create dispatch task: %w", err)
	}
	return c.enqueue(ctx, task)
}

// TriggerGeneration enqueues a generation run for kinds
func (c *Client) TriggerGeneration(ctx context.Context, kinds []string, requestedBy string) error {
	task, err := NewGenerateTask(GeneratePayload{Kinds: kinds, RequestedBy: requestedBy, RequestedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to create generation task: %w", err)
	}
	return c.enqueue(ctx, task)
}

func (c *Client) enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			c.logger.Info(ctx, fmt.Sprintf("%s task already queued", task.Type()))
			return nil
		}
		c.logger.Error(ctx, fmt.Sprintf("failed to enqueue %s task", task.Type()), err)
		return fmt.Errorf("failed to enqueue %s task: %w", task.Type(), err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued %s task: %s (queue: %s)", task.Type(), info.ID, info.Queue))
	return nil
}
