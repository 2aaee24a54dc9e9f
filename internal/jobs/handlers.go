package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"insight-mailer/internal/insights/generator"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/providers"
	"insight-mailer/internal/scheduler"

	"github.com/hibiken/asynq"
)

type DispatchRunner interface {
	Pass(ctx context.Context) (scheduler.PassStats, error)
}

type GenerationRunner interface {
	GenerateForAllUsers(ctx context.Context, kinds []string) (generator.Summary, error)
}

// Handlers executes manually triggered tasks with the same components the scheduler uses
type Handlers struct {
	dispatch   DispatchRunner
	generation GenerationRunner
	logger     *observability.Logger
}

func NewHandlers(dispatch DispatchRunner, generation GenerationRunner, logger *observability.Logger) *Handlers {
	return &Handlers{
		dispatch:   dispatch,
		generation: generation,
		logger:     logger,
	}
}

// Register binds the task types to mux
func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeDispatchPass, h.ProcessDispatchPass)
	mux.HandleFunc(TypeInsightsGenerate, h.ProcessGeneration)
}

// ProcessDispatchPass processes a dispatch:pass task
func (h *Handlers) ProcessDispatchPass(ctx context.Context, task *asynq.Task) error {
	var payload DispatchPassPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		h.logger.Error(ctx, "failed to unmarshal dispatch payload", err)
		return fmt.Errorf("failed to unmarshal dispatch payload: %v: %w", err, asynq.SkipRetry)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "requested_by", Value: payload.RequestedBy})

	_, err := h.dispatch.Pass(ctx)
	return skipConfigErrors(err)
}

// ProcessGeneration processes an insights:generate task
func (h *Handlers) ProcessGeneration(ctx context.Context, task *asynq.Task) error {
	var payload GeneratePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		h.logger.Error(ctx, "failed to unmarshal generation payload", err)
		return fmt.Errorf("failed to unmarshal generation payload: %v: %w", err, asynq.SkipRetry)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "requested_by", Value: payload.RequestedBy})

	_, err := h.generation.GenerateForAllUsers(ctx, payload.Kinds)
	return skipConfigErrors(err)
}

// a missing provider will not fix itself on retry
func skipConfigErrors(err error) error {
	if err != nil && errors.Is(err, providers.ErrNoActiveProvider) {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	return err
}
