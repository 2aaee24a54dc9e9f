package scheduler

import (
	"context"
	"time"

	"insight-mailer/internal/insights/generator"
)

type BatchGenerator interface {
	GenerateForAllUsers(ctx context.Context, kinds []string) (generator.Summary, error)
}

// GenerationJob runs batch insight generation for the configured kinds
type GenerationJob struct {
	generator BatchGenerator
	kinds     []string
	interval  time.Duration
}

func NewGenerationJob(g BatchGenerator, kinds []string, interval time.Duration) *GenerationJob {
	return &GenerationJob{generator: g, kinds: kinds, interval: interval}
}

func (j *GenerationJob) Name() string {
	return "insight_generation"
}

func (j *GenerationJob) Schedule() time.Duration {
	return j.interval
}

func (j *GenerationJob) Run(ctx context.Context) error {
	_, err := j.generator.GenerateForAllUsers(ctx, j.kinds)
	return err
}
