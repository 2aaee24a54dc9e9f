package scheduler

//go:generate go run go.uber.org/mock/mockgen@latest -source=dispatch_job.go -destination=mocks_test.go -package=scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"insight-mailer/internal/clients/mail"
	"insight-mailer/internal/drafts/processor"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/store"
	"insight-mailer/internal/workers"

	"github.com/google/uuid"
)

// DraftQueue is the part of the draft processor a dispatch pass uses
type DraftQueue interface {
	RecoverStale(ctx context.Context, olderThan time.Duration, limit int) (int, error)
	ListDispatchReady(ctx context.Context, limit int) ([]store.EmailDraft, error)
	Claim(ctx context.Context, id uuid.UUID) (store.EmailDraft, error)
	Release(ctx context.Context, id uuid.UUID, reason string) (store.EmailDraft, error)
}

type Sender interface {
	Transport(ctx context.Context) (mail.Transport, error)
	SendWith(ctx context.Context, transport mail.Transport, draft store.EmailDraft) (store.EmailDraft, error)
}

type DispatchConfig struct {
	Interval   time.Duration
	BatchSize  int
	Workers    int
	StaleAfter time.Duration
}

// PassStats counts what one dispatch pass did. Skipped drafts were claimed by a concurrent pass.
type PassStats struct {
	PassID    string        `json:"pass_id"`
	Recovered int           `json:"recovered"`
	Found     int           `json:"found"`
	Claimed   int           `json:"claimed"`
	Skipped   int           `json:"skipped"`
	Sent      int           `json:"sent"`
	Retrying  int           `json:"retrying"`
	Failed    int           `json:"failed"`
	Errors    int           `json:"errors"`
	Duration  time.Duration `json:"duration"`
}

// DispatchJob sends approved drafts and due retries
type DispatchJob struct {
	drafts DraftQueue
	sender Sender
	config DispatchConfig
	logger *observability.Logger
}

func NewDispatchJob(drafts DraftQueue, sender Sender, config DispatchConfig, logger *observability.Logger) *DispatchJob {
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.Workers <= 0 {
		config.Workers = 5
	}
	if config.Interval <= 0 {
		config.Interval = time.Hour
	}
	return &DispatchJob{
		drafts: drafts,
		sender: sender,
		config: config,
		logger: logger,
	}
}

func (j *DispatchJob) Name() string {
	return "email_dispatch"
}

func (j *DispatchJob) Schedule() time.Duration {
	return j.config.Interval
}

func (j *DispatchJob) Run(ctx context.Context) error {
	_, err := j.Pass(ctx)
	return err
}

// Pass runs one dispatch pass. Drafts claimed before ctx is cancelled are still sent.
func (j *DispatchJob) Pass(ctx context.Context) (stats PassStats, err error) {
	start := time.Now()
	stats.PassID = uuid.New().String()
	ctx = observability.WithFields(ctx, observability.Field{Key: "pass_id", Value: stats.PassID})
	defer func() {
		stats.Duration = time.Since(start)
		j.logStats(ctx, stats)
	}()

	recovered, err := j.drafts.RecoverStale(ctx, j.config.StaleAfter, j.config.BatchSize)
	if err != nil {
		return stats, err
	}
	stats.Recovered = recovered

	transport, err := j.sender.Transport(ctx)
	if err != nil {
		j.logger.Error(ctx, "dispatch pass aborted without a mail transport", err)
		return stats, err
	}

	ready, err := j.drafts.ListDispatchReady(ctx, j.config.BatchSize)
	if err != nil {
		return stats, err
	}
	stats.Found = len(ready)

	claimed := make([]store.EmailDraft, 0, len(ready))
	for _, draft := range ready {
		if ctx.Err() != nil {
			break
		}
		c, err := j.drafts.Claim(ctx, draft.ID)
		if err != nil {
			if errors.Is(err, processor.ErrInvalidTransition) || errors.Is(err, store.ErrNotFound) {
				stats.Skipped++
				continue
			}
			j.logger.Error(ctx, "failed to claim draft", err)
			stats.Errors++
			continue
		}
		claimed = append(claimed, c)
	}
	stats.Claimed = len(claimed)
	if len(claimed) == 0 {
		return stats, nil
	}

	var mu sync.Mutex
	handled := make(map[uuid.UUID]bool, len(claimed))
	proc := workers.ProcessorFunc[store.EmailDraft]{
		ProcessorName: "email_dispatch",
		Fn: func(ctx context.Context, draft store.EmailDraft) error {
			updated, err := j.sender.SendWith(ctx, transport, draft)
			mu.Lock()
			defer mu.Unlock()
			handled[draft.ID] = true
			switch updated.Status {
			case store.EmailDraftStatusSent:
				stats.Sent++
			case store.EmailDraftStatusRetrying:
				stats.Retrying++
			case store.EmailDraftStatusFailed:
				stats.Failed++
			default:
				stats.Errors++
				return err
			}
			return nil
		},
	}

	// claimed drafts are finished even during shutdown
	err = workers.Run(context.WithoutCancel(ctx), workers.PoolConfig[store.EmailDraft]{
		NumWorkers: j.config.Workers,
		QueueSize:  len(claimed),
	}, proc, j.logger, claimed)

	mu.Lock()
	defer mu.Unlock()
	for _, draft := range claimed {
		if handled[draft.ID] {
			continue
		}
		j.release(ctx, draft.ID)
		stats.Errors++
	}
	return stats, err
}

// release hands a claim the pass never got to back to the retry queue.
func (j *DispatchJob) release(ctx context.Context, id uuid.UUID) {
	ctx = observability.WithFields(context.WithoutCancel(ctx), observability.Field{Key: "draft_id", Value: id.String()})
	if _, err := j.drafts.Release(ctx, id, "dispatch pass ended before the draft was sent"); err != nil {
		j.logger.Error(ctx, "failed to release unsent draft", err)
		return
	}
	j.logger.Warn(ctx, "released unsent draft")
}

func (j *DispatchJob) logStats(ctx context.Context, stats PassStats) {
	j.logger.Metrics(ctx,
		observability.MetricField{Key: "recovered", Value: stats.Recovered},
		observability.MetricField{Key: "found", Value: stats.Found},
		observability.MetricField{Key: "claimed", Value: stats.Claimed},
		observability.MetricField{Key: "skipped", Value: stats.Skipped},
		observability.MetricField{Key: "sent", Value: stats.Sent},
		observability.MetricField{Key: "retrying", Value: stats.Retrying},
		observability.MetricField{Key: "failed", Value: stats.Failed},
		observability.MetricField{Key: "errors", Value: stats.Errors},
		observability.MetricField{Key: "duration_ms", Value: stats.Duration.Milliseconds()},
	)
}
