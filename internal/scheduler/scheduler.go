package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"insight-mailer/internal/observability"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Window restricts a job to whole hours of the day in Location. A window with no hours never
// opens unless AllHours is set.
type Window struct {
	Hours    []int
	AllHours bool
	Location *time.Location
}

// HoursOrAlways returns a window over hours, or one open around the clock when hours is empty.
func HoursOrAlways(hours []int, loc *time.Location) Window {
	return Window{Hours: hours, AllHours: len(hours) == 0, Location: loc}
}

// Contains reports whether t falls in one of the window's hours.
func (w Window) Contains(t time.Time) bool {
	if w.AllHours {
		return true
	}
	loc := w.Location
	if loc == nil {
		loc = time.UTC
	}
	hour := t.In(loc).Hour()
	for _, h := range w.Hours {
		if h == hour {
			return true
		}
	}
	return false
}

type entry struct {
	job    Job
	window Window
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	entries []entry
	logger  *observability.Logger
	clock   func() time.Time
	wg      sync.WaitGroup
}

type Option func(*Scheduler)

func WithClock(clock func() time.Time) Option {
	return func(s *Scheduler) {
		s.clock = clock
	}
}

// New creates a new scheduler
func New(logger *observability.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		logger: logger,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job, window Window) {
	if !window.AllHours && len(window.Hours) == 0 {
		s.logger.Warn(context.Background(), fmt.Sprintf("Scheduled job %s has an empty window and will never run", job.Name()))
	}
	s.entries = append(s.entries, entry{job: job, window: window})
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (interval: %s, hours: %v)",
		job.Name(), job.Schedule(), window.Hours))
}

// Start runs every job on its own ticker and blocks until ctx is cancelled. It returns once the
// runs in progress have finished.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.entries)))

	for _, e := range s.entries {
		s.wg.Add(1)
		go s.runJob(ctx, e)
	}

	<-ctx.Done()
	s.logger.Info(ctx, "Scheduler stopping, waiting for running jobs")
	s.wg.Wait()
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// runJob runs a single job on its schedule
func (s *Scheduler) runJob(ctx context.Context, e entry) {
	defer s.wg.Done()
	job := e.job
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	s.logger.Info(jobCtx, fmt.Sprintf("Starting scheduled job: %s", job.Name()))

	// Run immediately on startup when inside the window
	s.tick(jobCtx, e)

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(jobCtx, fmt.Sprintf("Stopping scheduled job: %s", job.Name()))
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			s.tick(jobCtx, e)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, e entry) {
	now := s.clock()
	if !e.window.Contains(now) {
		s.logger.Debug(ctx, fmt.Sprintf("Skipping %s outside its check hours", e.job.Name()))
		return
	}
	_ = s.executeJob(ctx, e.job)
}

// executeJob executes a job and logs timing
func (s *Scheduler) executeJob(ctx context.Context, job Job) error {
	start := time.Now()
	s.logger.Info(ctx, fmt.Sprintf("Executing scheduled job: %s", job.Name()))

	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return err
	}

	s.logger.Info(ctx, fmt.Sprintf("Job %s completed successfully in %v", job.Name(), duration))
	return nil
}
