package generator

//go:generate go run go.uber.org/mock/mockgen@latest -source=generator.go -destination=mocks_test.go -package=generator

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"insight-mailer/internal/drafts/processor"
	"insight-mailer/internal/insights/composer"
	"insight-mailer/internal/insights/detector"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/providers"
	"insight-mailer/internal/store"
	"insight-mailer/internal/workers"

	"github.com/google/uuid"
)

var ErrEmptyPrompt = errors.New("custom prompt is empty")

// UserStore defines the user and failure bookkeeping queries used by Generator
type UserStore interface {
	ListActiveUsers(ctx context.Context) ([]store.User, error)
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]store.User, error)
	RecordGenerationFailure(ctx context.Context, userID uuid.UUID, kind string, message string) error
}

type DetectorSource interface {
	Kinds() []string
	Detect(ctx context.Context, userID uuid.UUID, kind string) (*detector.Candidate, error)
}

type ContentComposer interface {
	Compose(ctx context.Context, candidate detector.Candidate, user store.User) (composer.Content, error)
	ComposeCustom(ctx context.Context, req composer.CustomPrompt, user store.User) (composer.Content, error)
}

type DraftCreator interface {
	Create(ctx context.Context, req processor.CreateDraftRequest) (store.EmailDraft, error)
	HasActiveDraft(ctx context.Context, userID uuid.UUID, kind, periodKey string) (bool, error)
}

type ProviderSource interface {
	GetActive(ctx context.Context, role string) (store.ProviderConfig, error)
}

// Config controls a generation run
type Config struct {
	Workers     int
	Period      string
	LinkBaseURL string
}

// Failure is one user's failed kind in a run
type Failure struct {
	UserID uuid.UUID `json:"user_id"`
	Kind   string    `json:"kind"`
	Error  string    `json:"error"`
}

// Summary counts what a run did. Skipped covers users without a detectable insight and
// periods that already had an active draft.
type Summary struct {
	RunID      string      `json:"run_id"`
	PeriodKey  string      `json:"period_key"`
	Users      int         `json:"users"`
	Detected   int         `json:"detected"`
	Created    int         `json:"created"`
	Skipped    int         `json:"skipped"`
	Duplicates int         `json:"duplicates"`
	Failed     int         `json:"failed"`
	DraftIDs   []uuid.UUID `json:"draft_ids,omitempty"`
	Failures   []Failure   `json:"failures,omitempty"`
}

type Generator struct {
	users     UserStore
	detectors DetectorSource
	composer  ContentComposer
	drafts    DraftCreator
	providers ProviderSource
	config    Config
	logger    *observability.Logger
	clock     func() time.Time
}

type Option func(*Generator)

func WithClock(clock func() time.Time) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

func New(users UserStore, detectors DetectorSource, contentComposer ContentComposer, drafts DraftCreator, providerSource ProviderSource, config Config, logger *observability.Logger, opts ...Option) *Generator {
	g := &Generator{
		users:     users,
		detectors: detectors,
		composer:  contentComposer,
		drafts:    drafts,
		providers: providerSource,
		config:    config,
		logger:    logger,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// run collects per-user results and aborts the whole run on a configuration error
type run struct {
	mu      sync.Mutex
	summary Summary
	abort   error
	last    error
	cancel  context.CancelFunc
}

func (r *run) setLast(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = err
}

func (r *run) add(fn func(s *Summary)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.summary)
}

func (r *run) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.abort == nil {
		r.abort = err
		r.cancel()
	}
}

func (r *run) aborted() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.abort
}

// GenerateForAllUsers detects and composes the requested kinds (all registered kinds when
// empty) for every active user. Per-user failures are recorded and the run continues; a
// missing LLM provider or an unreachable user store aborts it.
func (g *Generator) GenerateForAllUsers(ctx context.Context, kinds []string) (Summary, error) {
	kinds, err := g.resolveKinds(kinds)
	if err != nil {
		return Summary{}, err
	}

	now := g.clock()
	periodKey := processor.PeriodKey(now, g.config.Period)
	runID := uuid.New().String()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "run_id", Value: runID},
		observability.Field{Key: "period_key", Value: periodKey},
	)

	if _, err := g.providers.GetActive(ctx, store.ProviderRoleLLM); err != nil {
		g.logger.Error(ctx, "insight generation aborted", err)
		return Summary{}, err
	}

	users, err := g.users.ListActiveUsers(ctx)
	if err != nil {
		g.logger.Error(ctx, "failed to list users for insight generation", err)
		return Summary{}, err
	}

	start := time.Now()
	r, err := g.runPool(ctx, "insight_generation", users, func(ctx context.Context, r *run, user store.User) {
		for _, kind := range kinds {
			if ctx.Err() != nil {
				return
			}
			g.generateOne(ctx, r, user, kind, periodKey)
		}
	})
	r.summary.RunID = runID
	r.summary.PeriodKey = periodKey
	g.logSummary(ctx, "generation", r.summary, time.Since(start))
	return r.summary, err
}

func (g *Generator) generateOne(ctx context.Context, r *run, user store.User, kind, periodKey string) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: user.ID.String()},
		observability.Field{Key: "kind", Value: kind},
	)

	active, err := g.drafts.HasActiveDraft(ctx, user.ID, kind, periodKey)
	if err != nil {
		g.recordFailure(ctx, r, user.ID, kind, err)
		return
	}
	if active {
		r.add(func(s *Summary) { s.Skipped++ })
		return
	}

	candidate, err := g.detectors.Detect(ctx, user.ID, kind)
	if err != nil {
		g.recordFailure(ctx, r, user.ID, kind, err)
		return
	}
	if candidate == nil {
		r.add(func(s *Summary) { s.Skipped++ })
		return
	}
	r.add(func(s *Summary) { s.Detected++ })

	content, err := g.composer.Compose(ctx, *candidate, user)
	if err != nil {
		if errors.Is(err, providers.ErrNoActiveProvider) {
			r.fail(err)
			return
		}
		g.recordFailure(ctx, r, user.ID, kind, err)
		return
	}

	link := g.deepLink(user.ID, kind, candidate.Payload)
	g.createDraft(ctx, r, processor.CreateDraftRequest{
		UserID:         user.ID,
		RecipientEmail: user.Email,
		Kind:           kind,
		PeriodKey:      periodKey,
		Subject:        content.Subject,
		BodyHTML:       content.BodyHTML,
		InsightData:    candidate.Payload,
		DeepLink:       &link,
	})
}

// CustomRequest is an admin-authored prompt sent to a set of users (all active users when
// UserIDs is empty).
type CustomRequest struct {
	UserIDs []uuid.UUID
	Subject string
	Prompt  string
}

// GenerateCustom composes an admin prompt for each target user. When a single user is targeted
// the failure is returned as is so the caller can tell provider, composition and duplicate
// errors apart.
func (g *Generator) GenerateCustom(ctx context.Context, req CustomRequest) (Summary, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return Summary{}, ErrEmptyPrompt
	}

	now := g.clock()
	periodKey := processor.CustomPeriodKey(processor.PeriodKey(now, g.config.Period), req.Prompt)
	runID := uuid.New().String()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "run_id", Value: runID},
		observability.Field{Key: "period_key", Value: periodKey},
	)

	if _, err := g.providers.GetActive(ctx, store.ProviderRoleLLM); err != nil {
		return Summary{}, err
	}

	var users []store.User
	var err error
	if len(req.UserIDs) == 0 {
		users, err = g.users.ListActiveUsers(ctx)
	} else {
		users, err = g.users.GetUsersByIDs(ctx, req.UserIDs)
	}
	if err != nil {
		return Summary{}, err
	}
	if len(req.UserIDs) > 0 && len(users) == 0 {
		return Summary{}, fmt.Errorf("no users match the requested ids: %w", store.ErrNotFound)
	}

	start := time.Now()
	r, err := g.runPool(ctx, "custom_insight", users, func(ctx context.Context, r *run, user store.User) {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "user_id", Value: user.ID.String()},
			observability.Field{Key: "kind", Value: store.InsightKindCustom},
		)

		content, err := g.composer.ComposeCustom(ctx, composer.CustomPrompt{Subject: req.Subject, Prompt: req.Prompt}, user)
		if err != nil {
			if errors.Is(err, providers.ErrNoActiveProvider) {
				r.fail(err)
				return
			}
			r.setLast(err)
			g.recordFailure(ctx, r, user.ID, store.InsightKindCustom, err)
			return
		}
		r.add(func(s *Summary) { s.Detected++ })

		err = g.createDraft(ctx, r, processor.CreateDraftRequest{
			UserID:         user.ID,
			RecipientEmail: user.Email,
			Kind:           store.InsightKindCustom,
			PeriodKey:      periodKey,
			Subject:        content.Subject,
			BodyHTML:       content.BodyHTML,
			InsightData:    map[string]any{"prompt": req.Prompt, "subject": req.Subject},
		})
		if err != nil {
			r.setLast(err)
		}
	})
	r.summary.RunID = runID
	r.summary.PeriodKey = periodKey
	g.logSummary(ctx, "custom", r.summary, time.Since(start))
	if err != nil {
		return r.summary, err
	}
	if len(users) == 1 && r.last != nil {
		return r.summary, r.last
	}
	return r.summary, nil
}

func (g *Generator) createDraft(ctx context.Context, r *run, req processor.CreateDraftRequest) error {
	draft, err := g.drafts.Create(ctx, req)
	if err != nil {
		if errors.Is(err, processor.ErrDuplicateActiveDraft) {
			r.add(func(s *Summary) { s.Duplicates++ })
			return err
		}
		g.recordFailure(ctx, r, req.UserID, req.Kind, err)
		return err
	}
	r.add(func(s *Summary) {
		s.Created++
		s.DraftIDs = append(s.DraftIDs, draft.ID)
	})
	return nil
}

func (g *Generator) runPool(ctx context.Context, name string, users []store.User, fn func(ctx context.Context, r *run, user store.User)) (*run, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := &run{cancel: cancel}
	r.summary.Users = len(users)

	proc := workers.ProcessorFunc[store.User]{
		ProcessorName: name,
		Fn: func(ctx context.Context, user store.User) error {
			if runCtx.Err() != nil {
				return nil
			}
			fn(runCtx, r, user)
			return nil
		},
	}
	err := workers.Run(runCtx, workers.PoolConfig[store.User]{
		NumWorkers: g.config.Workers,
		QueueSize:  len(users) + 1,
	}, proc, g.logger, users)

	if abort := r.aborted(); abort != nil {
		g.logger.Error(ctx, "insight generation aborted", abort)
		return r, abort
	}
	return r, err
}

func (g *Generator) recordFailure(ctx context.Context, r *run, userID uuid.UUID, kind string, err error) {
	g.logger.InfoWithError(ctx, "insight generation failed for user", err)
	r.add(func(s *Summary) {
		s.Failed++
		s.Failures = append(s.Failures, Failure{UserID: userID, Kind: kind, Error: err.Error()})
	})
	if recErr := g.users.RecordGenerationFailure(ctx, userID, kind, err.Error()); recErr != nil {
		g.logger.Error(ctx, "failed to record generation failure", recErr)
	}
}

func (g *Generator) resolveKinds(kinds []string) ([]string, error) {
	known := g.detectors.Kinds()
	if len(kinds) == 0 {
		return known, nil
	}
	for _, k := range kinds {
		found := false
		for _, registered := range known {
			if k == registered {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", detector.ErrUnknownKind, k)
		}
	}
	return kinds, nil
}

// deepLink points the email at the insight page in the web app
func (g *Generator) deepLink(userID uuid.UUID, kind string, payload map[string]any) string {
	q := url.Values{}
	q.Set("user", userID.String())
	if song, ok := payload["song_title"].(string); ok && song != "" {
		q.Set("song", song)
	}
	if artist, ok := payload["artist"].(string); ok && artist != "" {
		q.Set("artist", artist)
	}
	return fmt.Sprintf("%s/insights/%s?%s", strings.TrimRight(g.config.LinkBaseURL, "/"), kind, q.Encode())
}

func (g *Generator) logSummary(ctx context.Context, mode string, s Summary, elapsed time.Duration) {
	g.logger.Metrics(ctx,
		observability.MetricField{Key: "generation_mode", Value: mode},
		observability.MetricField{Key: "users", Value: s.Users},
		observability.MetricField{Key: "detected", Value: s.Detected},
		observability.MetricField{Key: "created", Value: s.Created},
		observability.MetricField{Key: "skipped", Value: s.Skipped},
		observability.MetricField{Key: "duplicates", Value: s.Duplicates},
		observability.MetricField{Key: "failed", Value: s.Failed},
		observability.MetricField{Key: "duration_ms", Value: elapsed.Milliseconds()},
	)
}
