package composer

//go:generate go run go.uber.org/mock/mockgen@latest -source=composer.go -destination=mocks_test.go -package=composer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"insight-mailer/internal/clients/llm"
	"insight-mailer/internal/insights/detector"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/store"

	"github.com/google/uuid"
)

// CompleterSource resolves the active language model.
type CompleterSource interface {
	ActiveCompleter(ctx context.Context) (llm.Completer, store.ProviderConfig, error)
}

// ComposerStore defines the database operations required by the Composer
type ComposerStore interface {
	GetActivePromptTemplate(ctx context.Context, kind string) (store.PromptTemplate, error)
	GetUserMetrics(ctx context.Context, userID uuid.UUID, now time.Time) (store.UserMetrics, error)
}

// Content is a composed email.
type Content struct {
	Subject  string
	BodyHTML string
	Warnings []string
}

// CustomPrompt is an admin-written prompt sent to selected users.
type CustomPrompt struct {
	Subject string
	Prompt  string
}

type Composer struct {
	providers CompleterSource
	store     ComposerStore
	logger    *observability.Logger
	timeout   time.Duration
	clock     func() time.Time
}

type Option func(*Composer)

// WithTimeout bounds each model call.
func WithTimeout(d time.Duration) Option {
	return func(c *Composer) {
		c.timeout = d
	}
}

func WithClock(clock func() time.Time) Option {
	return func(c *Composer) {
		c.clock = clock
	}
}

func New(providers CompleterSource, composerStore ComposerStore, logger *observability.Logger, opts ...Option) *Composer {
	c := &Composer{
		providers: providers,
		store:     composerStore,
		logger:    logger,
		timeout:   60 * time.Second,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose writes the email for a detected insight.
func (c *Composer) Compose(ctx context.Context, candidate detector.Candidate, user store.User) (Content, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: user.ID.String()},
		observability.Field{Key: "kind", Value: candidate.Kind},
	)

	template, err := c.template(ctx, candidate.Kind)
	if err != nil {
		return Content{}, err
	}

	vars := userVars(user)
	payloadVars(vars, candidate.Payload)
	prompt, unknown := Substitute(template, vars)

	data, err := json.Marshal(candidate.Payload)
	if err != nil {
		return Content{}, &CompositionError{UserID: user.ID, Kind: candidate.Kind, Err: err}
	}
	prompt = strings.ReplaceAll(prompt, insightDataPlaceholder, string(data))

	return c.generate(ctx, user.ID, candidate.Kind, prompt, vars, unknown)
}

// ComposeCustom substitutes the user's listening metrics into an admin prompt and writes the email.
// A subject on the request replaces the model's subject.
func (c *Composer) ComposeCustom(ctx context.Context, req CustomPrompt, user store.User) (Content, error) {
	kind := store.InsightKindCustom
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: user.ID.String()},
		observability.Field{Key: "kind", Value: kind},
	)

	metrics, err := c.store.GetUserMetrics(ctx, user.ID, c.clock())
	if err != nil {
		return Content{}, fmt.Errorf("failed to load metrics for user %s: %w", user.ID, err)
	}
	metrics.User = user

	vars := metricVars(metrics)
	body, unknown := Substitute(req.Prompt, vars)

	template, err := c.template(ctx, kind)
	if err != nil {
		return Content{}, err
	}
	prompt, more := Substitute(template, vars)
	unknown = append(unknown, more...)
	prompt = strings.ReplaceAll(prompt, insightDataPlaceholder, body)

	content, err := c.generate(ctx, user.ID, kind, prompt, vars, unknown)
	if err != nil {
		return Content{}, err
	}
	if subject := strings.TrimSpace(req.Subject); subject != "" {
		content.Subject, _ = Substitute(subject, vars)
	}
	return content, nil
}

func (c *Composer) template(ctx context.Context, kind string) (string, error) {
	t, err := c.store.GetActivePromptTemplate(ctx, kind)
	if err == nil && strings.TrimSpace(t.Content) != "" {
		return t.Content, nil
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("failed to load prompt template for %s: %w", kind, err)
	}
	return DefaultTemplate(kind), nil
}

// generate asks the active model for the email. Models often echo placeholders back, so the same
// vars are applied to its subject and body.
func (c *Composer) generate(ctx context.Context, userID uuid.UUID, kind, prompt string, vars map[string]string, unknown []string) (Content, error) {
	completer, cfg, err := c.providers.ActiveCompleter(ctx)
	if err != nil {
		return Content{}, err
	}
	defer completer.Close()

	ctx = observability.WithFields(ctx, observability.Field{Key: "provider_id", Value: cfg.ID.String()})

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := completer.Complete(callCtx, llm.CompletionRequest{
		SystemPrompt: systemPrompt,
		Prompt:       prompt,
		MaxTokens:    cfg.MaxTokens,
		Temperature:  cfg.Temperature,
		JSON:         true,
	})
	if err != nil {
		return Content{}, &CompositionError{UserID: userID, Kind: kind, Err: err}
	}

	out, err := parseOutput(raw)
	if err != nil {
		c.logger.InfoWithError(ctx, "model output rejected", err)
		return Content{}, &CompositionError{UserID: userID, Kind: kind, Err: err}
	}

	content := Content{}
	var leftSubject, leftBody []string
	content.Subject, leftSubject = Substitute(out.Subject, vars)
	content.BodyHTML, leftBody = Substitute(out.BodyHTML, escapeVars(vars))
	unknown = mergeNames(unknown, leftSubject, leftBody)
	for _, name := range unknown {
		content.Warnings = append(content.Warnings, fmt.Sprintf("unknown placeholder {%s}", name))
	}

	if !hasHTMLElements(content.BodyHTML) {
		html, err := markdownToHTML(content.BodyHTML)
		if err != nil {
			return Content{}, &CompositionError{UserID: userID, Kind: kind, Err: err}
		}
		content.BodyHTML = html
		content.Warnings = append(content.Warnings, "body had no html elements and was converted from markdown")
		c.logger.Warn(ctx, "model returned a body without html elements")
	}

	if len(content.Warnings) > 0 {
		c.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "warnings", Value: strings.Join(content.Warnings, "; ")},
		), "composed content with warnings")
	}
	return content, nil
}
