package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"insight-mailer/internal/clients/kafka"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/store"

	"github.com/google/uuid"
)

// DraftStore defines the database operations required by DraftProcessor
type DraftStore interface {
	CreateEmailDraft(ctx context.Context, params store.CreateEmailDraftParams) (store.EmailDraft, error)
	FindActiveEmailDraft(ctx context.Context, userID uuid.UUID, kind, periodKey string) (store.EmailDraft, error)
	GetEmailDraftByID(ctx context.Context, id uuid.UUID) (store.EmailDraft, error)
	ListEmailDrafts(ctx context.Context, filter store.EmailDraftFilter) ([]store.EmailDraft, error)
	TransitionEmailDraft(ctx context.Context, id uuid.UUID, from []string, params store.TransitionEmailDraftParams) (store.EmailDraft, error)
	ListDispatchReadyEmailDrafts(ctx context.Context, now time.Time, limit int) ([]store.EmailDraft, error)
	ListStaleQueuedEmailDrafts(ctx context.Context, before time.Time, limit int) ([]store.EmailDraft, error)
}

// EventPublisher receives draft lifecycle events
type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

type DraftProcessor struct {
	store  DraftStore
	events EventPublisher
	logger *observability.Logger
	policy RetryPolicy
	clock  func() time.Time
}

type Option func(*DraftProcessor)

// WithEvents publishes a lifecycle event after every successful transition.
func WithEvents(events EventPublisher) Option {
	return func(p *DraftProcessor) {
		p.events = events
	}
}

func WithClock(clock func() time.Time) Option {
	return func(p *DraftProcessor) {
		p.clock = clock
	}
}

func New(draftStore DraftStore, policy RetryPolicy, logger *observability.Logger, opts ...Option) *DraftProcessor {
	p := &DraftProcessor{
		store:  draftStore,
		logger: logger,
		policy: policy,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Policy returns the retry policy applied by RecordOutcome
func (p *DraftProcessor) Policy() RetryPolicy {
	return p.policy
}

// CreateDraftRequest represents a generated email awaiting review
type CreateDraftRequest struct {
	UserID         uuid.UUID
	RecipientEmail string
	Kind           string
	PeriodKey      string
	Subject        string
	BodyHTML       string
	InsightData    map[string]any
	DeepLink       *string
}

// Create stores a new draft. A non-terminal draft for the same user, kind and period yields a
// *DuplicateActiveDraftError carrying the existing id.
func (p *DraftProcessor) Create(ctx context.Context, req CreateDraftRequest) (store.EmailDraft, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: req.UserID.String()},
		observability.Field{Key: "kind", Value: req.Kind},
		observability.Field{Key: "period_key", Value: req.PeriodKey},
	)

	if req.UserID == uuid.Nil || strings.TrimSpace(req.RecipientEmail) == "" || req.Kind == "" || req.PeriodKey == "" {
		return store.EmailDraft{}, fmt.Errorf("%w: user, recipient, kind and period are required", ErrInvalidDraft)
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.BodyHTML) == "" {
		return store.EmailDraft{}, fmt.Errorf("%w: subject and body are required", ErrInvalidDraft)
	}

	draft, err := p.store.CreateEmailDraft(ctx, store.CreateEmailDraftParams{
		UserID:         req.UserID,
		RecipientEmail: req.RecipientEmail,
		Kind:           req.Kind,
		PeriodKey:      req.PeriodKey,
		Subject:        req.Subject,
		BodyHTML:       req.BodyHTML,
		InsightData:    store.JSONB(req.InsightData),
		DeepLink:       req.DeepLink,
	})
	if err != nil {
		if errors.Is(err, store.ErrActiveDraftExists) {
			p.logger.Debug(ctx, "active draft already exists")
			if draft.ID == uuid.Nil {
				draft = p.lookupActive(ctx, req.UserID, req.Kind, req.PeriodKey)
			}
			return store.EmailDraft{}, &DuplicateActiveDraftError{
				ExistingID: draft.ID,
				UserID:     req.UserID,
				Kind:       req.Kind,
				PeriodKey:  req.PeriodKey,
			}
		}
		p.logger.Error(ctx, "failed to create email draft", err)
		return store.EmailDraft{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "draft_id", Value: draft.ID.String()}), "email draft created")
	p.publish(ctx, draft, "")
	return draft, nil
}

// HasActiveDraft reports whether a non-terminal draft exists for the user, kind and period.
func (p *DraftProcessor) HasActiveDraft(ctx context.Context, userID uuid.UUID, kind, periodKey string) (bool, error) {
	_, err := p.store.FindActiveEmailDraft(ctx, userID, kind, periodKey)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// TransitionOptions carries the side effects of a transition
type TransitionOptions struct {
	RetryIncrement    int
	ResetRetryCount   bool
	NextAttemptAt     *time.Time
	LastError         *string
	ProviderMessageID *string
	ActorID           *string
}

// Transition moves a draft from one of from to to with a single conditional write.
func (p *DraftProcessor) Transition(ctx context.Context, id uuid.UUID, from []string, to string, opts TransitionOptions) (store.EmailDraft, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "draft_id", Value: id.String()},
		observability.Field{Key: "to_status", Value: to},
	)

	if len(from) == 0 {
		return store.EmailDraft{}, &InvalidTransitionError{ID: id, From: from, To: to}
	}
	for _, f := range from {
		if !CanTransition(f, to) {
			return store.EmailDraft{}, &InvalidTransitionError{ID: id, From: from, To: to}
		}
	}

	draft, err := p.store.TransitionEmailDraft(ctx, id, from, store.TransitionEmailDraftParams{
		ToStatus:          to,
		RetryIncrement:    opts.RetryIncrement,
		ResetRetryCount:   opts.ResetRetryCount,
		NextAttemptAt:     opts.NextAttemptAt,
		LastError:         opts.LastError,
		ProviderMessageID: opts.ProviderMessageID,
		ActorID:           opts.ActorID,
	})
	if err != nil {
		var conflict *store.StatusConflictError
		if errors.As(err, &conflict) {
			p.logger.Debug(observability.WithFields(ctx,
				observability.Field{Key: "current_status", Value: conflict.Current},
			), "draft transition lost")
			return store.EmailDraft{}, &InvalidTransitionError{ID: id, From: from, To: to, Current: conflict.Current}
		}
		if errors.Is(err, store.ErrActiveDraftExists) {
			return store.EmailDraft{}, p.activeConflict(ctx, id)
		}
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to transition email draft", err)
		}
		return store.EmailDraft{}, err
	}

	actor := ""
	if opts.ActorID != nil {
		actor = *opts.ActorID
	}
	p.publish(ctx, draft, actor)
	return draft, nil
}

// activeConflict describes a transition refused because another draft already holds the period.
func (p *DraftProcessor) activeConflict(ctx context.Context, id uuid.UUID) error {
	dup := &DuplicateActiveDraftError{}
	draft, err := p.store.GetEmailDraftByID(ctx, id)
	if err != nil {
		p.logger.InfoWithError(ctx, "failed to load draft blocked by an active draft", err)
		return dup
	}
	dup.UserID, dup.Kind, dup.PeriodKey = draft.UserID, draft.Kind, draft.PeriodKey
	dup.ExistingID = p.lookupActive(ctx, draft.UserID, draft.Kind, draft.PeriodKey).ID
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "existing_draft_id", Value: dup.ExistingID.String()},
	), "transition blocked by an active draft for the same period")
	return dup
}

// lookupActive returns the active draft for the period, or a zero draft when it cannot be found.
func (p *DraftProcessor) lookupActive(ctx context.Context, userID uuid.UUID, kind, periodKey string) store.EmailDraft {
	draft, err := p.store.FindActiveEmailDraft(ctx, userID, kind, periodKey)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.InfoWithError(ctx, "failed to look up active draft", err)
	}
	return draft
}

// Approve releases a draft for dispatch.
func (p *DraftProcessor) Approve(ctx context.Context, id uuid.UUID, adminID string) (store.EmailDraft, error) {
	return p.Transition(ctx, id, []string{store.EmailDraftStatusDraft}, store.EmailDraftStatusApproved,
		TransitionOptions{ActorID: &adminID})
}

// Reject discards a draft; the reason is kept on the record.
func (p *DraftProcessor) Reject(ctx context.Context, id uuid.UUID, adminID, reason string) (store.EmailDraft, error) {
	opts := TransitionOptions{ActorID: &adminID}
	if reason = strings.TrimSpace(reason); reason != "" {
		msg := "rejected: " + reason
		opts.LastError = &msg
	}
	return p.Transition(ctx, id, []string{store.EmailDraftStatusDraft}, store.EmailDraftStatusRejected, opts)
}

// Claim takes exclusive ownership of a dispatch-ready draft. Exactly one concurrent caller wins;
// the others get an *InvalidTransitionError.
func (p *DraftProcessor) Claim(ctx context.Context, id uuid.UUID) (store.EmailDraft, error) {
	return p.Transition(ctx, id,
		[]string{store.EmailDraftStatusApproved, store.EmailDraftStatusRetrying},
		store.EmailDraftStatusQueued, TransitionOptions{})
}

// Release returns a claimed draft to the retry queue without consuming an attempt.
func (p *DraftProcessor) Release(ctx context.Context, id uuid.UUID, reason string) (store.EmailDraft, error) {
	now := p.clock()
	return p.Transition(ctx, id, []string{store.EmailDraftStatusQueued}, store.EmailDraftStatusRetrying,
		TransitionOptions{NextAttemptAt: &now, LastError: &reason})
}

// Requeue gives a dead-lettered draft a fresh set of attempts.
func (p *DraftProcessor) Requeue(ctx context.Context, id uuid.UUID, adminID string) (store.EmailDraft, error) {
	return p.Transition(ctx, id, []string{store.EmailDraftStatusFailed}, store.EmailDraftStatusApproved,
		TransitionOptions{ActorID: &adminID, ResetRetryCount: true})
}

// ListDispatchReady returns approved drafts and due retries, oldest first.
func (p *DraftProcessor) ListDispatchReady(ctx context.Context, limit int) ([]store.EmailDraft, error) {
	drafts, err := p.store.ListDispatchReadyEmailDrafts(ctx, p.clock(), limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list dispatch ready drafts", err)
		return nil, err
	}
	return drafts, nil
}

// RecordOutcome applies a delivery result to a draft this process claimed.
func (p *DraftProcessor) RecordOutcome(ctx context.Context, draft store.EmailDraft, result DeliveryResult) (store.EmailDraft, error) {
	decision := p.policy.Decide(draft.RetryCount, result, p.clock())

	opts := TransitionOptions{
		RetryIncrement: decision.RetryIncrement,
		NextAttemptAt:  decision.NextAttemptAt,
	}
	if result.Err != nil {
		msg := result.Err.Error()
		opts.LastError = &msg
	}
	if result.MessageID != "" {
		opts.ProviderMessageID = &result.MessageID
	}

	updated, err := p.Transition(ctx, draft.ID, []string{store.EmailDraftStatusQueued}, decision.Status, opts)
	if err != nil {
		return store.EmailDraft{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "draft_id", Value: draft.ID.String()},
		observability.Field{Key: "retry_count", Value: updated.RetryCount},
	)
	switch updated.Status {
	case store.EmailDraftStatusSent:
		p.logger.Info(ctx, "email draft sent")
	case store.EmailDraftStatusRetrying:
		p.logger.InfoWithError(ctx, "email draft scheduled for retry", result.Err)
	case store.EmailDraftStatusFailed:
		p.logger.Warn(ctx, fmt.Sprintf("email draft dead-lettered: %v", result.Err))
	}
	return updated, nil
}

// RecoverStale moves drafts claimed more than olderThan ago back to retrying. A claim that old
// belongs to a worker that died mid-send, so no attempt is consumed.
func (p *DraftProcessor) RecoverStale(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	if olderThan <= 0 {
		return 0, nil
	}
	now := p.clock()
	stale, err := p.store.ListStaleQueuedEmailDrafts(ctx, now.Add(-olderThan), limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list stale queued drafts", err)
		return 0, err
	}

	recovered := 0
	reason := "claim expired before an outcome was recorded"
	for _, draft := range stale {
		_, err := p.Transition(ctx, draft.ID, []string{store.EmailDraftStatusQueued}, store.EmailDraftStatusRetrying,
			TransitionOptions{NextAttemptAt: &now, LastError: &reason})
		if err != nil {
			if errors.Is(err, ErrInvalidTransition) {
				continue
			}
			return recovered, err
		}
		recovered++
	}
	if recovered > 0 {
		p.logger.Warn(ctx, fmt.Sprintf("recovered %d stale claims", recovered))
	}
	return recovered, nil
}

func (p *DraftProcessor) Get(ctx context.Context, id uuid.UUID) (store.EmailDraft, error) {
	return p.store.GetEmailDraftByID(ctx, id)
}

// List returns drafts newest first
func (p *DraftProcessor) List(ctx context.Context, filter store.EmailDraftFilter) ([]store.EmailDraft, error) {
	for _, s := range filter.Statuses {
		if _, known := transitions[s]; !known && !IsTerminal(s) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidDraft, s)
		}
	}
	return p.store.ListEmailDrafts(ctx, filter)
}

func (p *DraftProcessor) publish(ctx context.Context, draft store.EmailDraft, actor string) {
	if p.events == nil {
		return
	}
	data := map[string]interface{}{
		"draft_id":    draft.ID.String(),
		"user_id":     draft.UserID.String(),
		"kind":        draft.Kind,
		"period_key":  draft.PeriodKey,
		"status":      draft.Status,
		"retry_count": draft.RetryCount,
	}
	if actor != "" {
		data["actor"] = actor
	}
	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      "draft." + draft.Status,
		Key:       draft.UserID.String(),
		Data:      data,
		Timestamp: p.clock().UTC().Format(time.RFC3339),
	}
	if err := p.events.PublishEvent(ctx, event); err != nil {
		p.logger.InfoWithError(ctx, "failed to publish draft event", err)
	}
}
