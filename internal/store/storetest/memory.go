// Package storetest provides an in-memory store with the same draft semantics as the
// Postgres store, for tests that exercise concurrency or multi-step flows.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"insight-mailer/internal/store"

	"github.com/google/uuid"
)

// GenerationFailure is a recorded per-user generation failure
type GenerationFailure struct {
	UserID  uuid.UUID
	Kind    string
	Message string
}

// MemoryStore is safe for concurrent use. Transitions are compare-and-swap under one mutex.
type MemoryStore struct {
	mu       sync.Mutex
	drafts   map[uuid.UUID]store.EmailDraft
	users    []store.User
	failures []GenerationFailure
	now      func() time.Time
}

func New() *MemoryStore {
	return &MemoryStore{
		drafts: make(map[uuid.UUID]store.EmailDraft),
		now:    time.Now,
	}
}

// SetClock overrides the time used for created_at and the status timestamps.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// AddUser registers a user returned by ListActiveUsers when active.
func (m *MemoryStore) AddUser(user store.User) store.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Status == "" {
		user.Status = store.UserStatusActive
	}
	m.users = append(m.users, user)
	return user
}

// PutDraft stores a draft as-is, bypassing the dedup rule.
func (m *MemoryStore) PutDraft(draft store.EmailDraft) store.EmailDraft {
	m.mu.Lock()
	defer m.mu.Unlock()
	if draft.ID == uuid.Nil {
		draft.ID = uuid.New()
	}
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = m.now()
	}
	draft.UpdatedAt = draft.CreatedAt
	m.drafts[draft.ID] = draft
	return draft
}

func (m *MemoryStore) Failures() []GenerationFailure {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GenerationFailure, len(m.failures))
	copy(out, m.failures)
	return out
}

func (m *MemoryStore) CreateEmailDraft(ctx context.Context, params store.CreateEmailDraftParams) (store.EmailDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.findActive(params.UserID, params.Kind, params.PeriodKey); ok {
		return existing, store.ErrActiveDraftExists
	}

	now := m.now()
	draft := store.EmailDraft{
		ID:             uuid.New(),
		UserID:         params.UserID,
		RecipientEmail: params.RecipientEmail,
		Kind:           params.Kind,
		PeriodKey:      params.PeriodKey,
		Subject:        params.Subject,
		BodyHTML:       params.BodyHTML,
		InsightData:    params.InsightData,
		DeepLink:       params.DeepLink,
		Status:         store.EmailDraftStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.drafts[draft.ID] = draft
	return draft, nil
}

func (m *MemoryStore) FindActiveEmailDraft(ctx context.Context, userID uuid.UUID, kind, periodKey string) (store.EmailDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if draft, ok := m.findActive(userID, kind, periodKey); ok {
		return draft, nil
	}
	return store.EmailDraft{}, store.ErrNotFound
}

func (m *MemoryStore) findActive(userID uuid.UUID, kind, periodKey string) (store.EmailDraft, bool) {
	for _, d := range m.drafts {
		if d.UserID == userID && d.Kind == kind && d.PeriodKey == periodKey && contains(store.ActiveEmailDraftStatuses, d.Status) {
			return d, true
		}
	}
	return store.EmailDraft{}, false
}

func (m *MemoryStore) GetEmailDraftByID(ctx context.Context, id uuid.UUID) (store.EmailDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	draft, ok := m.drafts[id]
	if !ok {
		return store.EmailDraft{}, store.ErrNotFound
	}
	return draft, nil
}

func (m *MemoryStore) ListEmailDrafts(ctx context.Context, filter store.EmailDraftFilter) ([]store.EmailDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []store.EmailDraft{}
	for _, d := range m.drafts {
		if len(filter.Statuses) > 0 && !contains(filter.Statuses, d.Status) {
			continue
		}
		if filter.UserID != nil && d.UserID != *filter.UserID {
			continue
		}
		if filter.Kind != "" && d.Kind != filter.Kind {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []store.EmailDraft{}, nil
		}
		out = out[filter.Offset:]
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) TransitionEmailDraft(ctx context.Context, id uuid.UUID, from []string, params store.TransitionEmailDraftParams) (store.EmailDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft, ok := m.drafts[id]
	if !ok {
		return store.EmailDraft{}, store.ErrNotFound
	}
	if !contains(from, draft.Status) {
		return store.EmailDraft{}, &store.StatusConflictError{Current: draft.Status}
	}
	if !contains(store.ActiveEmailDraftStatuses, draft.Status) && contains(store.ActiveEmailDraftStatuses, params.ToStatus) {
		if other, ok := m.findActive(draft.UserID, draft.Kind, draft.PeriodKey); ok && other.ID != id {
			return store.EmailDraft{}, store.ErrActiveDraftExists
		}
	}

	now := m.now()
	draft.Status = params.ToStatus
	if params.ResetRetryCount {
		draft.RetryCount = 0
	} else {
		draft.RetryCount += params.RetryIncrement
	}
	draft.NextAttemptAt = params.NextAttemptAt
	if params.LastError != nil {
		draft.LastError = params.LastError
	}
	if params.ProviderMessageID != nil {
		draft.ProviderMessageID = params.ProviderMessageID
	}
	switch params.ToStatus {
	case store.EmailDraftStatusApproved:
		draft.ApprovedAt = &now
		if params.ActorID != nil {
			draft.ApprovedBy = params.ActorID
		}
	case store.EmailDraftStatusQueued:
		draft.QueuedAt = &now
	case store.EmailDraftStatusSent:
		draft.SentAt = &now
	}
	draft.UpdatedAt = now
	m.drafts[id] = draft
	return draft, nil
}

func (m *MemoryStore) ListDispatchReadyEmailDrafts(ctx context.Context, now time.Time, limit int) ([]store.EmailDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []store.EmailDraft{}
	for _, d := range m.drafts {
		switch {
		case d.Status == store.EmailDraftStatusApproved:
		case d.Status == store.EmailDraftStatusRetrying && (d.NextAttemptAt == nil || !d.NextAttemptAt.After(now)):
		default:
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) ListStaleQueuedEmailDrafts(ctx context.Context, before time.Time, limit int) ([]store.EmailDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []store.EmailDraft{}
	for _, d := range m.drafts {
		if d.Status == store.EmailDraftStatusQueued && d.QueuedAt != nil && d.QueuedAt.Before(before) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QueuedAt.Before(*out[j].QueuedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) RecordGenerationFailure(ctx context.Context, userID uuid.UUID, kind string, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, GenerationFailure{UserID: userID, Kind: kind, Message: message})
	return nil
}

func (m *MemoryStore) ListActiveUsers(ctx context.Context) ([]store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []store.User{}
	for _, u := range m.users {
		if u.Status == store.UserStatusActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *MemoryStore) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []store.User{}
	for _, u := range m.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
