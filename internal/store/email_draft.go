package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const emailDraftColumns = `id, user_id, recipient_email, kind, period_key, subject, body_html, insight_data, deep_link, status, retry_count, next_attempt_at, last_error, provider_message_id, approved_at, approved_by, queued_at, sent_at, created_at, updated_at`

// StatusConflictError reports a compare-and-swap miss and the status the row actually had.
type StatusConflictError struct {
	Current string
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("%s: current status %s", ErrStatusConflict.Error(), e.Current)
}

func (e *StatusConflictError) Is(target error) bool {
	return target == ErrStatusConflict
}

// CreateEmailDraftParams represents parameters for creating an email draft
type CreateEmailDraftParams struct {
	UserID         uuid.UUID
	RecipientEmail string
	Kind           string
	PeriodKey      string
	Subject        string
	BodyHTML       string
	InsightData    JSONB
	DeepLink       *string
}

const sqlLockDraftPeriod = `SELECT pg_advisory_xact_lock(hashtext($1))`

const sqlFindActiveEmailDraft = `
SELECT ` + emailDraftColumns + `
FROM email_drafts
WHERE user_id = $1 AND kind = $2 AND period_key = $3 AND status = ANY($4::text[])
ORDER BY created_at DESC
LIMIT 1
`

const sqlCreateEmailDraft = `
INSERT INTO email_drafts (user_id, recipient_email, kind, period_key, subject, body_html, insight_data, deep_link, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'draft')
RETURNING ` + emailDraftColumns

// CreateEmailDraft inserts a draft unless a non-terminal draft already exists for the
// same user, kind and period. On conflict the existing draft is returned together with
// ErrActiveDraftExists.
func (s *Store) CreateEmailDraft(ctx context.Context, params CreateEmailDraftParams) (EmailDraft, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var draft EmailDraft
	var existing EmailDraft
	lockKey := fmt.Sprintf("%s|%s|%s", params.UserID, params.Kind, params.PeriodKey)

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlLockDraftPeriod, lockKey); err != nil {
			return fmt.Errorf("failed to lock draft period: %w", err)
		}

		err := tx.GetContext(ctx, &existing, sqlFindActiveEmailDraft,
			params.UserID, params.Kind, params.PeriodKey, pq.Array(ActiveEmailDraftStatuses))
		if err == nil {
			return ErrActiveDraftExists
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to look up active draft: %w", err)
		}

		err = tx.GetContext(ctx, &draft, sqlCreateEmailDraft,
			params.UserID,
			params.RecipientEmail,
			params.Kind,
			params.PeriodKey,
			params.Subject,
			params.BodyHTML,
			params.InsightData,
			params.DeepLink)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrActiveDraftExists
			}
			return fmt.Errorf("failed to create email draft: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrActiveDraftExists) {
			if existing.ID == uuid.Nil {
				// the index caught a draft that became active after our lookup
				if found, findErr := s.FindActiveEmailDraft(ctx, params.UserID, params.Kind, params.PeriodKey); findErr == nil {
					existing = found
				}
			}
			return existing, ErrActiveDraftExists
		}
		return EmailDraft{}, err
	}
	return draft, nil
}

// FindActiveEmailDraft returns the non-terminal draft for a user, kind and period.
func (s *Store) FindActiveEmailDraft(ctx context.Context, userID uuid.UUID, kind, periodKey string) (EmailDraft, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var draft EmailDraft
	err := s.db.GetContext(ctx, &draft, sqlFindActiveEmailDraft, userID, kind, periodKey, pq.Array(ActiveEmailDraftStatuses))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailDraft{}, ErrNotFound
		}
		return EmailDraft{}, fmt.Errorf("failed to find active email draft: %w", err)
	}
	return draft, nil
}

const sqlGetEmailDraftByID = `
SELECT ` + emailDraftColumns + `
FROM email_drafts
WHERE id = $1
`

// GetEmailDraftByID retrieves an email draft by ID
func (s *Store) GetEmailDraftByID(ctx context.Context, id uuid.UUID) (EmailDraft, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var draft EmailDraft
	err := s.db.GetContext(ctx, &draft, sqlGetEmailDraftByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailDraft{}, ErrNotFound
		}
		return EmailDraft{}, fmt.Errorf("failed to get email draft: %w", err)
	}
	return draft, nil
}

// EmailDraftFilter narrows ListEmailDrafts. Zero values are ignored.
type EmailDraftFilter struct {
	Statuses []string
	UserID   *uuid.UUID
	Kind     string
	Limit    int
	Offset   int
}

// ListEmailDrafts lists drafts newest first
func (s *Store) ListEmailDrafts(ctx context.Context, filter EmailDraftFilter) ([]EmailDraft, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	q := sq.Select(emailDraftColumns).From("email_drafts").PlaceholderFormat(sq.Dollar)
	if len(filter.Statuses) > 0 {
		q = q.Where(sq.Eq{"status": filter.Statuses})
	}
	if filter.UserID != nil {
		q = q.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.Kind != "" {
		q = q.Where(sq.Eq{"kind": filter.Kind})
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	q = q.OrderBy("created_at DESC").Limit(uint64(limit))
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build draft list query: %w", err)
	}

	drafts := []EmailDraft{}
	if err := s.db.SelectContext(ctx, &drafts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list email drafts: %w", err)
	}
	return drafts, nil
}

// TransitionEmailDraftParams describes the side effects of a status transition
type TransitionEmailDraftParams struct {
	ToStatus          string
	RetryIncrement    int
	ResetRetryCount   bool
	NextAttemptAt     *time.Time
	LastError         *string
	ProviderMessageID *string
	ActorID           *string
}

const sqlTransitionEmailDraft = `
UPDATE email_drafts
SET status = $3::varchar,
    retry_count = CASE WHEN $5::boolean THEN 0 ELSE retry_count + $4::int END,
    next_attempt_at = $6::timestamptz,
    last_error = COALESCE($7::text, last_error),
    provider_message_id = COALESCE($8::varchar, provider_message_id),
    approved_by = CASE WHEN $3::varchar = 'approved' THEN COALESCE($9::varchar, approved_by) ELSE approved_by END,
    approved_at = CASE WHEN $3::varchar = 'approved' THEN NOW() ELSE approved_at END,
    queued_at = CASE WHEN $3::varchar = 'queued' THEN NOW() ELSE queued_at END,
    sent_at = CASE WHEN $3::varchar = 'sent' THEN NOW() ELSE sent_at END,
    updated_at = NOW()
WHERE id = $1 AND status = ANY($2::text[])
RETURNING ` + emailDraftColumns

const sqlGetEmailDraftStatus = `SELECT status FROM email_drafts WHERE id = $1`

// TransitionEmailDraft moves a draft to params.ToStatus only if its current status is one
// of from. A miss returns ErrNotFound or a *StatusConflictError. Reactivating a terminal draft
// while another draft holds its period returns ErrActiveDraftExists.
func (s *Store) TransitionEmailDraft(ctx context.Context, id uuid.UUID, from []string, params TransitionEmailDraftParams) (EmailDraft, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var draft EmailDraft
	err := s.db.GetContext(ctx, &draft, sqlTransitionEmailDraft,
		id,
		pq.Array(from),
		params.ToStatus,
		params.RetryIncrement,
		params.ResetRetryCount,
		params.NextAttemptAt,
		params.LastError,
		params.ProviderMessageID,
		params.ActorID)
	if err == nil {
		return draft, nil
	}
	if isUniqueViolation(err) {
		return EmailDraft{}, ErrActiveDraftExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return EmailDraft{}, fmt.Errorf("failed to transition email draft: %w", err)
	}

	var current string
	err = s.db.GetContext(ctx, &current, sqlGetEmailDraftStatus, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailDraft{}, ErrNotFound
		}
		return EmailDraft{}, fmt.Errorf("failed to get email draft status: %w", err)
	}
	return EmailDraft{}, &StatusConflictError{Current: current}
}

const sqlListDispatchReadyEmailDrafts = `
SELECT ` + emailDraftColumns + `
FROM email_drafts
WHERE status = 'approved'
   OR (status = 'retrying' AND (next_attempt_at IS NULL OR next_attempt_at <= $1))
ORDER BY created_at ASC
LIMIT $2
`

// ListDispatchReadyEmailDrafts returns approved drafts and due retries, oldest first
func (s *Store) ListDispatchReadyEmailDrafts(ctx context.Context, now time.Time, limit int) ([]EmailDraft, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	drafts := []EmailDraft{}
	if err := s.db.SelectContext(ctx, &drafts, sqlListDispatchReadyEmailDrafts, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list dispatch ready drafts: %w", err)
	}
	return drafts, nil
}

const sqlListStaleQueuedEmailDrafts = `
SELECT ` + emailDraftColumns + `
FROM email_drafts
WHERE status = 'queued' AND queued_at < $1
ORDER BY queued_at ASC
LIMIT $2
`

// ListStaleQueuedEmailDrafts returns claims older than before, typically left by a crashed worker
func (s *Store) ListStaleQueuedEmailDrafts(ctx context.Context, before time.Time, limit int) ([]EmailDraft, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	drafts := []EmailDraft{}
	if err := s.db.SelectContext(ctx, &drafts, sqlListStaleQueuedEmailDrafts, before, limit); err != nil {
		return nil, fmt.Errorf("failed to list stale queued drafts: %w", err)
	}
	return drafts, nil
}

const sqlRecordGenerationFailure = `
INSERT INTO insight_generation_failures (user_id, kind, error)
VALUES ($1, $2, $3)
`

// RecordGenerationFailure keeps a per-user generation failure for later inspection
func (s *Store) RecordGenerationFailure(ctx context.Context, userID uuid.UUID, kind string, message string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, sqlRecordGenerationFailure, userID, kind, message); err != nil {
		return fmt.Errorf("failed to record generation failure: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
