package dispatcher

//go:generate go run go.uber.org/mock/mockgen@latest -source=dispatcher.go -destination=mocks_test.go -package=dispatcher

import (
	"context"
	"fmt"
	"time"

	"insight-mailer/internal/clients/mail"
	"insight-mailer/internal/drafts/processor"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/store"

	"github.com/google/uuid"
)

const defaultSendTimeout = 30 * time.Second

type TransportSource interface {
	ActiveTransport(ctx context.Context) (mail.Transport, error)
}

// DraftLifecycle is the part of the draft processor the dispatcher drives
type DraftLifecycle interface {
	Claim(ctx context.Context, id uuid.UUID) (store.EmailDraft, error)
	Release(ctx context.Context, id uuid.UUID, reason string) (store.EmailDraft, error)
	RecordOutcome(ctx context.Context, draft store.EmailDraft, result processor.DeliveryResult) (store.EmailDraft, error)
}

type Dispatcher struct {
	transports  TransportSource
	drafts      DraftLifecycle
	logger      *observability.Logger
	sendTimeout time.Duration
}

func New(transports TransportSource, drafts DraftLifecycle, sendTimeout time.Duration, logger *observability.Logger) *Dispatcher {
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}
	return &Dispatcher{
		transports:  transports,
		drafts:      drafts,
		logger:      logger,
		sendTimeout: sendTimeout,
	}
}

// Transport resolves the active mail transport once, for callers that send a batch.
func (d *Dispatcher) Transport(ctx context.Context) (mail.Transport, error) {
	return d.transports.ActiveTransport(ctx)
}

// Send delivers a claimed draft through the active transport. Without an active transport
// the claim is released and the provider error returned.
func (d *Dispatcher) Send(ctx context.Context, draft store.EmailDraft) (store.EmailDraft, error) {
	if err := requireQueued(draft); err != nil {
		return store.EmailDraft{}, err
	}
	transport, err := d.transports.ActiveTransport(ctx)
	if err != nil {
		d.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "draft_id", Value: draft.ID.String()},
		), "no mail transport for claimed draft", err)
		if _, relErr := d.drafts.Release(context.WithoutCancel(ctx), draft.ID, err.Error()); relErr != nil {
			d.logger.Error(ctx, "failed to release draft", relErr)
		}
		return store.EmailDraft{}, err
	}
	return d.SendWith(ctx, transport, draft)
}

// SendWith delivers a claimed draft through transport and records the outcome. The send and
// the outcome write are not cancelled with ctx; they are bounded by the send timeout instead.
func (d *Dispatcher) SendWith(ctx context.Context, transport mail.Transport, draft store.EmailDraft) (store.EmailDraft, error) {
	if err := requireQueued(draft); err != nil {
		return store.EmailDraft{}, err
	}

	ctx = observability.WithFields(context.WithoutCancel(ctx),
		observability.Field{Key: "draft_id", Value: draft.ID.String()},
		observability.Field{Key: "user_id", Value: draft.UserID.String()},
		observability.Field{Key: "transport", Value: transport.Name()},
	)

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	messageID, sendErr := transport.Send(sendCtx, mail.Message{
		From:    transport.Sender(),
		To:      draft.RecipientEmail,
		Subject: draft.Subject,
		HTML:    draft.BodyHTML,
	})
	cancel()

	result := processor.DeliveryResult{MessageID: messageID, Err: sendErr}
	if sendErr != nil {
		result.Permanent = mail.IsPermanentRecipientError(sendErr)
	}

	updated, err := d.drafts.RecordOutcome(ctx, draft, result)
	if err != nil {
		d.logger.Error(ctx, "failed to record delivery outcome", err)
		if sendErr != nil {
			return store.EmailDraft{}, fmt.Errorf("failed to record outcome of %v: %w", sendErr, err)
		}
		return store.EmailDraft{}, fmt.Errorf("failed to record delivery of draft %s: %w", draft.ID, err)
	}
	if sendErr != nil {
		return updated, &DispatchError{DraftID: draft.ID, Permanent: result.Permanent, Err: sendErr}
	}
	return updated, nil
}

// SendNow claims a single approved or due draft and sends it immediately.
func (d *Dispatcher) SendNow(ctx context.Context, id uuid.UUID) (store.EmailDraft, error) {
	transport, err := d.transports.ActiveTransport(ctx)
	if err != nil {
		return store.EmailDraft{}, err
	}
	claimed, err := d.drafts.Claim(ctx, id)
	if err != nil {
		return store.EmailDraft{}, err
	}
	return d.SendWith(ctx, transport, claimed)
}

func requireQueued(draft store.EmailDraft) error {
	if draft.Status != store.EmailDraftStatusQueued {
		return &processor.InvalidTransitionError{
			ID:      draft.ID,
			From:    []string{store.EmailDraftStatusQueued},
			To:      store.EmailDraftStatusSent,
			Current: draft.Status,
		}
	}
	return nil
}
