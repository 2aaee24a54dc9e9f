package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"insight-mailer/internal/observability"
	"insight-mailer/internal/store"

	"github.com/resendlabs/resend-go"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported mail transport")
	ErrMissingAPIKey       = errors.New("mail transport api key is required")
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Transport submits messages to an outbound mail provider and returns the provider message id.
type Transport interface {
	Send(ctx context.Context, msg Message) (string, error)
	Sender() string
	Name() string
}

// New builds the transport described by a mail_transport provider config.
func New(cfg store.ProviderConfig, defaultSender string, logger *observability.Logger) (Transport, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	sender := defaultSender
	if cfg.SenderAddress != nil && *cfg.SenderAddress != "" {
		sender = *cfg.SenderAddress
	}

	switch strings.ToLower(cfg.ProviderName) {
	case "resend":
		return NewResendClient(cfg.APIKey, sender, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.ProviderName)
	}
}

type ResendClient struct {
	client *resend.Client
	sender string
	logger *observability.Logger
}

func NewResendClient(apiKey, sender string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		sender: sender,
		logger: logger,
	}, nil
}

func (c *ResendClient) Name() string {
	return "resend"
}

func (c *ResendClient) Sender() string {
	return c.sender
}

type sendResult struct {
	id  string
	err error
}

// Send submits msg. The resend SDK has no context support, so the call runs in its own
// goroutine and Send returns as soon as ctx is done; a late response is discarded.
func (c *ResendClient) Send(ctx context.Context, msg Message) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: msg.To},
		observability.Field{Key: "email_subject", Value: msg.Subject},
	)

	from := msg.From
	if from == "" {
		from = c.sender
	}
	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	done := make(chan sendResult, 1)
	go func() {
		res, err := c.client.Emails.Send(params)
		if err != nil {
			done <- sendResult{err: err}
			return
		}
		done <- sendResult{id: res.Id}
	}()

	select {
	case <-ctx.Done():
		c.logger.Warn(ctx, "email send timed out")
		return "", fmt.Errorf("failed to send email: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			c.logger.Error(ctx, "failed to send email", r.err)
			return "", fmt.Errorf("failed to send email: %w", r.err)
		}
		c.logger.Info(ctx, "email sent successfully")
		return r.id, nil
	}
}

var permanentRecipientMarkers = []string{
	"invalid `to`",
	"invalid to field",
	"invalid recipient",
	"invalid email address",
	"recipient address rejected",
	"mailbox unavailable",
	"user unknown",
	"no such user",
	"domain not found",
}

// IsPermanentRecipientError reports whether a transport error means the recipient can never be
// delivered to, as opposed to a transient or configuration failure.
func IsPermanentRecipientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range permanentRecipientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
