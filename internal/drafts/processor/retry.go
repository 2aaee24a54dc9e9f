package processor

import (
	"time"

	"insight-mailer/internal/store"
)

// RetryPolicy bounds redelivery of failed sends
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	// DeadLetterInvalidRecipients fails permanently undeliverable drafts without consuming attempts.
	DeadLetterInvalidRecipients bool
}

// DeliveryResult is what a transport reported for one send.
type DeliveryResult struct {
	MessageID string
	Err       error
	Permanent bool
}

// Decision is the transition a delivery result leads to.
type Decision struct {
	Status         string
	RetryIncrement int
	NextAttemptAt  *time.Time
}

// Decide maps a delivery result for a draft that has already failed retryCount times.
func (p RetryPolicy) Decide(retryCount int, result DeliveryResult, now time.Time) Decision {
	if result.Err == nil {
		return Decision{Status: store.EmailDraftStatusSent}
	}
	if result.Permanent && p.DeadLetterInvalidRecipients {
		return Decision{Status: store.EmailDraftStatusFailed}
	}

	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if retryCount+1 >= maxAttempts {
		return Decision{Status: store.EmailDraftStatusFailed, RetryIncrement: 1}
	}

	next := now.Add(p.Delay)
	return Decision{Status: store.EmailDraftStatusRetrying, RetryIncrement: 1, NextAttemptAt: &next}
}
