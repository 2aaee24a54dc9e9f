package processor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"insight-mailer/internal/store"
)

var transitions = map[string][]string{
	store.EmailDraftStatusDraft:    {store.EmailDraftStatusApproved, store.EmailDraftStatusRejected},
	store.EmailDraftStatusApproved: {store.EmailDraftStatusQueued},
	store.EmailDraftStatusRetrying: {store.EmailDraftStatusQueued},
	store.EmailDraftStatusQueued:   {store.EmailDraftStatusSent, store.EmailDraftStatusRetrying, store.EmailDraftStatusFailed},
	// manual dead-letter handling
	store.EmailDraftStatusFailed: {store.EmailDraftStatusApproved},
}

// CanTransition reports whether from -> to is an edge of the draft state machine.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no automatic transition leaves status.
func IsTerminal(status string) bool {
	switch status {
	case store.EmailDraftStatusRejected, store.EmailDraftStatusSent, store.EmailDraftStatusFailed:
		return true
	}
	return false
}

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// PeriodKey names the generation period containing t. Weekly keys use ISO weeks.
func PeriodKey(t time.Time, period string) string {
	t = t.UTC()
	switch period {
	case PeriodDaily:
		return t.Format("2006-01-02")
	case PeriodMonthly:
		return t.Format("2006-01")
	default:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	}
}

// CustomPeriodKey scopes a custom prompt to its period so distinct prompts do not collide.
func CustomPeriodKey(base, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return base + "-" + hex.EncodeToString(sum[:])[:8]
}
