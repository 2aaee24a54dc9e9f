package processor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrDuplicateActiveDraft = errors.New("an active draft already exists for this user, kind and period")
	ErrInvalidTransition    = errors.New("invalid draft status transition")
	ErrInvalidDraft         = errors.New("invalid draft")
)

// DuplicateActiveDraftError is the expected outcome of a generation race or a re-run within a
// period. It is not logged as an error.
type DuplicateActiveDraftError struct {
	ExistingID uuid.UUID
	UserID     uuid.UUID
	Kind       string
	PeriodKey  string
}

func (e *DuplicateActiveDraftError) Error() string {
	return fmt.Sprintf("draft %s is already active for user %s, kind %s, period %s", e.ExistingID, e.UserID, e.Kind, e.PeriodKey)
}

func (e *DuplicateActiveDraftError) Is(target error) bool {
	return target == ErrDuplicateActiveDraft
}

// InvalidTransitionError reports a transition outside the state machine or a lost
// compare-and-swap. Current is empty when the pair was rejected before touching the store.
type InvalidTransitionError struct {
	ID      uuid.UUID
	From    []string
	To      string
	Current string
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("cannot move draft %s from %s to %s", e.ID, strings.Join(e.From, "|"), e.To)
	if e.Current != "" {
		msg += fmt.Sprintf(" (current status %s)", e.Current)
	}
	return msg
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
