package composer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrComposition      = errors.New("content composition failed")
	ErrMalformedOutput  = errors.New("model output is not a json object")
	ErrIncompleteOutput = errors.New("model output is missing subject or body_html")
)

// CompositionError is a per-user generation failure; batch callers skip the user and continue.
type CompositionError struct {
	UserID uuid.UUID
	Kind   string
	Err    error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("failed to compose %s content for user %s: %v", e.Kind, e.UserID, e.Err)
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}

func (e *CompositionError) Is(target error) bool {
	return target == ErrComposition
}
