package dispatcher

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrDispatch = errors.New("email dispatch failed")

// DispatchError is a failed send. The draft has already been moved to retrying or failed.
type DispatchError struct {
	DraftID   uuid.UUID
	Permanent bool
	Err       error
}

func (e *DispatchError) Error() string {
	kind := "transient"
	if e.Permanent {
		kind = "permanent"
	}
	return fmt.Sprintf("%s dispatch failure for draft %s: %v", kind, e.DraftID, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

func (e *DispatchError) Is(target error) bool {
	return target == ErrDispatch
}
