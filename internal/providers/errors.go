package providers

import (
	"errors"
	"fmt"
)

var (
	ErrNoActiveProvider = errors.New("no active provider")
	ErrInvalidRole      = errors.New("invalid provider role")
	ErrTestUnsupported  = errors.New("connection test is not supported for this role")
)

// NoActiveProviderError is returned when no configuration of Role is active. It is a
// configuration problem; callers surface it rather than fall back to a default.
type NoActiveProviderError struct {
	Role string
}

func (e *NoActiveProviderError) Error() string {
	return fmt.Sprintf("no active provider configured for role %s", e.Role)
}

func (e *NoActiveProviderError) Is(target error) bool {
	return target == ErrNoActiveProvider
}
