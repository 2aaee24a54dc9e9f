package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeNoActiveProvider  = "NO_ACTIVE_PROVIDER"
	CodeGenerationFailed  = "GENERATION_FAILED"
	CodeDraftExists       = "DRAFT_EXISTS"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeDispatchFailed    = "DISPATCH_FAILED"
	CodeInvalidRole       = "INVALID_ROLE"
	CodeUnsupported       = "UNSUPPORTED_PROVIDER"
	CodeUnknownKind       = "UNKNOWN_KIND"
	CodeDataUnavailable   = "DATA_UNAVAILABLE"
	CodeConnectionFailed  = "CONNECTION_FAILED"
)

// APIError is an error that carries its HTTP response. DraftID points a conflict at the
// draft that caused it; Fields lists request fields that failed validation.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	DraftID    string
	Fields     []FieldViolation
	internal   error
}

func (e *APIError) Error() string {
	if e.internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.internal
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// ServiceUnavailable keeps the cause for logging; only message reaches the client
func ServiceUnavailable(code, message string, internal error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, internal: internal}
}

func BadGateway(code, message string, internal error) *APIError {
	return &APIError{StatusCode: http.StatusBadGateway, Code: code, Message: message, internal: internal}
}

// InternalError is a sanitized 500 - never exposes internal details
func InternalError(internal error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		internal:   internal,
	}
}
