package apierrors

import (
	"errors"

	"insight-mailer/internal/clients/llm"
	"insight-mailer/internal/clients/mail"
	"insight-mailer/internal/dispatcher"
	"insight-mailer/internal/drafts/processor"
	"insight-mailer/internal/insights/composer"
	"insight-mailer/internal/insights/detector"
	"insight-mailer/internal/insights/generator"
	"insight-mailer/internal/providers"
	"insight-mailer/internal/store"

	"github.com/google/uuid"
)

// MapError converts domain/processor errors to APIErrors.
// If the error is already an APIError, it returns it as-is.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// configuration problems, the operator has to act
	case errors.Is(err, providers.ErrNoActiveProvider):
		msg := "No active provider is configured"
		var noProvider *providers.NoActiveProviderError
		if errors.As(err, &noProvider) {
			msg = "No active " + noProvider.Role + " provider is configured"
		}
		return ServiceUnavailable(CodeNoActiveProvider, msg, err)

	case errors.Is(err, composer.ErrComposition):
		return BadGateway(CodeGenerationFailed, "Content generation failed for this user", err)

	case errors.Is(err, detector.ErrDataUnavailable):
		return ServiceUnavailable(CodeDataUnavailable, "Listening data is temporarily unavailable", err)

	case errors.Is(err, processor.ErrDuplicateActiveDraft):
		apiErr := Conflict(CodeDraftExists, "An active draft already exists for this user and period")
		var dup *processor.DuplicateActiveDraftError
		if errors.As(err, &dup) && dup.ExistingID != uuid.Nil {
			apiErr.Message = "Draft " + dup.ExistingID.String() + " is already active for this user and period"
			apiErr.DraftID = dup.ExistingID.String()
		}
		return apiErr

	case errors.Is(err, processor.ErrInvalidTransition):
		msg := "The draft is not in a status that allows this action"
		var invalid *processor.InvalidTransitionError
		if errors.As(err, &invalid) && invalid.Current != "" {
			msg = "The draft is " + invalid.Current + " and cannot be moved to " + invalid.To
		}
		return Conflict(CodeInvalidTransition, msg)

	case errors.Is(err, processor.ErrInvalidDraft):
		return BadRequest(CodeInvalidInput, err.Error())

	case errors.Is(err, dispatcher.ErrDispatch):
		return BadGateway(CodeDispatchFailed, "The mail transport rejected the message", err)

	case errors.Is(err, providers.ErrInvalidRole):
		return BadRequest(CodeInvalidRole, "Role must be llm or mail_transport")

	case errors.Is(err, providers.ErrTestUnsupported):
		return BadRequest(CodeUnsupported, "Connection tests are only supported for llm providers")

	case errors.Is(err, llm.ErrUnsupportedProvider), errors.Is(err, mail.ErrUnsupportedProvider):
		return BadRequest(CodeUnsupported, "Unsupported provider")

	case errors.Is(err, llm.ErrMissingAPIKey), errors.Is(err, mail.ErrMissingAPIKey):
		return BadRequest(CodeInvalidInput, "The provider has no api key")

	case errors.Is(err, detector.ErrUnknownKind):
		return BadRequest(CodeUnknownKind, "Unknown insight kind")

	case errors.Is(err, generator.ErrEmptyPrompt):
		return BadRequest(CodeInvalidInput, "prompt is required")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
