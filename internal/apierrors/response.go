package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"insight-mailer/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var logger = observability.NewLogger()

// ErrorResponse is the body of every failed admin API call
type ErrorResponse struct {
	Error   string           `json:"error"`
	Code    string           `json:"code,omitempty"`
	DraftID string           `json:"draft_id,omitempty"`
	Fields  []FieldViolation `json:"fields,omitempty"`
}

// RespondWithError maps err to its API error and writes it.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	write(c, MapError(err), err)
}

// RespondWithValidationError answers a failed ShouldBind call. Rule violations are listed per
// field; anything else means the body itself could not be decoded.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		write(c, ValidationError(validationErrs), err)
		return
	}
	write(c, BadRequest(CodeInvalidInput, decodeMessage(err)), err)
}

func decodeMessage(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "Request body is empty"
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "Request body is not valid JSON"
	}
	return "Request body could not be read"
}

// write logs the failure against the route and sends the sanitized body.
func write(c *gin.Context, apiErr *APIError, cause error) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "route", Value: c.FullPath()},
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
	)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "admin request failed", cause)
	} else {
		logger.InfoWithError(ctx, "admin request rejected", cause)
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{
		Error:   apiErr.Message,
		Code:    apiErr.Code,
		DraftID: apiErr.DraftID,
		Fields:  apiErr.Fields,
	})
}
