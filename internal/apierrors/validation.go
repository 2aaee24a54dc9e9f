package apierrors

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldViolation is one request field that failed binding. Field uses the JSON name, with an
// index for list items such as user_ids[2].
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

// ValidationError builds a 400 that lists every rejected field
func ValidationError(validationErrs validator.ValidationErrors) *APIError {
	fields := make([]FieldViolation, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}

	msg := "Request has invalid fields"
	if len(fields) == 1 {
		msg = fields[0].Message
	}
	apiErr := BadRequest(CodeInvalidInput, msg)
	apiErr.Fields = fields
	return apiErr
}

func violationMessage(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(strings.Fields(param), ", "))
	case "uuid":
		return field + " must be a user id in UUID format"
	case "email":
		return field + " must be an email address"
	case "url":
		return field + " must be an absolute URL"
	case "min", "max":
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}
		return fmt.Sprintf("%s must be %s %s%s", field, bound, param, unit(fe.Kind()))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, param)
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, param)
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}

// unit names what a min/max bound counts for a field of kind k.
func unit(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	}
	return ""
}
