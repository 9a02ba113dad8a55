// Package validation turns request payload checks into field-level error
// maps. Validators are pure functions of the input; nothing here touches the
// store.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports failures under the JSON field names
// of the payload rather than the Go struct field names.
func New() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return validate
}

// Error carries field-level messages for a rejected payload.
type Error struct {
	Fields map[string]string
}

func (e Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, field+": "+message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// FieldErrors converts the field map into the shape problem responses expect.
func (e Error) FieldErrors() map[string]interface{} {
	out := make(map[string]interface{}, len(e.Fields))
	for field, message := range e.Fields {
		out[field] = message
	}
	return out
}

// FieldError builds an Error for a single field.
func FieldError(field, message string) Error {
	return Error{Fields: map[string]string{field: message}}
}

// Struct runs validator tags over input and converts any failures into an
// Error keyed by the JSON field names.
func Struct(validate *validator.Validate, input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Error{Fields: map[string]string{"input": err.Error()}}
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[jsonFieldName(fe)] = messageForTag(fe)
	}
	return Error{Fields: fields}
}

// ParseDate accepts RFC 3339 timestamps or plain calendar dates.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.New("invalid date format")
	}
	return parsed, nil
}

func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "input"
	}
	return name
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "exceeds maximum length of " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "ulid":
		return "must be a valid ULID"
	default:
		return "is invalid"
	}
}
