package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors collects user facing messages per field. The empty key
// holds errors that are not bound to a single field.
type ValidationErrors map[string][]string

// Add appends a message for field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Has reports whether field has at least one message.
func (v ValidationErrors) Has(field string) bool {
	return len(v[field]) > 0
}

// Merge copies every message of other, prefixing its fields.
func (v ValidationErrors) Merge(prefix string, other ValidationErrors) {
	for field, messages := range other {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		v[key] = append(v[key], messages...)
	}
}

// OrNil returns nil when no message was collected, so callers can write
// `return errs.OrNil()`.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		name := field
		if name == "" {
			name = "__all__"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(v[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidationError builds a ValidationErrors with a single message.
func NewValidationError(field, message string) ValidationErrors {
	return ValidationErrors{field: {message}}
}

// ValidateStruct runs go-playground validation over entity and flattens the
// failures into a single error, the way every entity Validate method does.
func ValidateStruct(validate *validator.Validate, entity interface{}) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
