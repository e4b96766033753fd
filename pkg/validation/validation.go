package validation

import (
	"fmt"
	"strings"
)

// FieldError describes a single failed constraint on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field-level validation failures for one record.
type Errors struct {
	fields []FieldError
}

func (e *Errors) Add(field, message string) {
	e.fields = append(e.fields, FieldError{Field: field, Message: message})
}

func (e *Errors) Addf(field, format string, args ...interface{}) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Required adds an error when value is empty.
func (e *Errors) Required(field, value string) {
	if value == "" {
		e.Add(field, "is required")
	}
}

// OneOf adds an error unless value is one of allowed. Empty values are
// left to Required.
func (e *Errors) OneOf(field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Addf(field, "must be one of %s", strings.Join(allowed, ", "))
}

// Fields returns the collected failures in the order they were added.
func (e *Errors) Fields() []FieldError {
	return e.fields
}

// Err returns the collection as an error, or nil when every check passed.
func (e *Errors) Err() error {
	if len(e.fields) == 0 {
		return nil
	}
	return e
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// New returns a single-field validation error.
func New(field, message string) *Errors {
	e := &Errors{}
	e.Add(field, message)
	return e
}
