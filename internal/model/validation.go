package model

import "strings"

// FieldError describes a validation failure on a single input field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError collects field-level validation failures for one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Path + ": " + f.Message
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

// Add appends a field error and returns the receiver for chaining.
func (e *ValidationError) Add(path, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Path: path, Message: message})
	return e
}

// OrNil returns nil when no field errors were recorded, so callers can
// write `return validate(req).OrNil()`.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
