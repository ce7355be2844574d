package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// FieldError describes a single offending field of a request payload.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError enumerates every field that violated an input
// invariant. It maps to a 400 response and is never retried.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func newValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// UpstreamError carries a failure of an external collaborator (the
// generative model or the video search API). Surfaced verbatim as a 500;
// retrying is the caller's business.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// PersistenceError marks a durable write that failed after the work it
// was meant to record had already succeeded.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
