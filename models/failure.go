// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package models

import (
	"errors"
	"fmt"
)

// FailureKind classifies a service-layer failure so the transport layer can
// map it to a wire-level status without inspecting error text.
type FailureKind string

const (
	// FailureValidation means caller-supplied data violates a schema.
	// The caller must correct the input; retrying unchanged will not help.
	FailureValidation FailureKind = "validation"

	// FailureNotFound means no matching route or resource exists.
	FailureNotFound FailureKind = "not_found"

	// FailureUpstream means an external collaborator failed or timed out.
	// The request may succeed if retried.
	FailureUpstream FailureKind = "upstream"

	// FailureInternal means a contract was violated inside the process.
	// Surfaced to callers as an opaque message only.
	FailureInternal FailureKind = "internal"
)

// Violation reason codes reported by the schema layer. Each code is stable
// and machine-readable; clients key on it rather than the message text.
const (
	ReasonMissing         = "missing"
	ReasonEmptyValue      = "empty-value"
	ReasonWrongType       = "wrong-type"
	ReasonOutOfRange      = "out-of-range"
	ReasonPatternMismatch = "pattern-mismatch"
)

// FieldViolation describes one schema violation of one field.
type FieldViolation struct {
	// Field is the JSON name of the violating field (dotted for nesting).
	Field string `json:"field"`

	// Reason is one of the Reason* codes above.
	Reason string `json:"reason"`

	// Message is a human-readable description of the violation.
	Message string `json:"message"`
}

// Failure is the typed outcome every service operation uses to report an
// error. It implements the error interface so it travels through normal
// error returns, and it carries enough classification for the HTTP layer to
// translate it deterministically. A Failure never crosses the HTTP boundary
// untranslated.
type Failure struct {
	// Kind classifies the failure (validation, not_found, upstream, internal).
	Kind FailureKind

	// Message is safe to show to the caller. For internal failures it is
	// always a generic text; the real cause stays in logs.
	Message string

	// Details lists per-field schema violations for validation failures.
	Details []FieldViolation

	// Retryable reports whether the caller may retry the request unchanged.
	Retryable bool

	// cause is the wrapped underlying error, if any. Never serialized.
	cause error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.cause)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As chains.
func (f *Failure) Unwrap() error {
	return f.cause
}

// NewValidationFailure builds a validation Failure listing every violating
// field.
func NewValidationFailure(violations ...FieldViolation) *Failure {
	return &Failure{
		Kind:    FailureValidation,
		Message: "validation failed",
		Details: violations,
	}
}

// NewNotFoundFailure builds a not-found Failure with the given caller-safe
// message.
func NewNotFoundFailure(message string) *Failure {
	return &Failure{
		Kind:    FailureNotFound,
		Message: message,
	}
}

// NewUpstreamFailure builds a retryable upstream-dependency Failure wrapping
// the collaborator error.
func NewUpstreamFailure(message string, cause error) *Failure {
	return &Failure{
		Kind:      FailureUpstream,
		Message:   message,
		Retryable: true,
		cause:     cause,
	}
}

// NewInternalFailure wraps an unexpected fault. The caller-visible message is
// always generic; cause is preserved for logging only.
func NewInternalFailure(cause error) *Failure {
	return &Failure{
		Kind:    FailureInternal,
		Message: "internal error",
		cause:   cause,
	}
}

// AsFailure extracts a *Failure from an error chain. When err is not a
// Failure it is wrapped as an internal one, so the transport layer always
// has a classified value to translate.
func AsFailure(err error) *Failure {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure
	}
	return NewInternalFailure(err)
}

// ErrorResponse is the wire shape of every error response, independent of
// endpoint. No stack traces or internal identifiers ever appear here.
type ErrorResponse struct {
	Kind      FailureKind      `json:"kind"`
	Message   string           `json:"message"`
	Details   []FieldViolation `json:"details"`
	Retryable bool             `json:"retryable"`
}

// Response converts the failure to its wire shape. Details is never nil so
// clients can iterate without a null check.
func (f *Failure) Response() ErrorResponse {
	details := f.Details
	if details == nil {
		details = []FieldViolation{}
	}
	return ErrorResponse{
		Kind:      f.Kind,
		Message:   f.Message,
		Details:   details,
		Retryable: f.Retryable,
	}
}
