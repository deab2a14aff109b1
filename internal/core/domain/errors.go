// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrPermissionDenied is returned when a role-gated action is attempted by a
// non-admin session. This is a UX guard only; the server remains the
// authority on authorization.
var ErrPermissionDenied = errors.New("permission denied: admin role required")

// ValidationError reports a client-side precondition failure. It is raised
// before any network call and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// OperationFailedError reports a failed round trip to the API: a network
// error or a non-2xx response. Message carries the server's message when one
// was available, otherwise a generic fallback.
type OperationFailedError struct {
	Op      string
	Message string
	Err     error
}

func (e *OperationFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s failed: the operation could not be completed", e.Op)
}

func (e *OperationFailedError) Unwrap() error { return e.Err }

// NewOperationFailed wraps err as an OperationFailedError for op. When err is
// already an OperationFailedError it is returned unchanged so the original
// server message survives service-layer propagation.
func NewOperationFailed(op, message string, err error) error {
	var ofe *OperationFailedError
	if errors.As(err, &ofe) {
		return err
	}
	return &OperationFailedError{Op: op, Message: message, Err: err}
}

// MalformedResponseError reports a response payload that matched none of the
// known envelope shapes. The raw payload is retained for diagnosis; this is a
// development-time signal that the backend contract drifted.
type MalformedResponseError struct {
	Endpoint string
	Payload  any
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: unrecognized payload shape %#v", e.Endpoint, e.Payload)
}
