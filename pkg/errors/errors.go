// Package errors provides typed errors for the application
package errors

import stderrors "errors"

// ErrorType represents the type of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeTransport
	ErrorTypeRemoteService
	ErrorTypeCleanup
	ErrorTypeInternal
)

// String returns a short label usable as a log field or metric label
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeTransport:
		return "transport"
	case ErrorTypeRemoteService:
		return "remote_service"
	case ErrorTypeCleanup:
		return "cleanup"
	default:
		return "internal"
	}
}

// baseError is the base implementation for all error types
type baseError struct {
	msg   string
	cause error
}

func (e *baseError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ValidationError represents malformed input that cannot be processed
type ValidationError struct {
	baseError
}

// NewValidationError creates a new ValidationError
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{baseError{msg: msg}}
}

// TransportError represents a chat platform download or send failure.
// It aborts processing of the current message.
type TransportError struct {
	baseError
}

// NewTransportError creates a new TransportError wrapping cause
func NewTransportError(msg string, cause error) *TransportError {
	return &TransportError{baseError{msg: msg, cause: cause}}
}

// RemoteServiceError represents a speech-to-text or completion failure.
// The pipeline downgrades it to an absent result.
type RemoteServiceError struct {
	baseError
}

// NewRemoteServiceError creates a new RemoteServiceError wrapping cause
func NewRemoteServiceError(msg string, cause error) *RemoteServiceError {
	return &RemoteServiceError{baseError{msg: msg, cause: cause}}
}

// CleanupError represents a failed temp file removal; only ever logged
type CleanupError struct {
	baseError
}

// NewCleanupError creates a new CleanupError wrapping cause
func NewCleanupError(msg string, cause error) *CleanupError {
	return &CleanupError{baseError{msg: msg, cause: cause}}
}

// InternalError represents an unexpected failure
type InternalError struct {
	baseError
}

// NewInternalError creates a new InternalError
func NewInternalError(msg string, cause error) *InternalError {
	return &InternalError{baseError{msg: msg, cause: cause}}
}

// IsValidationError checks if error is a ValidationError
func IsValidationError(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// IsTransportError checks if error is a TransportError
func IsTransportError(err error) bool {
	var target *TransportError
	return stderrors.As(err, &target)
}

// IsRemoteServiceError checks if error is a RemoteServiceError
func IsRemoteServiceError(err error) bool {
	var target *RemoteServiceError
	return stderrors.As(err, &target)
}

// IsCleanupError checks if error is a CleanupError
func IsCleanupError(err error) bool {
	var target *CleanupError
	return stderrors.As(err, &target)
}

// IsInternalError checks if error is an InternalError
func IsInternalError(err error) bool {
	var target *InternalError
	return stderrors.As(err, &target)
}

// TypeOf classifies err; unknown errors are internal
func TypeOf(err error) ErrorType {
	switch {
	case IsValidationError(err):
		return ErrorTypeValidation
	case IsTransportError(err):
		return ErrorTypeTransport
	case IsRemoteServiceError(err):
		return ErrorTypeRemoteService
	case IsCleanupError(err):
		return ErrorTypeCleanup
	case IsInternalError(err):
		return ErrorTypeInternal
	default:
		return ErrorTypeInternal
	}
}
