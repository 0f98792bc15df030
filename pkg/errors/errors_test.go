package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors_Classification(t *testing.T) {
	cause := stderrors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "validation", err: NewValidationError("empty file id"), want: ErrorTypeValidation},
		{name: "transport", err: NewTransportError("download media", cause), want: ErrorTypeTransport},
		{name: "remote service", err: NewRemoteServiceError("transcription", cause), want: ErrorTypeRemoteService},
		{name: "cleanup", err: NewCleanupError("remove temp file", cause), want: ErrorTypeCleanup},
		{name: "internal", err: NewInternalError("boom", nil), want: ErrorTypeInternal},
		{name: "plain error", err: cause, want: ErrorTypeInternal},
		{name: "wrapped transport", err: fmt.Errorf("handle: %w", NewTransportError("send reply", cause)), want: ErrorTypeTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.err))
		})
	}
}

func TestTypedErrors_MessageAndUnwrap(t *testing.T) {
	cause := stderrors.New("quota exceeded")
	err := NewRemoteServiceError("summary request failed", cause)

	assert.Equal(t, "summary request failed: quota exceeded", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "empty file id", NewValidationError("empty file id").Error())
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "transport", ErrorTypeTransport.String())
	assert.Equal(t, "remote_service", ErrorTypeRemoteService.String())
	assert.Equal(t, "internal", ErrorType(99).String())
}

func TestInternalError_WrapsCause(t *testing.T) {
	cause := stderrors.New("dial tcp 127.0.0.1:1: connection refused")
	err := fmt.Errorf("startup: %w", NewInternalError("failed to create Kafka producer", cause))

	assert.True(t, IsInternalError(err))
	assert.False(t, IsTransportError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
