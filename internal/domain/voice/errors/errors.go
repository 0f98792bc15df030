// Package errors contains domain-specific errors for the voice domain
package errors

import (
	pkgerrors "github.com/Conte777/audio-tldr/pkg/errors"
)

// Domain errors for voice processing
var (
	ErrEmptyFileID     = pkgerrors.NewValidationError("media file id cannot be empty")
	ErrEmptyMessage    = pkgerrors.NewValidationError("message text cannot be empty")
	ErrEmptyTranscript = pkgerrors.NewRemoteServiceError("transcription returned no text", nil)
)
