// Package deps contains interface definitions for the voice domain dependencies
package deps

import (
	"context"

	"github.com/Conte777/audio-tldr/internal/domain/voice/entities"
	"github.com/Conte777/audio-tldr/internal/infrastructure/tempfile"
)

// MessageSender sends replies to a chat
type MessageSender interface {
	// SendMessage sends a text message to the chat
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// MediaFetcher downloads a remote chat file
type MediaFetcher interface {
	// Fetch resolves fileID and streams its bytes into dst, overwriting it
	Fetch(ctx context.Context, fileID, dst string) error
}

// Transcriber converts a local audio file to text
type Transcriber interface {
	// Transcribe returns the transcript of the audio file at path
	Transcribe(ctx context.Context, path string) (string, error)
}

// Summarizer produces a short summary of a transcript
type Summarizer interface {
	// Summarize returns the completion content; it may be empty on success
	Summarize(ctx context.Context, transcript, displayName string) (string, error)
}

// TempStorage hands out scoped temp files
type TempStorage interface {
	// Acquire reserves a path for filename; the caller must Release it
	Acquire(filename string) *tempfile.File
}

// EventPublisher publishes processed-message events
type EventPublisher interface {
	// PublishProcessed publishes the outcome of one pipeline run
	PublishProcessed(ctx context.Context, outcome *entities.Outcome) error

	// Close closes the publisher
	Close() error
}

// MetricsRecorder records pipeline metrics
type MetricsRecorder interface {
	RecordMessage(kind, outcome string, duration float64)
	RecordRemoteFailure(service string)
	RecordTransportError(stage string)
}
