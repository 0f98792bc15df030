// Package openai contains the speech-to-text and completion repositories
package openai

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	goopenai "github.com/sashabaranov/go-openai"

	"github.com/Conte777/audio-tldr/config"
	voiceerrors "github.com/Conte777/audio-tldr/internal/domain/voice/errors"
	pkgerrors "github.com/Conte777/audio-tldr/pkg/errors"
)

// Transcriber implements deps.Transcriber on top of the audio transcription API
type Transcriber struct {
	client   *goopenai.Client
	model    string
	language string
	logger   zerolog.Logger
}

// NewTranscriber creates a new Transcriber
func NewTranscriber(cfg *config.OpenAIConfig, logger zerolog.Logger) (*Transcriber, error) {
	if cfg.APIKey == "" {
		return nil, pkgerrors.NewValidationError("openai api key is required")
	}

	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout}

	return &Transcriber{
		client:   goopenai.NewClientWithConfig(clientCfg),
		model:    cfg.TranscriptionModel,
		language: cfg.Language,
		logger:   logger,
	}, nil
}

// Transcribe uploads the audio file at path and returns its text. An empty
// result is reported as an error.
func (t *Transcriber) Transcribe(ctx context.Context, path string) (string, error) {
	// A zero temperature is left out of the form; the API default is 0.
	resp, err := t.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:       t.model,
		FilePath:    path,
		Temperature: 0,
		Language:    t.language,
		Format:      goopenai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", pkgerrors.NewRemoteServiceError("transcription request failed", err)
	}

	if strings.TrimSpace(resp.Text) == "" {
		return "", voiceerrors.ErrEmptyTranscript
	}

	t.logger.Debug().
		Str("model", t.model).
		Int("text_length", len(resp.Text)).
		Msg("Audio transcribed")
	return resp.Text, nil
}
