package openai

import (
	"context"
	"fmt"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	"github.com/Conte777/audio-tldr/config"
	pkgerrors "github.com/Conte777/audio-tldr/pkg/errors"
)

const systemPromptTemplate = "Generiere ein TL;DR der folgenden Nachricht ohne 'TL;DR' prefix. " +
	"Die Nachricht is eine transkribierte Sprachnachricht von einer Person namens %s " +
	"welche in einem Chat geschickt wurde. Die Transkribtion kann fehlerhaft gewesen sein, " +
	"korrigiere mögliche Fehler eigenständig"

// Summarizer implements deps.Summarizer with a chat completion model
type Summarizer struct {
	model  model.BaseChatModel
	logger zerolog.Logger
}

// NewSummarizer creates a Summarizer backed by the OpenAI chat model
func NewSummarizer(ctx context.Context, cfg *config.OpenAIConfig, logger zerolog.Logger) (*Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, pkgerrors.NewValidationError("openai api key is required")
	}

	chatModel, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.SummaryModel,
		Timeout: cfg.RequestTimeout,
	})
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to create chat model", err)
	}

	return NewSummarizerWithModel(chatModel, logger), nil
}

// NewSummarizerWithModel creates a Summarizer on top of an existing model
func NewSummarizerWithModel(m model.BaseChatModel, logger zerolog.Logger) *Summarizer {
	return &Summarizer{
		model:  m,
		logger: logger,
	}
}

// Summarize asks the model for a short summary of transcript spoken by
// displayName. The content of the first choice is returned as is and may be
// empty.
func (s *Summarizer) Summarize(ctx context.Context, transcript, displayName string) (string, error) {
	msg, err := s.model.Generate(ctx, buildMessages(transcript, displayName))
	if err != nil {
		return "", pkgerrors.NewRemoteServiceError("summary request failed", err)
	}
	if msg == nil {
		return "", nil
	}

	s.logger.Debug().Int("summary_length", len(msg.Content)).Msg("Summary generated")
	return msg.Content, nil
}

func buildMessages(transcript, displayName string) []*schema.Message {
	return []*schema.Message{
		schema.SystemMessage(fmt.Sprintf(systemPromptTemplate, displayName)),
		schema.UserMessage(transcript),
	}
}
