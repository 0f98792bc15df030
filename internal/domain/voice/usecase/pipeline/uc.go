// Package pipeline contains the per-message voice processing pipeline
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Conte777/audio-tldr/internal/domain/voice/consts"
	"github.com/Conte777/audio-tldr/internal/domain/voice/deps"
	"github.com/Conte777/audio-tldr/internal/domain/voice/entities"
	voiceerrors "github.com/Conte777/audio-tldr/internal/domain/voice/errors"
	"github.com/Conte777/audio-tldr/internal/domain/voice/identity"
	pkgerrors "github.com/Conte777/audio-tldr/pkg/errors"
)

// UseCase runs download, transcribe, summarize and reply for one message at
// a time. It holds no per-message state and is safe for concurrent use.
type UseCase struct {
	storage     deps.TempStorage
	fetcher     deps.MediaFetcher
	transcriber deps.Transcriber
	summarizer  deps.Summarizer
	sender      deps.MessageSender
	publisher   deps.EventPublisher
	metrics     deps.MetricsRecorder
	newID       func() string
	logger      zerolog.Logger
}

// Params groups the UseCase collaborators
type Params struct {
	Storage     deps.TempStorage
	Fetcher     deps.MediaFetcher
	Transcriber deps.Transcriber
	Summarizer  deps.Summarizer
	Sender      deps.MessageSender
	Publisher   deps.EventPublisher
	Metrics     deps.MetricsRecorder
	Logger      zerolog.Logger
}

// NewUseCase creates a new UseCase instance
func NewUseCase(p Params) *UseCase {
	return &UseCase{
		storage:     p.Storage,
		fetcher:     p.Fetcher,
		transcriber: p.Transcriber,
		summarizer:  p.Summarizer,
		sender:      p.Sender,
		publisher:   p.Publisher,
		metrics:     p.Metrics,
		newID:       uuid.NewString,
		logger:      p.Logger,
	}
}

// HandleMessage processes one incoming message. Non-audio messages are a
// no-op. The returned error is non-nil only when the chat platform failed
// (download or reply) or the message is malformed; remote service failures
// are recorded on the Outcome and answered with a fallback reply.
func (uc *UseCase) HandleMessage(ctx context.Context, msg *entities.IncomingMessage) (*entities.Outcome, error) {
	outcome := &entities.Outcome{
		ChatID:    msg.ChatID,
		MessageID: msg.MessageID,
		Kind:      msg.Kind,
	}

	if !msg.Kind.IsAudio() {
		return outcome, nil
	}
	if msg.FileID == "" {
		return outcome, voiceerrors.ErrEmptyFileID
	}

	start := time.Now()
	log := uc.logger.With().
		Int64("chat_id", msg.ChatID).
		Int("message_id", msg.MessageID).
		Str("media_kind", string(msg.Kind)).
		Logger()

	outcome.DisplayName = identity.Resolve(msg.From, msg.Forward)
	log.Info().Str("display_name", outcome.DisplayName).Msg("Processing audio message")

	err := uc.process(ctx, log, msg.FileID, outcome)
	outcome.ProcessedAt = time.Now().UTC()

	status := outcome.Status()
	if err != nil {
		status = "transport_error"
	}
	uc.metrics.RecordMessage(string(msg.Kind), status, time.Since(start).Seconds())

	if err != nil {
		return outcome, err
	}

	log.Info().
		Str("status", status).
		Int("replies", outcome.RepliesSent).
		Dur("duration", time.Since(start)).
		Msg("Audio message processed")

	uc.publish(ctx, log, outcome)
	return outcome, nil
}

// process owns the temp file for the whole sequence; it is released on every
// return path.
func (uc *UseCase) process(ctx context.Context, log zerolog.Logger, fileID string, outcome *entities.Outcome) error {
	file := uc.storage.Acquire(uc.newID() + consts.TempFileExt)
	defer file.Release()

	log.Trace().Str("path", file.Path()).Msg("Downloading media")
	if err := uc.fetcher.Fetch(ctx, fileID, file.Path()); err != nil {
		uc.metrics.RecordTransportError(consts.StageDownload)
		return pkgerrors.NewTransportError("downloading media", err)
	}

	text, err := uc.transcriber.Transcribe(ctx, file.Path())
	if err == nil && strings.TrimSpace(text) == "" {
		err = voiceerrors.ErrEmptyTranscript
	}
	transcript, err := logErr(uc, log, consts.ServiceTranscription, text, err)
	if !transcript.ok {
		outcome.TranscriptionErr = err
		return uc.reply(ctx, outcome, consts.NoTranscription)
	}

	outcome.Transcript, outcome.HasTranscript = transcript.value, true
	if err := uc.reply(ctx, outcome, transcript.value); err != nil {
		return err
	}

	content, err := uc.summarizer.Summarize(ctx, transcript.value, outcome.DisplayName)
	summary, err := logErr(uc, log, consts.ServiceSummary, content, err)
	if !summary.ok {
		outcome.SummaryErr = err
		return uc.reply(ctx, outcome, consts.NoResponse)
	}

	outcome.Summary, outcome.HasSummary = summary.value, true
	if summary.value == "" {
		return uc.reply(ctx, outcome, consts.SummaryPrefix+consts.NoResponse)
	}
	return uc.reply(ctx, outcome, consts.SummaryPrefix+summary.value)
}

// reply sends text to the message's chat. A send failure aborts the message.
func (uc *UseCase) reply(ctx context.Context, outcome *entities.Outcome, text string) error {
	if err := uc.sender.SendMessage(ctx, outcome.ChatID, text); err != nil {
		uc.metrics.RecordTransportError(consts.StageReply)
		return pkgerrors.NewTransportError("sending reply", err)
	}
	outcome.RepliesSent++
	return nil
}

func (uc *UseCase) publish(ctx context.Context, log zerolog.Logger, outcome *entities.Outcome) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishProcessed(ctx, outcome); err != nil {
		log.Warn().Err(err).Msg("Failed to publish processed event")
	}
}
