// Package telegram contains Telegram delivery handlers
package telegram

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/Conte777/audio-tldr/internal/domain/voice/entities"
	pkgerrors "github.com/Conte777/audio-tldr/pkg/errors"
)

// MessageProcessor runs the pipeline for one message
type MessageProcessor interface {
	HandleMessage(ctx context.Context, msg *entities.IncomingMessage) (*entities.Outcome, error)
}

// Handlers contains Telegram update handlers
type Handlers struct {
	uc     MessageProcessor
	logger zerolog.Logger
}

// NewHandlers creates new Telegram handlers
func NewHandlers(uc MessageProcessor, logger zerolog.Logger) *Handlers {
	return &Handlers{
		uc:     uc,
		logger: logger,
	}
}

// HandleAudio processes voice and audio messages. Failures end here: they
// are logged and the bot keeps polling.
func (h *Handlers) HandleAudio(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	msg := ToIncomingMessage(update)
	if msg == nil {
		return
	}

	if _, err := h.uc.HandleMessage(ctx, msg); err != nil {
		h.logger.Error().
			Err(err).
			Str("error_type", pkgerrors.TypeOf(err).String()).
			Int64("chat_id", msg.ChatID).
			Int("message_id", msg.MessageID).
			Msg("Failed to process audio message")
	}
}

// HasAudio reports whether the update carries a voice note or an audio file
func HasAudio(update *models.Update) bool {
	if update == nil || update.Message == nil {
		return false
	}
	return update.Message.Voice != nil || update.Message.Audio != nil
}

// ToIncomingMessage maps a Telegram update onto the domain message.
// It returns nil for updates without a message.
func ToIncomingMessage(update *models.Update) *entities.IncomingMessage {
	if update == nil || update.Message == nil {
		return nil
	}
	m := update.Message

	msg := &entities.IncomingMessage{
		ChatID:    m.Chat.ID,
		MessageID: m.ID,
		Kind:      entities.MediaKindOther,
		Forward:   toForwardOrigin(m.ForwardOrigin),
	}

	switch {
	case m.Voice != nil:
		msg.Kind = entities.MediaKindVoice
		msg.FileID = m.Voice.FileID
	case m.Audio != nil:
		msg.Kind = entities.MediaKindAudio
		msg.FileID = m.Audio.FileID
	}

	if m.From != nil {
		msg.From = &entities.User{
			ID:       m.From.ID,
			Username: m.From.Username,
		}
	}

	return msg
}

func toForwardOrigin(origin *models.MessageOrigin) *entities.ForwardOrigin {
	if origin == nil {
		return nil
	}

	switch {
	case origin.MessageOriginUser != nil:
		return &entities.ForwardOrigin{
			Type:     entities.ForwardOriginUser,
			Username: origin.MessageOriginUser.SenderUser.Username,
		}
	case origin.MessageOriginHiddenUser != nil:
		return &entities.ForwardOrigin{
			Type:       entities.ForwardOriginHiddenUser,
			SenderName: origin.MessageOriginHiddenUser.SenderUserName,
		}
	case origin.MessageOriginChat != nil:
		return &entities.ForwardOrigin{Type: entities.ForwardOriginChat}
	case origin.MessageOriginChannel != nil:
		return &entities.ForwardOrigin{Type: entities.ForwardOriginChannel}
	default:
		return nil
	}
}
