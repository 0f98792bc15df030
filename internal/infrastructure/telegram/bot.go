// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"
	"fmt"
	"sync/atomic"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// Bot wraps the Telegram bot for infrastructure layer
type Bot struct {
	bot     *tgbot.Bot
	running atomic.Bool
	logger  zerolog.Logger
}

// NewBot creates a new Telegram bot wrapper
func NewBot(token, serverURL string, logger zerolog.Logger, extra ...tgbot.Option) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	b := &Bot{logger: logger}

	opts := []tgbot.Option{
		tgbot.WithDefaultHandler(b.defaultHandler),
		tgbot.WithErrorsHandler(b.errorsHandler),
	}
	if serverURL != "" {
		opts = append(opts, tgbot.WithServerURL(serverURL))
	}
	opts = append(opts, extra...)

	bot, err := tgbot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	b.bot = bot

	logger.Info().Msg("Telegram bot created successfully")

	return b, nil
}

// Raw returns the underlying telegram bot for handler registration
func (b *Bot) Raw() *tgbot.Bot {
	return b.bot
}

// Start starts the bot (blocking call)
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info().Msg("Starting Telegram bot...")
	b.running.Store(true)
	b.bot.Start(ctx)
	b.running.Store(false)
	b.logger.Info().Msg("Telegram bot stopped")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() error {
	b.logger.Info().Msg("Stopping Telegram bot...")
	return nil
}

// Name implements server.HealthChecker
func (b *Bot) Name() string {
	return "telegram"
}

// Healthy implements server.HealthChecker
func (b *Bot) Healthy() bool {
	return b.running.Load()
}

// defaultHandler receives every update no route matched. Anything that is
// not a voice or audio message is ignored.
func (b *Bot) defaultHandler(_ context.Context, _ *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	b.logger.Debug().
		Int64("chat_id", update.Message.Chat.ID).
		Int("message_id", update.Message.ID).
		Msg("Ignoring message without audio")
}

func (b *Bot) errorsHandler(err error) {
	b.logger.Error().Err(err).Msg("Telegram polling error")
}
