// Package voice contains the voice/audio transcription domain module
package voice

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/audio-tldr/config"
	telegramDelivery "github.com/Conte777/audio-tldr/internal/domain/voice/delivery/telegram"
	"github.com/Conte777/audio-tldr/internal/domain/voice/deps"
	kafkaRepo "github.com/Conte777/audio-tldr/internal/domain/voice/repository/kafka"
	openaiRepo "github.com/Conte777/audio-tldr/internal/domain/voice/repository/openai"
	telegramRepo "github.com/Conte777/audio-tldr/internal/domain/voice/repository/telegram"
	"github.com/Conte777/audio-tldr/internal/domain/voice/usecase/pipeline"
	"github.com/Conte777/audio-tldr/internal/infrastructure/http/server"
	"github.com/Conte777/audio-tldr/internal/infrastructure/metrics"
	"github.com/Conte777/audio-tldr/internal/infrastructure/telegram"
	"github.com/Conte777/audio-tldr/internal/infrastructure/tempfile"
)

// Module provides voice domain components for fx dependency injection
var Module = fx.Module("voice",
	// Repository
	fx.Provide(provideTelegramClient),
	fx.Provide(provideTranscriber),
	fx.Provide(provideSummarizer),
	fx.Provide(providePublisher),

	// UseCase
	fx.Provide(provideUseCase),

	// Delivery - Telegram
	fx.Provide(provideTelegramHandlers),
	fx.Provide(telegramDelivery.NewRouter),

	fx.Invoke(register),
)

func provideTelegramClient(bot *telegram.Bot, logger zerolog.Logger) *telegramRepo.Client {
	return telegramRepo.NewClient(bot.Raw(), logger.With().Str("component", "telegram-client").Logger())
}

func provideTranscriber(cfg *config.OpenAIConfig, logger zerolog.Logger) (*openaiRepo.Transcriber, error) {
	return openaiRepo.NewTranscriber(cfg, logger.With().Str("component", "transcriber").Logger())
}

func provideSummarizer(cfg *config.OpenAIConfig, logger zerolog.Logger) (*openaiRepo.Summarizer, error) {
	return openaiRepo.NewSummarizer(context.Background(), cfg, logger.With().Str("component", "summarizer").Logger())
}

// PublisherResult exposes the event publisher and, when Kafka is enabled,
// its health checker
type PublisherResult struct {
	fx.Out

	Publisher deps.EventPublisher
	Checkers  []server.HealthChecker `group:"health,flatten"`
}

func providePublisher(cfg *config.KafkaConfig, m *metrics.Metrics, logger zerolog.Logger) (PublisherResult, error) {
	if !cfg.Enabled() {
		logger.Info().Msg("Kafka brokers not configured, event publishing disabled")
		return PublisherResult{Publisher: kafkaRepo.NoopPublisher{}}, nil
	}

	p, err := kafkaRepo.NewPublisher(cfg, m, logger.With().Str("component", "kafka-publisher").Logger())
	if err != nil {
		return PublisherResult{}, err
	}
	return PublisherResult{
		Publisher: p,
		Checkers:  []server.HealthChecker{p},
	}, nil
}

type useCaseParams struct {
	fx.In

	Storage     *tempfile.Root
	Client      *telegramRepo.Client
	Transcriber *openaiRepo.Transcriber
	Summarizer  *openaiRepo.Summarizer
	Publisher   deps.EventPublisher
	Metrics     *metrics.Metrics
	Logger      zerolog.Logger
}

func provideUseCase(p useCaseParams) *pipeline.UseCase {
	return pipeline.NewUseCase(pipeline.Params{
		Storage:     p.Storage,
		Fetcher:     p.Client,
		Transcriber: p.Transcriber,
		Summarizer:  p.Summarizer,
		Sender:      p.Client,
		Publisher:   p.Publisher,
		Metrics:     p.Metrics,
		Logger:      p.Logger.With().Str("component", "pipeline").Logger(),
	})
}

func provideTelegramHandlers(uc *pipeline.UseCase, logger zerolog.Logger) *telegramDelivery.Handlers {
	return telegramDelivery.NewHandlers(uc, logger.With().Str("component", "telegram-handlers").Logger())
}

// register adds the audio route and closes the publisher on shutdown
func register(lc fx.Lifecycle, router *telegramDelivery.Router, bot *telegram.Bot, publisher deps.EventPublisher) {
	router.RegisterRoutes(bot.Raw())

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
}
