// Package kafka contains the Kafka event publisher for processed messages
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"

	"github.com/Conte777/audio-tldr/config"
	"github.com/Conte777/audio-tldr/internal/domain/voice/entities"
	pkgerrors "github.com/Conte777/audio-tldr/pkg/errors"
)

// EventProcessed is the event type carried in the record header
const EventProcessed = "voice.processed"

// ProcessedEvent is the JSON payload published for every completed message
type ProcessedEvent struct {
	Event         string    `json:"event"`
	ChatID        int64     `json:"chat_id"`
	MessageID     int       `json:"message_id"`
	MediaKind     string    `json:"media_kind"`
	DisplayName   string    `json:"display_name"`
	Status        string    `json:"status"`
	Transcript    string    `json:"transcript,omitempty"`
	HasTranscript bool      `json:"has_transcript"`
	Summary       string    `json:"summary,omitempty"`
	HasSummary    bool      `json:"has_summary"`
	RepliesSent   int       `json:"replies_sent"`
	ProcessedAt   time.Time `json:"processed_at"`
}

// Recorder receives publish results
type Recorder interface {
	RecordEventPublished(err error)
}

// Publisher implements deps.EventPublisher on a sarama SyncProducer
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	recorder Recorder
	healthy  atomic.Bool
	logger   zerolog.Logger
}

// NewPublisher connects a SyncProducer to the configured brokers
func NewPublisher(cfg *config.KafkaConfig, recorder Recorder, logger zerolog.Logger) (*Publisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to create Kafka producer", err)
	}

	logger.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("Kafka producer initialized successfully")

	return NewPublisherWithProducer(producer, cfg.Topic, recorder, logger), nil
}

// NewPublisherWithProducer wraps an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, recorder Recorder, logger zerolog.Logger) *Publisher {
	p := &Publisher{
		producer: producer,
		topic:    topic,
		recorder: recorder,
		logger:   logger,
	}
	p.healthy.Store(true)
	return p
}

// PublishProcessed publishes the outcome of one pipeline run
func (p *Publisher) PublishProcessed(_ context.Context, outcome *entities.Outcome) error {
	err := p.send(outcome)
	p.healthy.Store(err == nil)
	if p.recorder != nil {
		p.recorder.RecordEventPublished(err)
	}
	return err
}

func (p *Publisher) send(outcome *entities.Outcome) error {
	event := ProcessedEvent{
		Event:         EventProcessed,
		ChatID:        outcome.ChatID,
		MessageID:     outcome.MessageID,
		MediaKind:     string(outcome.Kind),
		DisplayName:   outcome.DisplayName,
		Status:        outcome.Status(),
		Transcript:    outcome.Transcript,
		HasTranscript: outcome.HasTranscript,
		Summary:       outcome.Summary,
		HasSummary:    outcome.HasSummary,
		RepliesSent:   outcome.RepliesSent,
		ProcessedAt:   outcome.ProcessedAt,
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event to JSON: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(outcome.ChatID, 10)),
		Value: sarama.ByteEncoder(jsonData),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte(EventProcessed)},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.logger.Error().Err(err).Str("topic", p.topic).Msg("Failed to send Kafka message")
		return err
	}

	p.logger.Debug().
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Kafka message sent successfully")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer == nil {
		return nil
	}
	if err := p.producer.Close(); err != nil {
		p.logger.Error().Err(err).Msg("Failed to close Kafka producer")
		return err
	}
	p.logger.Info().Msg("Kafka producer closed successfully")
	return nil
}

// Name implements server.HealthChecker
func (p *Publisher) Name() string {
	return "kafka"
}

// Healthy reports whether the last publish succeeded
func (p *Publisher) Healthy() bool {
	return p.healthy.Load()
}

// NoopPublisher is used when no brokers are configured
type NoopPublisher struct{}

// PublishProcessed does nothing
func (NoopPublisher) PublishProcessed(context.Context, *entities.Outcome) error { return nil }

// Close does nothing
func (NoopPublisher) Close() error { return nil }
