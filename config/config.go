package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the audio-tldr service
type Config struct {
	Telegram TelegramConfig
	OpenAI   OpenAIConfig
	Storage  StorageConfig
	Kafka    KafkaConfig
	Logging  LoggingConfig
	Service  ServiceConfig
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken  string
	ServerURL string
}

// OpenAIConfig holds configuration of the speech-to-text and completion services
type OpenAIConfig struct {
	APIKey             string
	BaseURL            string
	TranscriptionModel string
	SummaryModel       string
	Language           string
	RequestTimeout     time.Duration
}

// StorageConfig holds the location of the shared temp directory
type StorageConfig struct {
	BaseDir string
	DirName string
}

// KafkaConfig holds Kafka configuration; publishing is disabled without brokers
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether processed events should be published
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name           string
	Port           string
	MetricsEnabled bool
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config   *Config
	Telegram *TelegramConfig
	OpenAI   *OpenAIConfig
	Storage  *StorageConfig
	Kafka    *KafkaConfig
	Logging  *LoggingConfig
	Service  *ServiceConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:   cfg,
		Telegram: &cfg.Telegram,
		OpenAI:   &cfg.OpenAI,
		Storage:  &cfg.Storage,
		Kafka:    &cfg.Kafka,
		Logging:  &cfg.Logging,
		Service:  &cfg.Service,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("OPENAI_REQUEST_TIMEOUT", "2m"))
	if err != nil {
		return nil, fmt.Errorf("invalid OPENAI_REQUEST_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken:  getEnv("TELEGRAM_BOT_TOKEN", os.Getenv("TELOXIDE_TOKEN")),
			ServerURL: getEnv("TELEGRAM_API_URL", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:             getEnv("OPENAI_API_KEY", ""),
			BaseURL:            getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			TranscriptionModel: getEnv("OPENAI_TRANSCRIPTION_MODEL", "whisper-1"),
			SummaryModel:       getEnv("OPENAI_SUMMARY_MODEL", "gpt-4"),
			Language:           getEnv("TRANSCRIPTION_LANGUAGE", "de"),
			RequestTimeout:     timeout,
		},
		Storage: StorageConfig{
			BaseDir: getEnv("TEMP_DIR", os.TempDir()),
			DirName: getEnv("TEMP_DIR_NAME", "audio-tldr"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "voice.summaries"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name:           getEnv("SERVICE_NAME", "audio-tldr"),
			Port:           getEnv("SERVICE_PORT", "8081"),
			MetricsEnabled: getEnv("METRICS_ENABLED", "true") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	if c.OpenAI.RequestTimeout <= 0 {
		return fmt.Errorf("OPENAI_REQUEST_TIMEOUT must be positive")
	}

	if c.Storage.DirName == "" {
		return fmt.Errorf("TEMP_DIR_NAME cannot be empty")
	}

	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}

	return nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
