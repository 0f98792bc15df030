package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"TELEGRAM_BOT_TOKEN", "TELOXIDE_TOKEN", "TELEGRAM_API_URL",
	"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_TRANSCRIPTION_MODEL", "OPENAI_SUMMARY_MODEL",
	"TRANSCRIPTION_LANGUAGE", "OPENAI_REQUEST_TIMEOUT",
	"TEMP_DIR", "TEMP_DIR_NAME",
	"KAFKA_BROKERS", "KAFKA_TOPIC",
	"LOG_LEVEL", "SERVICE_NAME", "SERVICE_PORT", "METRICS_ENABLED",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Empty(t, cfg.Telegram.ServerURL)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "whisper-1", cfg.OpenAI.TranscriptionModel)
	assert.Equal(t, "gpt-4", cfg.OpenAI.SummaryModel)
	assert.Equal(t, "de", cfg.OpenAI.Language)
	assert.Equal(t, 2*time.Minute, cfg.OpenAI.RequestTimeout)
	assert.Equal(t, os.TempDir(), cfg.Storage.BaseDir)
	assert.Equal(t, "audio-tldr", cfg.Storage.DirName)
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, "voice.summaries", cfg.Kafka.Topic)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "audio-tldr", cfg.Service.Name)
	assert.Equal(t, "8081", cfg.Service.Port)
	assert.True(t, cfg.Service.MetricsEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TRANSCRIPTION_LANGUAGE", "en")
	t.Setenv("OPENAI_REQUEST_TIMEOUT", "45s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.OpenAI.Language)
	assert.Equal(t, 45*time.Second, cfg.OpenAI.RequestTimeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.Service.MetricsEnabled)
}

func TestLoad_LegacyTokenAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELOXIDE_TOKEN", "legacy:token")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "legacy:token", cfg.Telegram.BotToken)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing bot token",
			env:  map[string]string{"OPENAI_API_KEY": "sk-test"},
			want: "TELEGRAM_BOT_TOKEN",
		},
		{
			name: "missing api key",
			env:  map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc"},
			want: "OPENAI_API_KEY",
		},
		{
			name: "invalid timeout",
			env: map[string]string{
				"TELEGRAM_BOT_TOKEN":     "123:abc",
				"OPENAI_API_KEY":         "sk-test",
				"OPENAI_REQUEST_TIMEOUT": "soon",
			},
			want: "OPENAI_REQUEST_TIMEOUT",
		},
		{
			name: "negative timeout",
			env: map[string]string{
				"TELEGRAM_BOT_TOKEN":     "123:abc",
				"OPENAI_API_KEY":         "sk-test",
				"OPENAI_REQUEST_TIMEOUT": "-1s",
			},
			want: "OPENAI_REQUEST_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOut(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	res, err := Out()
	require.NoError(t, err)

	assert.Same(t, &res.Config.OpenAI, res.OpenAI)
	assert.Same(t, &res.Config.Storage, res.Storage)
}
