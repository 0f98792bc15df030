package tempfile

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/audio-tldr/config"
	"github.com/Conte777/audio-tldr/internal/infrastructure/metrics"
)

// Module provides the shared temp root for fx dependency injection
var Module = fx.Module("tempfile",
	fx.Provide(provideRoot),
)

func provideRoot(cfg *config.StorageConfig, m *metrics.Metrics, logger zerolog.Logger) *Root {
	return NewRoot(
		cfg.BaseDir,
		cfg.DirName,
		logger.With().Str("component", "tempfile").Logger(),
		WithCleanupHook(m.RecordCleanupWarning),
	)
}
