// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/Conte777/audio-tldr/config"
	"github.com/Conte777/audio-tldr/internal/domain"
	"github.com/Conte777/audio-tldr/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, metrics, temp dir, telegram bot, ops server)
		infrastructure.Module,

		// Domain (voice pipeline)
		domain.Module,
	)
}
