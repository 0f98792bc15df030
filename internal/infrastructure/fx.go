// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/Conte777/audio-tldr/internal/infrastructure/http"
	"github.com/Conte777/audio-tldr/internal/infrastructure/logger"
	"github.com/Conte777/audio-tldr/internal/infrastructure/metrics"
	"github.com/Conte777/audio-tldr/internal/infrastructure/telegram"
	"github.com/Conte777/audio-tldr/internal/infrastructure/tempfile"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	metrics.Module,
	tempfile.Module,
	telegram.Module,
	http.Module,
)
