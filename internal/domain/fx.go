// Package domain contains all domain modules
package domain

import (
	"go.uber.org/fx"

	"github.com/Conte777/audio-tldr/internal/domain/voice"
)

// Module aggregates all domain modules
var Module = fx.Module("domain",
	voice.Module,
)
