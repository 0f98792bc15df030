package http

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/audio-tldr/config"
	"github.com/Conte777/audio-tldr/internal/infrastructure/http/server"
)

// Module provides the operational HTTP server for fx DI
var Module = fx.Module("http",
	fx.Invoke(registerServer),
)

type serverParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Service   *config.ServiceConfig
	Checkers  []server.HealthChecker `group:"health"`
	Logger    zerolog.Logger
}

// registerServer starts /metrics and /health when metrics are enabled
func registerServer(p serverParams) {
	if !p.Service.MetricsEnabled {
		p.Logger.Info().Msg("Metrics server disabled")
		return
	}

	logger := p.Logger.With().Str("component", "http").Logger()
	srv := server.NewServer(p.Service.Name, p.Service.Port, logger)

	// Register Prometheus metrics endpoint
	srv.RegisterMetrics()
	srv.RegisterHealth(server.NewHealthHandler(p.Checkers, logger))

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
