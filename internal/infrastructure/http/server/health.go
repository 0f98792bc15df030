package server

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// HealthChecker is implemented by components that report liveness
type HealthChecker interface {
	// Name identifies the component in the health report
	Name() string
	// Healthy returns true if component is healthy, false otherwise
	Healthy() bool
}

// HealthStatus represents the overall health status
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth represents health status of a single component
type ComponentHealth struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
}

// HealthResponse represents the JSON response for health check
type HealthResponse struct {
	Status     HealthStatus      `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components []ComponentHealth `json:"components"`
}

// HealthHandler serves the aggregated component health
type HealthHandler struct {
	checkers []HealthChecker
	logger   zerolog.Logger
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(checkers []HealthChecker, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		logger:   logger,
	}
}

// Check builds the current health report
func (h *HealthHandler) Check() HealthResponse {
	resp := HealthResponse{
		Status:     HealthStatusHealthy,
		Timestamp:  time.Now().UTC(),
		Components: make([]ComponentHealth, 0, len(h.checkers)),
	}

	for _, c := range h.checkers {
		healthy := c.Healthy()
		if !healthy {
			resp.Status = HealthStatusUnhealthy
		}
		resp.Components = append(resp.Components, ComponentHealth{Name: c.Name(), Healthy: healthy})
	}

	return resp
}

// Handle is the fasthttp handler for GET /health
func (h *HealthHandler) Handle(ctx *fasthttp.RequestCtx) {
	resp := h.Check()

	statusCode := fasthttp.StatusOK
	if resp.Status == HealthStatusUnhealthy {
		statusCode = fasthttp.StatusServiceUnavailable
	}

	body, err := json.Marshal(resp)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode health check response")
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	h.logger.Debug().Str("status", string(resp.Status)).Msg("Health check completed")

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(statusCode)
	ctx.SetBody(body)
}
