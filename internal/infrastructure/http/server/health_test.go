package server

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

type staticChecker struct {
	name    string
	healthy bool
}

func (c staticChecker) Name() string  { return c.name }
func (c staticChecker) Healthy() bool { return c.healthy }

func TestHealthHandler_Healthy(t *testing.T) {
	h := NewHealthHandler([]HealthChecker{
		staticChecker{name: "telegram", healthy: true},
		staticChecker{name: "kafka_publisher", healthy: true},
	}, zerolog.Nop())

	var ctx fasthttp.RequestCtx
	h.Handle(&ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, HealthStatusHealthy, resp.Status)
	assert.Len(t, resp.Components, 2)
}

func TestHealthHandler_Unhealthy(t *testing.T) {
	h := NewHealthHandler([]HealthChecker{
		staticChecker{name: "telegram", healthy: false},
	}, zerolog.Nop())

	var ctx fasthttp.RequestCtx
	h.Handle(&ctx)

	assert.Equal(t, fasthttp.StatusServiceUnavailable, ctx.Response.StatusCode())
	assert.Equal(t, HealthStatusUnhealthy, h.Check().Status)
}

func TestHealthHandler_NoCheckers(t *testing.T) {
	h := NewHealthHandler(nil, zerolog.Nop())

	resp := h.Check()

	assert.Equal(t, HealthStatusHealthy, resp.Status)
	assert.Empty(t, resp.Components)
}
