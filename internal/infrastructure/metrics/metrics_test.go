package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordMessage(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordMessage("voice", "summarized", 1.5)
	m.RecordMessage("voice", "summarized", 2.5)
	m.RecordMessage("audio", "", 0.2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MessagesTotal.WithLabelValues("voice", "summarized")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesTotal.WithLabelValues("audio", "unknown")))
}

func TestMetrics_RecordFailures(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordRemoteFailure("transcription")
	m.RecordRemoteFailure("summary")
	m.RecordRemoteFailure("summary")
	m.RecordTransportError("download")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemoteFailures.WithLabelValues("transcription")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RemoteFailures.WithLabelValues("summary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransportErrors.WithLabelValues("download")))
}

func TestMetrics_RecordEventPublished(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordEventPublished(nil)
	m.RecordEventPublished(errors.New("broker unavailable"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventPublishErrors))
}

// TestDefaultMetrics_Initialized verifies the singleton is reused
func TestDefaultMetrics_Initialized(t *testing.T) {
	first := GetDefaultMetrics()
	second := GetDefaultMetrics()

	assert.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestMetrics_RecordCleanupWarning(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordCleanupWarning(errors.New("permission denied"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CleanupWarnings))
}
