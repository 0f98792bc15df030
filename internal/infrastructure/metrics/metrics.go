package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the audio-tldr service
type Metrics struct {
	// Pipeline metrics
	MessagesTotal    *prometheus.CounterVec
	PipelineDuration *prometheus.HistogramVec

	// Failure metrics
	RemoteFailures  *prometheus.CounterVec
	TransportErrors *prometheus.CounterVec
	CleanupWarnings prometheus.Counter

	// Event publishing metrics
	EventsPublished    prometheus.Counter
	EventPublishErrors prometheus.Counter
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance registered on the
// default Prometheus registry
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return DefaultMetrics
}

// NewMetrics creates a new Metrics instance registered on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MessagesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audio_tldr_messages_total",
				Help: "Total number of processed audio messages by media kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		PipelineDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "audio_tldr_pipeline_duration_seconds",
				Help:    "Duration of the download, transcribe and summarize pipeline in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
			},
			[]string{"kind"},
		),
		RemoteFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audio_tldr_remote_failures_total",
				Help: "Total number of speech-to-text and completion failures",
			},
			[]string{"service"},
		),
		TransportErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audio_tldr_transport_errors_total",
				Help: "Total number of chat platform download and send failures",
			},
			[]string{"stage"},
		),
		CleanupWarnings: factory.NewCounter(prometheus.CounterOpts{
			Name: "audio_tldr_tempfile_cleanup_warnings_total",
			Help: "Total number of temp files that could not be removed",
		}),
		EventsPublished: factory.NewCounter(prometheus.CounterOpts{
			Name: "audio_tldr_events_published_total",
			Help: "Total number of processed events published to Kafka",
		}),
		EventPublishErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "audio_tldr_event_publish_errors_total",
			Help: "Total number of failed Kafka publishes",
		}),
	}
}

// RecordMessage records a finished pipeline run
func (m *Metrics) RecordMessage(kind, outcome string, duration float64) {
	if outcome == "" {
		outcome = "unknown"
	}
	m.MessagesTotal.WithLabelValues(kind, outcome).Inc()
	m.PipelineDuration.WithLabelValues(kind).Observe(duration)
}

// RecordRemoteFailure records a failed call to a remote service
func (m *Metrics) RecordRemoteFailure(service string) {
	m.RemoteFailures.WithLabelValues(service).Inc()
}

// RecordTransportError records a chat platform failure at the given stage
func (m *Metrics) RecordTransportError(stage string) {
	m.TransportErrors.WithLabelValues(stage).Inc()
}

// RecordCleanupWarning records a temp file that could not be removed
func (m *Metrics) RecordCleanupWarning(error) {
	m.CleanupWarnings.Inc()
}

// RecordEventPublished records a publish result
func (m *Metrics) RecordEventPublished(err error) {
	if err != nil {
		m.EventPublishErrors.Inc()
		return
	}
	m.EventsPublished.Inc()
}
