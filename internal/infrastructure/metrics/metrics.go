package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Chat-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moneystocks",
			Subsystem: "chat_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "moneystocks",
			Subsystem: "chat_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	// Model invocation counter, labeled by how the turn resolved
	ModelInvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moneystocks",
			Subsystem: "chat_api",
			Name:      "model_invocations_total",
			Help:      "Total model invocations by persona and outcome",
		},
		[]string{"persona", "outcome"},
	)

	// Model latency histogram
	ModelDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "moneystocks",
			Subsystem: "chat_api",
			Name:      "model_duration_seconds",
			Help:      "Model call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 75},
		},
		[]string{"persona"},
	)

	// Intent extraction counter
	IntentExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moneystocks",
			Subsystem: "chat_api",
			Name:      "intent_extractions_total",
			Help:      "Total transaction intents extracted from user messages",
		},
		[]string{"type"},
	)
)

// Outcome labels for ModelInvocationsTotal.
const (
	OutcomeAnswered = "answered"
	OutcomeFallback = "fallback"
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordModelInvocation records one model call and how the turn resolved
func RecordModelInvocation(persona string, fallback bool, duration time.Duration) {
	outcome := OutcomeAnswered
	if fallback {
		outcome = OutcomeFallback
	}
	ModelInvocationsTotal.WithLabelValues(persona, outcome).Inc()
	ModelDuration.WithLabelValues(persona).Observe(duration.Seconds())
}

// RecordIntentExtraction records one extracted transaction intent
func RecordIntentExtraction(transactionType string) {
	IntentExtractionsTotal.WithLabelValues(transactionType).Inc()
}
