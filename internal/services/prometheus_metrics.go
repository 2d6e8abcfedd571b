package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records operational metrics for the expense API
type PrometheusMetrics struct {
	expenseOperations  *prometheus.CounterVec
	authEvents         *prometheus.CounterVec
	analyticsDurations *prometheus.HistogramVec
}

// NewPrometheusMetrics creates and registers the metric collectors
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expenseOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_operations_total",
				Help: "Total number of expense operations by type",
			},
			[]string{"operation", "category"},
		),
		authEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event"},
		),
		analyticsDurations: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_computation_duration_milliseconds",
				Help:    "Time spent computing summaries and chart series",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
			[]string{"computation"},
		),
	}
}

// IncrementCounter increments a named counter with the given tags
func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "expense_operations":
		m.expenseOperations.WithLabelValues(tags["operation"], tags["category"]).Inc()
	case "auth_events":
		m.authEvents.WithLabelValues(tags["event"]).Inc()
	}
}

// RecordProcessingTime records the duration of a named computation
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.analyticsDurations.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
}

// NoopMetrics is a metrics recorder that discards everything, for tests
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(name string, tags map[string]string)      {}
func (NoopMetrics) RecordProcessingTime(name string, duration time.Duration) {}
