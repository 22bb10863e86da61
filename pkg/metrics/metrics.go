package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds).
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Chart export latency (seconds) including headless capture.
	ExportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chart_export_duration_seconds",
			Help:    "Chart export duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
		[]string{"format", "status"},
	)

	// Project save counter.
	ProjectSaveCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_save_count",
			Help: "Total number of project saves",
		},
		[]string{"status"}, // status: success, failed
	)

	// Start-date rebase counter.
	RebaseCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "project_rebase_count",
			Help: "Total number of start-date rebase operations",
		},
	)
)

// RecordHTTPRequestDuration records one HTTP request observation.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordExportDuration records one chart export observation.
func RecordExportDuration(format, status string, duration time.Duration) {
	ExportDuration.WithLabelValues(format, status).Observe(duration.Seconds())
}

// IncrementProjectSave counts a save attempt by outcome.
func IncrementProjectSave(status string) {
	ProjectSaveCount.WithLabelValues(status).Inc()
}
