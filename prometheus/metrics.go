package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/crosayo/cardstock/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Catalog metrics
	ItemOperationsCounter prometheus.CounterVec

	// Import pipeline metrics
	ImportRowsCounter  prometheus.CounterVec
	ImportUnitsCounter prometheus.CounterVec

	// Scrape metrics
	ScrapeRequestsCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_success_total",
			Help: "Total number of successful authentications",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	ItemOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_item_operations_total",
			Help: "Total number of catalog item operations",
		},
		[]string{"operation"},
	)

	ImportRowsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_import_rows_total",
			Help: "Import pipeline row outcomes",
		},
		[]string{"outcome"},
	)

	ImportUnitsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_import_units_total",
			Help: "Import pipeline unit terminal states",
		},
		[]string{"state"},
	)

	ScrapeRequestsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_scrape_requests_total",
			Help: "Wiki scrape requests by result",
		},
		[]string{"result"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordItemOperation increments the counter for catalog item operations
func RecordItemOperation(operation string) {
	ItemOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordImportRow increments the import outcome counter
func RecordImportRow(outcome string, n int) {
	ImportRowsCounter.WithLabelValues(outcome).Add(float64(n))
}

// RecordImportUnit increments the unit terminal state counter
func RecordImportUnit(state string) {
	ImportUnitsCounter.WithLabelValues(state).Inc()
}

// RecordScrapeRequest increments the scrape result counter
func RecordScrapeRequest(result string) {
	ScrapeRequestsCounter.WithLabelValues(result).Inc()
}
