// Package metrics provides Prometheus metrics collection for the pallet service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// VolumeComputationsTotal tracks total desi volume computations.
	VolumeComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volume_computations_total",
			Help: "Total number of pallet volume computations",
		},
		[]string{"status"},
	)

	// VolumeComputationDuration tracks desi volume computation duration.
	VolumeComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "volume_computation_duration_seconds",
			Help:    "Pallet volume computation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05},
		},
	)

	// ExportsTotal tracks catalog exports by format and outcome.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_exports_total",
			Help: "Total number of catalog exports",
		},
		[]string{"format", "status"},
	)

	// ExportDuration tracks export rendering duration by format.
	ExportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_export_duration_seconds",
			Help:    "Catalog export rendering duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"format"},
	)

	// ExportRows tracks the number of rows in rendered exports.
	ExportRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_export_rows",
			Help:    "Number of pallet rows per rendered export",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordVolumeComputation records metrics for a desi volume computation.
func RecordVolumeComputation(duration time.Duration, status string) {
	VolumeComputationDuration.Observe(duration.Seconds())
	VolumeComputationsTotal.WithLabelValues(status).Inc()
}

// RecordExport records metrics for a catalog export.
func RecordExport(format string, duration time.Duration, rows int, status string) {
	ExportsTotal.WithLabelValues(format, status).Inc()
	ExportDuration.WithLabelValues(format).Observe(duration.Seconds())
	if rows > 0 {
		ExportRows.Observe(float64(rows))
	}
}
