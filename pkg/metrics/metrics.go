// Package metrics holds the prometheus collectors shared across packages.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "appraiser"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30} //nolint: gochecknoglobals

// UpstreamRequestDuration tracks the latency of calls to external metric
// providers. status is the HTTP status code, or "error" when no response was
// received.
var UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Namespace: namespace,
	Subsystem: "upstream",
	Name:      "request_duration_seconds",
	Help:      "Latency of requests sent to metric providers.",
	Buckets:   DefaultBuckets,
}, []string{"provider", "status"})

// MetricFetches counts metric fetches by metric name and outcome status.
var MetricFetches = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Namespace: namespace,
	Name:      "metric_fetches_total",
	Help:      "Number of metric fetches by metric and status.",
}, []string{"metric", "status"})
