// Package metrics provides Prometheus metrics for the tembea core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the instruments the tracking and pathing collaborators
// record into. Exposing the registry over HTTP is the embedding service's
// concern.
type Metrics struct {
	// Registry is the Prometheus registry all instruments are registered with.
	Registry *prometheus.Registry

	// ProgressComputationsTotal counts progress/ETA computations by vehicle type.
	ProgressComputationsTotal *prometheus.CounterVec

	// OffRouteTotal counts computations where the fix fell outside the route corridor.
	OffRouteTotal prometheus.Counter

	// ProgressUnavailableTotal counts requests against routes with too little geometry.
	ProgressUnavailableTotal prometheus.Counter

	// PolylineDecodeFailuresTotal counts rejected directions-provider geometries.
	PolylineDecodeFailuresTotal prometheus.Counter

	// ProgressDurationSeconds tracks computation latency.
	ProgressDurationSeconds prometheus.Histogram
}

// New creates and registers all core metrics with a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	progressComputationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tembea_progress_computations_total",
			Help: "Total number of route progress computations",
		},
		[]string{"vehicle_type"},
	)

	offRouteTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tembea_off_route_total",
		Help: "Computations where the vehicle fix was outside the route corridor",
	})

	progressUnavailableTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tembea_progress_unavailable_total",
		Help: "Computations skipped because the route had fewer than two stages",
	})

	polylineDecodeFailuresTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tembea_polyline_decode_failures_total",
		Help: "Directions-provider geometries rejected as malformed",
	})

	progressDurationSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tembea_progress_duration_seconds",
		Help:    "Route progress computation latency distribution",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 8),
	})

	registry.MustRegister(
		progressComputationsTotal,
		offRouteTotal,
		progressUnavailableTotal,
		polylineDecodeFailuresTotal,
		progressDurationSeconds,
	)

	return &Metrics{
		Registry:                    registry,
		ProgressComputationsTotal:   progressComputationsTotal,
		OffRouteTotal:               offRouteTotal,
		ProgressUnavailableTotal:    progressUnavailableTotal,
		PolylineDecodeFailuresTotal: polylineDecodeFailuresTotal,
		ProgressDurationSeconds:     progressDurationSeconds,
	}
}
