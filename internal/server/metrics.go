package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crimedash",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "crimedash",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"method", "route"},
	)

	rateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "crimedash",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter",
		},
	)

	viewComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crimedash",
			Subsystem: "view",
			Name:      "computations_total",
			Help:      "Area views computed, by sort key",
		},
		[]string{"sort"},
	)

	liveTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "crimedash",
			Subsystem: "live",
			Name:      "ticks_total",
			Help:      "Live metric ticks applied across all views",
		},
	)

	activeViews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "crimedash",
			Subsystem: "ws",
			Name:      "active_views",
			Help:      "Number of mounted dashboard views",
		},
	)
)
