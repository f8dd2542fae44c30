// Package observability holds service-wide Prometheus metrics and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful activity signups, labeled by activity.",
	}, []string{"activity"})

	removalCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "registry",
		Name:      "removals_total",
		Help:      "Number of participants removed from activities, labeled by activity.",
	}, []string{"activity"})

	httpRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, labeled by route pattern, method, and status code.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activities_api",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(signupCounter, removalCounter, httpRequestCounter, httpRequestDuration)
}

// RecordSignup counts a successful signup for the activity.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordRemoval counts a participant removal for the activity.
func RecordRemoval(activity string) {
	removalCounter.WithLabelValues(activity).Inc()
}

// RecordHTTPRequest tracks one served request. Route is the mux pattern,
// not the raw path, to keep label cardinality bounded.
func RecordHTTPRequest(route, method, status string, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestCounter.WithLabelValues(route, method, status).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}
