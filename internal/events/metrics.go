package events

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Number of roster events successfully published to Kafka, labeled by event type.",
	}, []string{"type"})

	publishFailedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Number of roster events that failed to publish, labeled by event type.",
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(publishedCounter, publishFailedCounter)
}

func recordPublished(eventType string) {
	publishedCounter.WithLabelValues(eventType).Inc()
}

func recordPublishFailure(eventType string) {
	publishFailedCounter.WithLabelValues(eventType).Inc()
}
