// Package metrics holds the Prometheus collectors of the driver API.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	StatusUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driver_status_updates_total",
			Help: "Total number of driver status updates by requested status and outcome",
		},
		[]string{"status", "outcome"},
	)

	ProofCaptureFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driver_proof_capture_failures_total",
			Help: "Total number of proof artifacts that could not be stored",
		},
		[]string{"kind"},
	)

	EventPublishFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "driver_event_publish_failures_total",
			Help: "Total number of order events that could not be published",
		},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "driver_http_request_duration_seconds",
			Help:    "Duration of driver API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(StatusUpdatesTotal)
	prometheus.MustRegister(ProofCaptureFailuresTotal)
	prometheus.MustRegister(EventPublishFailuresTotal)
	prometheus.MustRegister(HTTPRequestDuration)
}
