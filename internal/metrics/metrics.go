// Package metrics provides Prometheus metrics for the purchase-order service
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Purchase-order outcomes, labelled by failure kind or "success".
	PurchaseOrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "po_requests_total",
			Help: "Total number of create-po requests by outcome",
		},
		[]string{"outcome"},
	)

	StepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "po_step_duration_seconds",
			Help:    "Time spent in each purchase-order step",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)

	DocumentBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "po_document_bytes",
			Help:    "Size of rendered purchase-order documents",
			Buckets: prometheus.ExponentialBuckets(1024, 2, 10),
		},
	)

	// Outbound platform calls
	PlatformRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_requests_total",
			Help: "Total number of requests sent to the field-service platform",
		},
		[]string{"method", "resource", "status"},
	)

	PlatformRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "platform_request_duration_seconds",
			Help:    "Latency of field-service platform requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)

	// Inbound HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
)

// RecordOutcome counts one finished create-po request.
func RecordOutcome(outcome string) {
	PurchaseOrdersTotal.WithLabelValues(outcome).Inc()
}

// ObserveStep records how long a step took, measured from start.
func ObserveStep(step string, start time.Time) {
	StepDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
}

// RecordPlatformRequest records one outbound call. status is 0 when no
// response was received.
func RecordPlatformRequest(method, resource string, status int, start time.Time) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	PlatformRequestsTotal.WithLabelValues(method, resource, label).Inc()
	PlatformRequestDuration.WithLabelValues(method, resource).Observe(time.Since(start).Seconds())
}

func RecordHTTPRequest(method, route string, status int) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
