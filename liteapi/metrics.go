package liteapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	outcomeSuccess    = "success"
	outcomeValidation = "validation"
	outcomeTransport  = "transport"
	outcomeTimeout    = "timeout"
	outcomeUpstream   = "upstream"
	outcomeParse      = "parse"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "liteapi_client",
			Name:      "requests_total",
			Help:      "Endpoint calls by outcome, including calls rejected before I/O.",
		},
		[]string{"endpoint", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "liteapi_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of calls that reached the network.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

func observe(endpoint, outcome string, d time.Duration) {
	requestsTotal.WithLabelValues(endpoint, outcome).Inc()
	if outcome != outcomeValidation {
		requestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
	}
}
