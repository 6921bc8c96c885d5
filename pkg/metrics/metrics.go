package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	UpstreamCallsTotal  *prometheus.CounterVec
	UpstreamDuration    *prometheus.HistogramVec
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		UpstreamCallsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graph_upstream_calls_total",
				Help: "Total number of Graph API calls.",
			},
			[]string{"endpoint", "status"},
		)

		UpstreamDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graph_upstream_duration_seconds",
				Help:    "Duration of Graph API calls.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint"},
		)
	})
}
