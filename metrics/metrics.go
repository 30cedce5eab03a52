package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "argus_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "argus_request_duration_seconds",
			Help:    "Time taken to serve API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	DatasetAlerts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "argus_dataset_alerts",
			Help: "Number of alerts loaded into the store",
		},
	)

	ResponseCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "argus_response_cache_hits_total",
			Help: "Total number of paged alert responses served from cache",
		},
	)

	ResponseCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "argus_response_cache_misses_total",
			Help: "Total number of paged alert responses computed fresh",
		},
	)
)
