package server

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics
var (
	parseRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sds_parse_requests_total",
			Help: "Total number of SDS parse requests by outcome",
		},
		[]string{"outcome"},
	)
	parseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sds_parse_duration_seconds",
			Help:    "Duration of SDS parse requests",
			Buckets: prometheus.DefBuckets,
		},
	)
	duplicatesSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sds_register_duplicates_skipped_total",
			Help: "Records skipped because their barcode was already registered",
		},
	)
)

func init() {
	prometheus.MustRegister(parseRequestsTotal)
	prometheus.MustRegister(parseDuration)
	prometheus.MustRegister(duplicatesSkippedTotal)
}
