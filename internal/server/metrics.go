package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pnlfolio_reports_generated_total",
		Help: "Number of reports generated successfully.",
	})
	parseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pnlfolio_parse_failures_total",
		Help: "Number of uploads rejected as malformed.",
	})
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pnlfolio_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)
