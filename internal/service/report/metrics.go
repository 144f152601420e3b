package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_build_duration_seconds",
			Help:    "Duration of report aggregation, excluding record loading",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"kind", "period"},
	)

	ReportRecordsLoaded = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_records_loaded",
			Help:    "Number of records loaded for a single report",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"kind", "record"},
	)
)
