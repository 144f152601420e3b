package activity_gauges

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveShifts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_shifts",
			Help: "Shifts currently in active status",
		},
	)

	OngoingDeliveries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ongoing_deliveries",
			Help: "Deliveries logged but not completed yet",
		},
	)
)
