package activity_gauges

import (
	"context"
	"fmt"
	"time"

	"driver-earnings/pkg/logger"
)

// ActivityGauges периодически выставляет gauges активных смен и незавершённых доставок.
type ActivityGauges struct {
	log        logger.Logger
	shifts     ShiftCounter
	deliveries DeliveryCounter
	interval   time.Duration
}

func NewActivityGauges(log logger.Logger, shifts ShiftCounter, deliveries DeliveryCounter, interval time.Duration) *ActivityGauges {
	return &ActivityGauges{
		log:        log,
		shifts:     shifts,
		deliveries: deliveries,
		interval:   interval,
	}
}

func (a *ActivityGauges) TTL() time.Duration {
	return a.interval
}

func (a *ActivityGauges) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	activeShifts, err := a.shifts.CountActive(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count active shifts: %w", err)
	}

	ongoingDeliveries, err := a.deliveries.CountOngoing(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count ongoing deliveries: %w", err)
	}

	ActiveShifts.Set(float64(activeShifts))
	OngoingDeliveries.Set(float64(ongoingDeliveries))

	if activeShifts > 0 || ongoingDeliveries > 0 {
		a.log.With(
			logger.NewField("active_shifts", activeShifts),
			logger.NewField("ongoing_deliveries", ongoingDeliveries),
		).Info("activity gauges")
	}

	return nil
}

func (a *ActivityGauges) Info() string {
	return "activity gauges"
}
