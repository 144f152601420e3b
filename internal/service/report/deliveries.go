package report

import (
	"driver-earnings/internal/entities"
	"github.com/shopspring/decimal"
)

type DeliveryTotals struct {
	Earnings               float64
	Mileage                float64
	Count                  int
	DurationMinutes        float64
	AvgDeliveryTimeMinutes float64
	DeliveriesPerHour      float64
	AvgSpeed               float64
	// Completed - завершённые доставки окна, из них строится график.
	Completed []entities.Delivery
}

// FilterDeliveries оставляет доставки, созданные внутри окна и подходящие под фильтр связи.
func FilterDeliveries(deliveries []entities.Delivery, window entities.Window, filter entities.ConnectionFilter) []entities.Delivery {
	filtered := make([]entities.Delivery, 0, len(deliveries))
	for i := range deliveries {
		if !window.Contains(deliveries[i].CreatedAt) {
			continue
		}
		if !filter.Matches(deliveries[i].ConnectionID) {
			continue
		}
		filtered = append(filtered, deliveries[i])
	}
	return filtered
}

// AggregateDeliveries считает суммы только по завершённым доставкам.
// Незавершённые не учитываются, даже если заработок у них уже проставлен.
func AggregateDeliveries(deliveries []entities.Delivery, window entities.Window, filter entities.ConnectionFilter) DeliveryTotals {
	totals := DeliveryTotals{}
	earnings := decimal.Zero

	for _, delivery := range FilterDeliveries(deliveries, window, filter) {
		if !delivery.IsCompleted() {
			continue
		}

		totals.Completed = append(totals.Completed, delivery)
		totals.Count++
		earnings = earnings.Add(money(delivery.Earning))
		totals.Mileage += nonNegative(delivery.DistanceMiles)

		if delivery.CompletedAt.After(delivery.StartTime) {
			totals.DurationMinutes += delivery.CompletedAt.Sub(delivery.StartTime).Minutes()
		}
	}

	totals.Earnings = earnings.InexactFloat64()

	if totals.Count == 0 || totals.DurationMinutes <= 0 {
		return totals
	}

	count := float64(totals.Count)
	totals.AvgDeliveryTimeMinutes = totals.DurationMinutes / count
	totals.DeliveriesPerHour = count * 60 / totals.DurationMinutes
	totals.AvgSpeed = totals.Mileage * 60 / totals.DurationMinutes

	return totals
}
