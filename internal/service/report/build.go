package report

import (
	"driver-earnings/internal/entities"
)

// Build собирает отчёт за период. Чистая функция: одинаковый вход даёт одинаковый результат.
func Build(input entities.ReportInput) entities.Report {
	rates := ResolveRates(input.Connection, input.Profile)
	shiftTotals := ReconcileShifts(input.Shifts, input.Window, input.Filter, input.Now)
	deliveryTotals := AggregateDeliveries(input.Deliveries, input.Window, input.Filter)

	hourlyEarnings := HourlyEarnings(rates.Hourly, shiftTotals.Minutes)
	aggregated := money(deliveryTotals.Earnings).Add(money(hourlyEarnings))

	report := entities.Report{
		Period:                 input.Period,
		Window:                 input.Window,
		TotalEarnings:          deliveryTotals.Earnings,
		TotalMileage:           deliveryTotals.Mileage,
		TotalShiftMinutes:      shiftTotals.Minutes,
		HourlyEarnings:         hourlyEarnings,
		AggregatedEarnings:     aggregated.InexactFloat64(),
		AvgDeliveryTimeMinutes: deliveryTotals.AvgDeliveryTimeMinutes,
		DeliveriesPerHour:      deliveryTotals.DeliveriesPerHour,
		AvgSpeed:               deliveryTotals.AvgSpeed,
		CompletedDeliveries:    deliveryTotals.Count,
		FirstShiftStart:        shiftTotals.FirstStart,
		Rates:                  rates,
		Chart:                  BuildChart(deliveryTotals.Completed, shiftTotals.Selected, rates.Hourly, input.Now),
	}

	// без завершённых доставок оценивать нечего
	if deliveryTotals.Count > 0 {
		report.EfficiencyScore = EfficiencyScore(
			deliveryTotals.DeliveriesPerHour,
			deliveryTotals.AvgDeliveryTimeMinutes,
			deliveryTotals.AvgSpeed,
		)
	}

	return report
}

// BuildDashboard - шапка текущего рабочего дня: окно в input уже должно быть
// рабочим днём, фильтр - выбранной связью.
func BuildDashboard(input entities.ReportInput) entities.Dashboard {
	rates := ResolveRates(input.Connection, input.Profile)
	shiftTotals := ReconcileShifts(input.Shifts, input.Window, input.Filter, input.Now)
	deliveryTotals := AggregateDeliveries(input.Deliveries, input.Window, input.Filter)
	hourlyEarnings := HourlyEarnings(rates.Hourly, shiftTotals.Minutes)

	return entities.Dashboard{
		Window:             input.Window,
		ConnectionID:       input.Filter.ConnectionID,
		DeliveryEarnings:   deliveryTotals.Earnings,
		ShiftMinutes:       shiftTotals.Minutes,
		ShiftDuration:      FormatDuration(shiftTotals.Minutes),
		FirstShiftStart:    FormatClock(shiftTotals.FirstStart, input.Now.Location()),
		HourlyEarnings:     hourlyEarnings,
		TotalEarnings:      money(deliveryTotals.Earnings).Add(money(hourlyEarnings)).InexactFloat64(),
		ActiveShift:        ActiveShift(input.Shifts, input.Filter),
		DeliveriesLogged:   len(FilterDeliveries(input.Deliveries, input.Window, input.Filter)),
		SubscriptionActive: input.Connection.SubscriptionActive(input.Now),
	}
}
