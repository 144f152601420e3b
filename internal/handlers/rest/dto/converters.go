package dto

import (
	"time"

	"driver-earnings/internal/entities"
)

func FromWindow(window entities.Window) Window {
	result := Window{Start: window.Start}
	if window.Bounded() {
		end := window.End
		result.End = &end
	}
	return result
}

func FromReport(report *entities.Report) Report {
	return Report{
		Period:                 report.Period.String(),
		Window:                 FromWindow(report.Window),
		TotalEarnings:          report.TotalEarnings,
		TotalMileage:           report.TotalMileage,
		TotalShiftMinutes:      report.TotalShiftMinutes,
		HourlyEarnings:         report.HourlyEarnings,
		AggregatedEarnings:     report.AggregatedEarnings,
		AvgDeliveryTimeMinutes: report.AvgDeliveryTimeMinutes,
		DeliveriesPerHour:      report.DeliveriesPerHour,
		AvgSpeed:               report.AvgSpeed,
		CompletedDeliveries:    report.CompletedDeliveries,
		EfficiencyScore:        report.EfficiencyScore,
		FirstShiftStart:        report.FirstShiftStart,
		Rates: Rates{
			Hourly:  report.Rates.Hourly,
			Mileage: report.Rates.Mileage,
			Local:   report.Rates.Local,
		},
		Chart: Chart{
			Labels:   report.Chart.Labels,
			Earnings: report.Chart.Earnings,
			Mileage:  report.Chart.Mileage,
		},
	}
}

func FromDashboard(dashboard *entities.Dashboard) Dashboard {
	result := Dashboard{
		Window:             FromWindow(dashboard.Window),
		ConnectionID:       dashboard.ConnectionID,
		DeliveryEarnings:   dashboard.DeliveryEarnings,
		ShiftMinutes:       dashboard.ShiftMinutes,
		ShiftDuration:      dashboard.ShiftDuration,
		FirstShiftStart:    dashboard.FirstShiftStart,
		HourlyEarnings:     dashboard.HourlyEarnings,
		TotalEarnings:      dashboard.TotalEarnings,
		DeliveriesLogged:   dashboard.DeliveriesLogged,
		SubscriptionActive: dashboard.SubscriptionActive,
	}
	if dashboard.ActiveShift != nil {
		shift := FromShift(dashboard.ActiveShift)
		result.ActiveShift = &shift
	}
	return result
}

func FromDelivery(delivery *entities.Delivery) Delivery {
	return Delivery{
		ID:            delivery.ID,
		DriverID:      delivery.DriverID,
		RestaurantID:  delivery.RestaurantID,
		ConnectionID:  delivery.ConnectionID,
		ShiftID:       delivery.ShiftID,
		Earning:       delivery.Earning,
		DistanceMiles: delivery.DistanceMiles,
		Address:       delivery.Address,
		Postcode:      delivery.Postcode,
		Status:        delivery.Status.String(),
		StartTime:     delivery.StartTime,
		CompletedAt:   delivery.CompletedAt,
	}
}

func FromShift(shift *entities.Shift) Shift {
	return Shift{
		ID:           shift.ID,
		DriverID:     shift.DriverID,
		RestaurantID: shift.RestaurantID,
		ConnectionID: shift.ConnectionID,
		Status:       shift.Status.String(),
		StartTime:    shift.StartTime,
		EndTime:      shift.EndTime,
	}
}

func FromShiftToggle(toggle *entities.ShiftToggle) ShiftToggleResponse {
	return ShiftToggleResponse{
		Shift:  FromShift(&toggle.Shift),
		Action: toggle.Action.String(),
	}
}

// ParseAt разбирает параметр at (RFC3339). Пустое значение - текущее время в loc.
func ParseAt(raw string, loc *time.Location, now func() time.Time) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if raw == "" {
		return now().In(loc), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return at.In(loc), nil
}
