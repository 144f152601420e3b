package report

import (
	"fmt"
	"math"
	"time"

	"driver-earnings/internal/entities"
)

const NoShiftStart = "--:--"

type ShiftTotals struct {
	Minutes    float64
	FirstStart *time.Time
	// Selected - смены, пересекающие окно и прошедшие фильтр по связи.
	Selected []entities.Shift
}

// ReconcileShifts суммирует время смен внутри окна. Каждая смена обрезается
// границами окна, отрицательные интервалы дают ноль.
func ReconcileShifts(shifts []entities.Shift, window entities.Window, filter entities.ConnectionFilter, now time.Time) ShiftTotals {
	totals := ShiftTotals{}

	for i := range shifts {
		shift := shifts[i]
		if !filter.Matches(shift.ConnectionID) {
			continue
		}

		end, ok := shift.EffectiveEnd(now)
		if !ok {
			continue
		}
		if window.Bounded() && !shift.StartTime.Before(window.End) {
			continue
		}
		if end.Before(window.Start) {
			continue
		}

		totals.Selected = append(totals.Selected, shift)

		clippedStart := shift.StartTime
		if clippedStart.Before(window.Start) {
			clippedStart = window.Start
		}
		clippedEnd := end
		if window.Bounded() && clippedEnd.After(window.End) {
			clippedEnd = window.End
		}
		totals.Minutes += nonNegative(clippedEnd.Sub(clippedStart).Minutes())

		if totals.FirstStart == nil || shift.StartTime.Before(*totals.FirstStart) {
			start := shift.StartTime
			totals.FirstStart = &start
		}
	}

	return totals
}

// ShiftMinutes - полная длительность смены без обрезки окном.
func ShiftMinutes(shift entities.Shift, now time.Time) float64 {
	end, ok := shift.EffectiveEnd(now)
	if !ok {
		return 0
	}
	return nonNegative(end.Sub(shift.StartTime).Minutes())
}

// ActiveShift возвращает первую активную смену, подходящую под фильтр.
func ActiveShift(shifts []entities.Shift, filter entities.ConnectionFilter) *entities.Shift {
	for i := range shifts {
		if shifts[i].Status == entities.ShiftActive && filter.Matches(shifts[i].ConnectionID) {
			shift := shifts[i]
			return &shift
		}
	}
	return nil
}

// FormatClock выводит время начала как 15:04 в поясе loc или "--:--".
func FormatClock(t *time.Time, loc *time.Location) string {
	if t == nil {
		return NoShiftStart
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("15:04")
}

// FormatDuration выводит минуты как "3h 5m", неполные минуты отбрасываются.
func FormatDuration(minutes float64) string {
	minutes = nonNegative(minutes)
	hours := math.Floor(minutes / 60)
	rest := math.Floor(math.Mod(minutes, 60))
	return fmt.Sprintf("%dh %dm", int64(hours), int64(rest))
}

func HourlyEarnings(hourlyRate, shiftMinutes float64) float64 {
	if shiftMinutes <= 0 || !isFinite(hourlyRate) {
		return 0
	}
	return hourlyRate / 60 * shiftMinutes
}
