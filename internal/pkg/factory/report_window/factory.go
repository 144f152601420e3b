package report_window

import (
	"time"

	"driver-earnings/internal/entities"
)

const DefaultRolloverHour = 3

type WindowFactory struct {
	rolloverHour int
}

// New принимает час начала рабочего дня. Значения вне 0..23 заменяются на DefaultRolloverHour.
func New(rolloverHour int) *WindowFactory {
	if rolloverHour < 0 || rolloverHour > 23 {
		rolloverHour = DefaultRolloverHour
	}
	return &WindowFactory{
		rolloverHour: rolloverHour,
	}
}

func (f *WindowFactory) RolloverHour() int {
	return f.rolloverHour
}

// Window считает [start, end) для периода относительно now в часовом поясе now.
// Верхняя граница есть только у "today" в режиме рабочего дня.
func (f *WindowFactory) Window(period entities.Period, policy entities.DayPolicy, now time.Time) entities.Window {
	switch period {
	case entities.PeriodToday:
		if policy == entities.CalendarDay {
			return entities.Window{Start: startOfDay(now, 0)}
		}
		day := now
		if now.Hour() < f.rolloverHour {
			day = now.AddDate(0, 0, -1)
		}
		// конец - следующий перекат по местным часам: в дни перевода часов окно 23 или 25 часов
		return entities.Window{
			Start: startOfDay(day, f.rolloverHour),
			End:   startOfDay(day.AddDate(0, 0, 1), f.rolloverHour),
		}
	case entities.PeriodWeek:
		return entities.Window{Start: now.AddDate(0, 0, -7)}
	case entities.PeriodMonth:
		return entities.Window{Start: now.AddDate(0, -1, 0)}
	case entities.PeriodYear:
		return entities.Window{Start: now.AddDate(-1, 0, 0)}
	default:
		return entities.Window{Start: startOfDay(now, 0)}
	}
}

func startOfDay(t time.Time, hour int) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, hour, 0, 0, 0, t.Location())
}
