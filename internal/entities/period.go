package entities

import "time"

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func (p Period) String() string {
	return string(p)
}

// DayPolicy определяет, с какого часа начинается "сегодня".
type DayPolicy string

const (
	// BusinessDay - сутки начинаются в час переката (по умолчанию 03:00),
	// ночные смены относятся к предыдущему рабочему дню.
	BusinessDay DayPolicy = "business"
	// CalendarDay - сутки начинаются в полночь.
	CalendarDay DayPolicy = "calendar"
)

func (p DayPolicy) String() string {
	return string(p)
}

// Window - отчётный интервал [Start, End). Нулевой End означает открытый интервал.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Bounded() bool {
	return !w.End.IsZero()
}

func (w Window) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	return !w.Bounded() || t.Before(w.End)
}
