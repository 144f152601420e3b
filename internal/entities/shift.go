package entities

import (
	"time"

	"github.com/google/uuid"
)

type Shift struct {
	ID           uuid.UUID
	DriverID     uuid.UUID
	RestaurantID uuid.UUID
	ConnectionID *uuid.UUID
	Status       ShiftStatus
	StartTime    time.Time
	EndTime      *time.Time
	CreatedAt    time.Time
}

// EffectiveEnd возвращает конец смены для расчёта длительности. Статус главнее
// end_time: активная смена всегда заканчивается в now, завершённая без
// end_time не имеет конца.
func (s *Shift) EffectiveEnd(now time.Time) (time.Time, bool) {
	switch s.Status {
	case ShiftActive:
		return now, true
	case ShiftEnded:
		if s.EndTime == nil {
			return time.Time{}, false
		}
		return *s.EndTime, true
	default:
		return time.Time{}, false
	}
}

type ShiftStatus string

const (
	ShiftActive ShiftStatus = "active"
	ShiftEnded  ShiftStatus = "ended"
)

func (s ShiftStatus) String() string {
	return string(s)
}

type ShiftToggleAction string

const (
	ShiftStarted ShiftToggleAction = "started"
	ShiftStopped ShiftToggleAction = "ended"
)

func (a ShiftToggleAction) String() string {
	return string(a)
}

type ShiftToggle struct {
	Shift  Shift
	Action ShiftToggleAction
}

type ShiftModify struct {
	ID           *uuid.UUID
	DriverID     *uuid.UUID
	RestaurantID *uuid.UUID
	ConnectionID *uuid.UUID
	Status       *ShiftStatus
	StartTime    *time.Time
	EndTime      *time.Time
}
