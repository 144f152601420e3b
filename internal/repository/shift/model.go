package shift

import (
	"time"

	"github.com/google/uuid"
)

type ShiftDB struct {
	ID           uuid.UUID
	DriverID     uuid.UUID
	RestaurantID uuid.UUID
	ConnectionID *uuid.UUID
	Status       string
	StartTime    time.Time
	EndTime      *time.Time
	CreatedAt    time.Time
}

type ShiftModifyDB struct {
	ID           *uuid.UUID
	DriverID     *uuid.UUID
	RestaurantID *uuid.UUID
	ConnectionID *uuid.UUID
	Status       *string
	StartTime    *time.Time
	EndTime      *time.Time
}
