package delivery

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryDB - строка deliveries. Денежные и дистанционные колонки nullable:
// старые записи могли создаваться без расчёта заработка.
type DeliveryDB struct {
	ID            uuid.UUID
	DriverID      uuid.UUID
	RestaurantID  uuid.UUID
	ConnectionID  *uuid.UUID
	ShiftID       *uuid.UUID
	Earning       *float64
	DistanceMiles *float64
	Address       string
	Postcode      string
	Status        string
	StartTime     time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
}

type DeliveryModifyDB struct {
	ID            *uuid.UUID
	DriverID      *uuid.UUID
	RestaurantID  *uuid.UUID
	ConnectionID  *uuid.UUID
	ShiftID       *uuid.UUID
	Earning       *float64
	DistanceMiles *float64
	Address       *string
	Postcode      *string
	Status        *string
	StartTime     *time.Time
	CompletedAt   *time.Time
}
