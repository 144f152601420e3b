package entities

import (
	"time"

	"github.com/google/uuid"
)

type Delivery struct {
	ID            uuid.UUID
	DriverID      uuid.UUID
	RestaurantID  uuid.UUID
	ConnectionID  *uuid.UUID
	ShiftID       *uuid.UUID
	Earning       float64
	DistanceMiles float64
	Address       string
	Postcode      string
	Status        DeliveryStatus
	StartTime     time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
}

// IsCompleted сообщает, попадает ли доставка в выборку завершённых:
// только status=completed с заполненным completed_at.
func (d *Delivery) IsCompleted() bool {
	return d.Status == DeliveryCompleted && d.CompletedAt != nil
}

type DeliveryStatus string

const (
	DeliveryOngoing   DeliveryStatus = "ongoing"
	DeliveryCompleted DeliveryStatus = "completed"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

type DeliveryCreate struct {
	ProfileID     uuid.UUID
	ConnectionID  uuid.UUID
	DistanceMiles float64
	Address       string
	Postcode      string
}

type DeliveryModify struct {
	ID            *uuid.UUID
	DriverID      *uuid.UUID
	RestaurantID  *uuid.UUID
	ConnectionID  *uuid.UUID
	ShiftID       *uuid.UUID
	Earning       *float64
	DistanceMiles *float64
	Address       *string
	Postcode      *string
	Status        *DeliveryStatus
	StartTime     *time.Time
	CompletedAt   *time.Time
}
