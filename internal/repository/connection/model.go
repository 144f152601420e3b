package connection

import (
	"time"

	"github.com/google/uuid"
)

type ConnectionDB struct {
	ID                 uuid.UUID
	DriverID           uuid.UUID
	RestaurantID       uuid.UUID
	DriverName         string
	RestaurantName     string
	RestaurantPostcode string
	Status             string
	HourlyRate         *float64
	MileageRate        *float64
	LocalRate          *float64
	SubscriptionEnd    *time.Time
	CreatedAt          time.Time
}
