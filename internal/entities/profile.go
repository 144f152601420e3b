package entities

import "github.com/google/uuid"

type Profile struct {
	ID                 uuid.UUID
	Name               string
	Role               Role
	HourlyRate         *float64
	MileageRate        *float64
	LocalRate          *float64
	ActiveConnectionID *uuid.UUID
}

type Role string

const (
	RoleDriver     Role = "driver"
	RoleRestaurant Role = "restaurant"
)

func (r Role) String() string {
	return string(r)
}

// Rates - ставки после разрешения приоритета: связь, затем профиль, затем ноль.
type Rates struct {
	Hourly  float64
	Mileage float64
	Local   float64
}
