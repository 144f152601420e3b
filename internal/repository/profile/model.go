package profile

import "github.com/google/uuid"

type ProfileDB struct {
	ID                 uuid.UUID
	Name               string
	Role               string
	HourlyRate         *float64
	MileageRate        *float64
	LocalRate          *float64
	ActiveConnectionID *uuid.UUID
}
