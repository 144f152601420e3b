package report

import (
	"errors"

	"driver-earnings/internal/entities"
)

var (
	ErrInvalidProfileID = errors.New("invalid profile id")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrInvalidDayPolicy = errors.New("invalid day policy")
	ErrMissingNow       = errors.New("reference time is required")

	ErrProfileNotFound    = entities.ErrProfileNotFound
	ErrConnectionNotFound = entities.ErrConnectionNotFound
	ErrConnectionNotOwned = errors.New("connection does not belong to profile")
)
