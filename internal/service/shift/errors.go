package shift

import (
	"errors"

	"driver-earnings/internal/entities"
)

var (
	ErrInvalidProfileID    = errors.New("invalid profile id")
	ErrInvalidConnectionID = errors.New("invalid connection id")

	ErrNotDriver             = errors.New("only drivers can work shifts")
	ErrConnectionNotOwned    = errors.New("connection does not belong to driver")
	ErrConnectionNotAccepted = errors.New("connection is not accepted")
	ErrActiveShiftExists     = errors.New("active shift already exists")

	ErrProfileNotFound    = entities.ErrProfileNotFound
	ErrConnectionNotFound = entities.ErrConnectionNotFound
)
