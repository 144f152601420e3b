package delivery

import (
	"errors"

	"driver-earnings/internal/entities"
)

var (
	ErrInvalidProfileID    = errors.New("invalid profile id")
	ErrInvalidConnectionID = errors.New("invalid connection id")
	ErrInvalidDeliveryID   = errors.New("invalid delivery id")
	ErrInvalidDistance     = errors.New("invalid distance")

	ErrNotDriver             = errors.New("only drivers can log deliveries")
	ErrConnectionNotOwned    = errors.New("connection does not belong to driver")
	ErrConnectionNotAccepted = errors.New("connection is not accepted")
	ErrSubscriptionInactive  = errors.New("connection subscription is not active")
	ErrAlreadyCompleted      = errors.New("delivery already completed")

	ErrProfileNotFound    = entities.ErrProfileNotFound
	ErrConnectionNotFound = entities.ErrConnectionNotFound
	ErrDeliveryNotFound   = entities.ErrDeliveryNotFound
)
