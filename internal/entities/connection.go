package entities

import (
	"time"

	"github.com/google/uuid"
)

type Connection struct {
	ID                 uuid.UUID
	DriverID           uuid.UUID
	RestaurantID       uuid.UUID
	DriverName         string
	RestaurantName     string
	RestaurantPostcode string
	Status             ConnectionStatus
	HourlyRate         *float64
	MileageRate        *float64
	LocalRate          *float64
	SubscriptionEnd    *time.Time
	CreatedAt          time.Time
}

// SubscriptionActive: подписки нет - доступа нет.
func (c *Connection) SubscriptionActive(now time.Time) bool {
	if c == nil || c.SubscriptionEnd == nil {
		return false
	}
	return now.Before(*c.SubscriptionEnd)
}

// BelongsTo проверяет, что профиль является одной из сторон связи.
func (c *Connection) BelongsTo(profileID uuid.UUID) bool {
	return c.DriverID == profileID || c.RestaurantID == profileID
}

type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionDeclined ConnectionStatus = "declined"
)

func (s ConnectionStatus) String() string {
	return string(s)
}

// ConnectionFilter без ID пропускает все записи.
type ConnectionFilter struct {
	ConnectionID *uuid.UUID
}

func (f ConnectionFilter) Matches(connectionID *uuid.UUID) bool {
	if f.ConnectionID == nil {
		return true
	}
	return connectionID != nil && *connectionID == *f.ConnectionID
}
