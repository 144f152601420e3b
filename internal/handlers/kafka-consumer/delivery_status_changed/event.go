package delivery_status_changed

import (
	"time"

	"github.com/google/uuid"
)

// statusChangedEvent - сообщение из топика статусов доставки.
type statusChangedEvent struct {
	DeliveryID  uuid.UUID  `json:"delivery_id"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
