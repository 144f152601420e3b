//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"
	"time"

	"driver-earnings/internal/entities"
	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
}

type ConnectionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Connection, error)
}

type DeliveryRepository interface {
	GetByFilter(ctx context.Context, filter entities.RecordFilter) ([]entities.Delivery, error)
}

type ShiftRepository interface {
	GetByFilter(ctx context.Context, filter entities.RecordFilter) ([]entities.Shift, error)
}

type WindowFactory interface {
	Window(period entities.Period, policy entities.DayPolicy, now time.Time) entities.Window
}
