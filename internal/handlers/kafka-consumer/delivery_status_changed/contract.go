//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_changed_test
package delivery_status_changed

import (
	"context"
	"time"

	"driver-earnings/internal/entities"
	"driver-earnings/pkg/logger"
	"github.com/google/uuid"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CompleteDelivery(ctx context.Context, id uuid.UUID, completedAt time.Time) (*entities.Delivery, error)
}
