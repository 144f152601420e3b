//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_toggle_post_test
package shift_toggle_post

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
	ToggleShift(ctx context.Context, profileID, connectionID uuid.UUID, now time.Time) (*entities.ShiftToggle, error)
}
