//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_test
package shift

import (
	"context"

	"driver-earnings/internal/entities"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, shiftModify entities.ShiftModify) (*entities.Shift, error)
	Update(ctx context.Context, shiftModify entities.ShiftModify) (*entities.Shift, error)
	GetActive(ctx context.Context, driverID, connectionID uuid.UUID) (*entities.Shift, error)
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
}

type ConnectionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Connection, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
