//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"driver-earnings/internal/entities"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
}

type ConnectionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Connection, error)
}

type ShiftRepository interface {
	GetActive(ctx context.Context, driverID, connectionID uuid.UUID) (*entities.Shift, error)
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
