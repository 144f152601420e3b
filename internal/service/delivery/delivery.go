package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"driver-earnings/internal/entities"
	"driver-earnings/internal/service/report"
	"github.com/google/uuid"
)

type Delivery struct {
	repository  Repository
	profiles    ProfileRepository
	connections ConnectionRepository
	shifts      ShiftRepository
	txManager   TxManager
}

func New(
	repository Repository,
	profiles ProfileRepository,
	connections ConnectionRepository,
	shifts ShiftRepository,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:  repository,
		profiles:    profiles,
		connections: connections,
		shifts:      shifts,
		txManager:   txManager,
	}
}

// LogDelivery записывает новую доставку водителя по связи. Заработок
// рассчитывается сразу по ставкам связи или профиля, доставка привязывается
// к активной смене, если она есть.
func (d *Delivery) LogDelivery(ctx context.Context, create entities.DeliveryCreate) (*entities.Delivery, error) {
	if !isValidID(create.ProfileID) {
		return nil, ErrInvalidProfileID
	}
	if !isValidID(create.ConnectionID) {
		return nil, ErrInvalidConnectionID
	}
	if !isValidDistance(create.DistanceMiles) {
		return nil, ErrInvalidDistance
	}

	profile, err := d.profiles.GetByID(ctx, create.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile.Role != entities.RoleDriver {
		return nil, ErrNotDriver
	}

	connection, err := d.connections.GetByID(ctx, create.ConnectionID)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	if connection.DriverID != profile.ID {
		return nil, ErrConnectionNotOwned
	}
	if connection.Status != entities.ConnectionAccepted {
		return nil, ErrConnectionNotAccepted
	}

	now := time.Now().UTC()
	if !connection.SubscriptionActive(now) {
		return nil, ErrSubscriptionInactive
	}

	earning, err := QuoteEarning(report.ResolveRates(connection, profile), create.DistanceMiles)
	if err != nil {
		return nil, err
	}

	var shiftID *uuid.UUID
	shift, err := d.shifts.GetActive(ctx, profile.ID, connection.ID)
	switch {
	case err == nil:
		shiftID = &shift.ID
	case errors.Is(err, entities.ErrShiftNotFound):
	default:
		return nil, fmt.Errorf("get active shift: %w", err)
	}

	status := entities.DeliveryOngoing
	deliveryModify := entities.DeliveryModify{
		DriverID:      &profile.ID,
		RestaurantID:  &connection.RestaurantID,
		ConnectionID:  &connection.ID,
		ShiftID:       shiftID,
		Earning:       &earning,
		DistanceMiles: &create.DistanceMiles,
		Address:       &create.Address,
		Postcode:      &create.Postcode,
		Status:        &status,
		StartTime:     &now,
	}

	delivery, err := d.repository.Create(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return delivery, nil
}

// CompleteDelivery переводит доставку из ongoing в completed. Нулевое
// completedAt означает "сейчас".
func (d *Delivery) CompleteDelivery(ctx context.Context, id uuid.UUID, completedAt time.Time) (*entities.Delivery, error) {
	if !isValidID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	var completed *entities.Delivery
	err := d.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		if delivery.Status == entities.DeliveryCompleted {
			return ErrAlreadyCompleted
		}

		status := entities.DeliveryCompleted
		completed, err = d.repository.Update(ctx, entities.DeliveryModify{
			ID:          &id,
			Status:      &status,
			CompletedAt: &completedAt,
		})
		if err != nil {
			return fmt.Errorf("update delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}
