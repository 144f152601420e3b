package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"driver-earnings/internal/entities"
	"github.com/google/uuid"
)

type Shift struct {
	repository  Repository
	profiles    ProfileRepository
	connections ConnectionRepository
	txManager   TxManager
}

func New(
	repository Repository,
	profiles ProfileRepository,
	connections ConnectionRepository,
	txManager TxManager,
) *Shift {
	return &Shift{
		repository:  repository,
		profiles:    profiles,
		connections: connections,
		txManager:   txManager,
	}
}

// ToggleShift завершает активную смену водителя по связи, а если её нет,
// начинает новую. На пару водитель-связь активной может быть только одна смена.
func (s *Shift) ToggleShift(ctx context.Context, profileID, connectionID uuid.UUID, now time.Time) (*entities.ShiftToggle, error) {
	if !isValidID(profileID) {
		return nil, ErrInvalidProfileID
	}
	if !isValidID(connectionID) {
		return nil, ErrInvalidConnectionID
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var toggle entities.ShiftToggle
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		connection, err := s.driverConnection(ctx, profileID, connectionID)
		if err != nil {
			return err
		}

		active, err := s.repository.GetActive(ctx, profileID, connectionID)
		switch {
		case err == nil:
			ended, err := s.endShift(ctx, active.ID, now)
			if err != nil {
				return err
			}
			toggle = entities.ShiftToggle{Shift: *ended, Action: entities.ShiftStopped}
			return nil
		case errors.Is(err, entities.ErrShiftNotFound):
			// уже идущую смену можно закончить и на отозванной связи, начать - только на принятой
			if connection.Status != entities.ConnectionAccepted {
				return ErrConnectionNotAccepted
			}
			started, err := s.startShift(ctx, connection, now)
			if err != nil {
				return err
			}
			toggle = entities.ShiftToggle{Shift: *started, Action: entities.ShiftStarted}
			return nil
		default:
			return fmt.Errorf("get active shift: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return &toggle, nil
}

func (s *Shift) driverConnection(ctx context.Context, profileID, connectionID uuid.UUID) (*entities.Connection, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile.Role != entities.RoleDriver {
		return nil, ErrNotDriver
	}

	connection, err := s.connections.GetByID(ctx, connectionID)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	if connection.DriverID != profile.ID {
		return nil, ErrConnectionNotOwned
	}
	return connection, nil
}

func (s *Shift) startShift(ctx context.Context, connection *entities.Connection, now time.Time) (*entities.Shift, error) {
	status := entities.ShiftActive
	started, err := s.repository.Create(ctx, entities.ShiftModify{
		DriverID:     &connection.DriverID,
		RestaurantID: &connection.RestaurantID,
		ConnectionID: &connection.ID,
		Status:       &status,
		StartTime:    &now,
	})
	if err != nil {
		return nil, fmt.Errorf("start shift: %w", err)
	}
	return started, nil
}

func (s *Shift) endShift(ctx context.Context, id uuid.UUID, now time.Time) (*entities.Shift, error) {
	status := entities.ShiftEnded
	ended, err := s.repository.Update(ctx, entities.ShiftModify{
		ID:      &id,
		Status:  &status,
		EndTime: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("end shift: %w", err)
	}
	return ended, nil
}
