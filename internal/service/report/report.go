package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"driver-earnings/internal/entities"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	profiles    ProfileRepository
	connections ConnectionRepository
	deliveries  DeliveryRepository
	shifts      ShiftRepository
	windows     WindowFactory
}

func New(
	profiles ProfileRepository,
	connections ConnectionRepository,
	deliveries DeliveryRepository,
	shifts ShiftRepository,
	windows WindowFactory,
) *Service {
	return &Service{
		profiles:    profiles,
		connections: connections,
		deliveries:  deliveries,
		shifts:      shifts,
		windows:     windows,
	}
}

func (s *Service) Report(ctx context.Context, query entities.ReportQuery) (*entities.Report, error) {
	if !isValidProfileID(query.ProfileID) {
		return nil, ErrInvalidProfileID
	}
	if !isValidPeriod(query.Period.String()) {
		return nil, ErrInvalidPeriod
	}
	if !isValidDayPolicy(query.Policy.String()) {
		return nil, ErrInvalidDayPolicy
	}
	if query.Now.IsZero() {
		return nil, ErrMissingNow
	}

	profile, connection, err := s.loadParties(ctx, query.ProfileID, query.ConnectionID)
	if err != nil {
		return nil, err
	}

	window := s.windows.Window(query.Period, query.Policy, query.Now)
	input, err := s.loadInput(ctx, profile, connection, query.ConnectionID, window, query.Now)
	if err != nil {
		return nil, err
	}
	input.Period = query.Period

	started := time.Now()
	report := Build(*input)
	observe("report", query.Period.String(), started, input)

	return &report, nil
}

// Dashboard - итоги текущего рабочего дня. Без явной связи берётся активная связь профиля.
func (s *Service) Dashboard(ctx context.Context, query entities.DashboardQuery) (*entities.Dashboard, error) {
	if !isValidProfileID(query.ProfileID) {
		return nil, ErrInvalidProfileID
	}
	if query.Now.IsZero() {
		return nil, ErrMissingNow
	}

	profile, err := s.profiles.GetByID(ctx, query.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	connectionID := query.ConnectionID
	if connectionID == nil {
		connectionID = profile.ActiveConnectionID
	}

	connection, err := s.ownedConnection(ctx, profile.ID, connectionID)
	if err != nil {
		return nil, err
	}

	window := s.windows.Window(entities.PeriodToday, entities.BusinessDay, query.Now)
	input, err := s.loadInput(ctx, profile, connection, connectionID, window, query.Now)
	if err != nil {
		return nil, err
	}
	input.Period = entities.PeriodToday

	started := time.Now()
	dashboard := BuildDashboard(*input)
	observe("dashboard", entities.PeriodToday.String(), started, input)

	return &dashboard, nil
}

func (s *Service) loadParties(ctx context.Context, profileID uuid.UUID, connectionID *uuid.UUID) (*entities.Profile, *entities.Connection, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, nil, fmt.Errorf("get profile: %w", err)
	}

	connection, err := s.ownedConnection(ctx, profile.ID, connectionID)
	if err != nil {
		return nil, nil, err
	}

	return profile, connection, nil
}

func (s *Service) ownedConnection(ctx context.Context, profileID uuid.UUID, connectionID *uuid.UUID) (*entities.Connection, error) {
	if connectionID == nil {
		return nil, nil
	}

	connection, err := s.connections.GetByID(ctx, *connectionID)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	if !connection.BelongsTo(profileID) {
		return nil, ErrConnectionNotOwned
	}
	return connection, nil
}

// loadInput читает доставки и смены параллельно, как это делал клиент.
func (s *Service) loadInput(
	ctx context.Context,
	profile *entities.Profile,
	connection *entities.Connection,
	connectionID *uuid.UUID,
	window entities.Window,
	now time.Time,
) (*entities.ReportInput, error) {
	filter := entities.RecordFilter{
		ProfileID:    profile.ID,
		Role:         profile.Role,
		ConnectionID: connectionID,
		Window:       window,
	}

	var (
		deliveries []entities.Delivery
		shifts     []entities.Shift
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		deliveries, err = s.deliveries.GetByFilter(groupCtx, filter)
		if err != nil {
			return fmt.Errorf("get deliveries: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		shifts, err = s.shifts.GetByFilter(groupCtx, filter)
		if err != nil {
			return fmt.Errorf("get shifts: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("load records timed out: %w", err)
		}
		return nil, err
	}

	return &entities.ReportInput{
		Window:     window,
		Filter:     entities.ConnectionFilter{ConnectionID: connectionID},
		Deliveries: deliveries,
		Shifts:     shifts,
		Connection: connection,
		Profile:    profile,
		Now:        now,
	}, nil
}

func observe(kind, period string, started time.Time, input *entities.ReportInput) {
	ReportBuildDuration.WithLabelValues(kind, period).Observe(time.Since(started).Seconds())
	ReportRecordsLoaded.WithLabelValues(kind, "delivery").Observe(float64(len(input.Deliveries)))
	ReportRecordsLoaded.WithLabelValues(kind, "shift").Observe(float64(len(input.Shifts)))
}
