package connection

import (
	"context"
	"errors"
	"fmt"

	"driver-earnings/internal/entities"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Connection, error) {
	query := `
		SELECT
			c.id, c.driver_id, c.restaurant_id, d.name, r.name, r.postcode,
			c.status, c.hourly_rate, c.mileage_rate, c.local_rate, c.subscription_end, c.created_at
		FROM connections c
		JOIN profiles d ON d.id = c.driver_id
		JOIN profiles r ON r.id = c.restaurant_id
		WHERE c.id = $1`

	var connectionDB ConnectionDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&connectionDB.ID,
			&connectionDB.DriverID,
			&connectionDB.RestaurantID,
			&connectionDB.DriverName,
			&connectionDB.RestaurantName,
			&connectionDB.RestaurantPostcode,
			&connectionDB.Status,
			&connectionDB.HourlyRate,
			&connectionDB.MileageRate,
			&connectionDB.LocalRate,
			&connectionDB.SubscriptionEnd,
			&connectionDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("unexpected connection repository getbyid error: %w", err)
	}

	return ToDomain(&connectionDB), nil
}
