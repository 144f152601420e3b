package profile

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

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	query := `SELECT id, name, role, hourly_rate, mileage_rate, local_rate, active_connection_id
		FROM profiles
		WHERE id = $1`

	var profileDB ProfileDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&profileDB.ID,
			&profileDB.Name,
			&profileDB.Role,
			&profileDB.HourlyRate,
			&profileDB.MileageRate,
			&profileDB.LocalRate,
			&profileDB.ActiveConnectionID,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected profile repository getbyid error: %w", err)
	}

	return ToDomain(&profileDB), nil
}
