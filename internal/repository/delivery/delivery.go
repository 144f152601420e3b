package delivery

import (
	"context"
	"errors"
	"fmt"

	"driver-earnings/internal/entities"
	"driver-earnings/internal/repository"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "driver_id", "restaurant_id", "connection_id", "shift_id", "earning", "distance_miles",
	"address", "postcode", "status", "start_time", "completed_at", "created_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	query, args, err := qb.
		Insert("deliveries").
		Columns(
			"driver_id", "restaurant_id", "connection_id", "shift_id", "earning", "distance_miles",
			"address", "postcode", "status", "start_time",
		).
		Values(
			deliveryModifyDB.DriverID,
			deliveryModifyDB.RestaurantID,
			deliveryModifyDB.ConnectionID,
			deliveryModifyDB.ShiftID,
			deliveryModifyDB.Earning,
			deliveryModifyDB.DistanceMiles,
			stringOrEmpty(deliveryModifyDB.Address),
			stringOrEmpty(deliveryModifyDB.Postcode),
			deliveryModifyDB.Status,
			deliveryModifyDB.StartTime,
		).
		Suffix("RETURNING " + repository.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		// связь или профиль удалили между проверкой и вставкой
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

// GetByIDForUpdate блокирует строку до конца транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Delivery, error) {
	query, args, err := qb.
		Select(columns...).
		From("deliveries").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)
	if deliveryModifyDB.ID == nil {
		return nil, entities.ErrDeliveryNotFound
	}

	builder := qb.
		Update("deliveries")

	// опционные поля
	if deliveryModifyDB.ShiftID != nil {
		builder = builder.Set("shift_id", deliveryModifyDB.ShiftID)
	}
	if deliveryModifyDB.Earning != nil {
		builder = builder.Set("earning", deliveryModifyDB.Earning)
	}
	if deliveryModifyDB.DistanceMiles != nil {
		builder = builder.Set("distance_miles", deliveryModifyDB.DistanceMiles)
	}
	if deliveryModifyDB.Address != nil {
		builder = builder.Set("address", deliveryModifyDB.Address)
	}
	if deliveryModifyDB.Postcode != nil {
		builder = builder.Set("postcode", deliveryModifyDB.Postcode)
	}
	if deliveryModifyDB.Status != nil {
		builder = builder.Set("status", deliveryModifyDB.Status)
	}
	if deliveryModifyDB.CompletedAt != nil {
		builder = builder.Set("completed_at", deliveryModifyDB.CompletedAt)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": deliveryModifyDB.ID}).
		Suffix("RETURNING " + repository.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

// GetByFilter возвращает доставки профиля, созданные внутри окна.
func (r *Repository) GetByFilter(ctx context.Context, filter entities.RecordFilter) ([]entities.Delivery, error) {
	ownerColumn, err := repository.OwnerColumn(filter.Role)
	if err != nil {
		return nil, err
	}

	where := sq.And{
		sq.Eq{ownerColumn: filter.ProfileID},
		sq.GtOrEq{"created_at": filter.Window.Start},
	}
	if filter.Window.Bounded() {
		where = append(where, sq.Lt{"created_at": filter.Window.End})
	}
	if filter.ConnectionID != nil {
		where = append(where, sq.Eq{"connection_id": filter.ConnectionID})
	}

	query, args, err := qb.
		Select(columns...).
		From("deliveries").
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get by filter error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get by filter error: %w", err)
	}
	defer rows.Close()

	deliveriesDB := make([]DeliveryDB, 0, 16)
	for rows.Next() {
		deliveryDB, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository get by filter error: %w", err)
		}
		deliveriesDB = append(deliveriesDB, *deliveryDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get by filter error: %w", err)
	}

	return ToDomainList(deliveriesDB), nil
}

func (r *Repository) CountOngoing(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM deliveries WHERE status = 'ongoing'`

	var count int64
	if err := r.querier.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected delivery repository count ongoing error: %w", err)
	}
	return count, nil
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var deliveryDB DeliveryDB
	err := row.Scan(
		&deliveryDB.ID,
		&deliveryDB.DriverID,
		&deliveryDB.RestaurantID,
		&deliveryDB.ConnectionID,
		&deliveryDB.ShiftID,
		&deliveryDB.Earning,
		&deliveryDB.DistanceMiles,
		&deliveryDB.Address,
		&deliveryDB.Postcode,
		&deliveryDB.Status,
		&deliveryDB.StartTime,
		&deliveryDB.CompletedAt,
		&deliveryDB.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryDB, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
