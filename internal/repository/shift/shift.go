package shift

import (
	"context"
	"errors"
	"fmt"

	"driver-earnings/internal/entities"
	"driver-earnings/internal/repository"
	"driver-earnings/internal/service/shift"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "driver_id", "restaurant_id", "connection_id", "status", "start_time", "end_time", "created_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shiftModify entities.ShiftModify) (*entities.Shift, error) {
	shiftModifyDB := FromDomainModify(&shiftModify)

	query, args, err := qb.
		Insert("shifts").
		Columns("driver_id", "restaurant_id", "connection_id", "status", "start_time", "end_time").
		Values(
			shiftModifyDB.DriverID,
			shiftModifyDB.RestaurantID,
			shiftModifyDB.ConnectionID,
			shiftModifyDB.Status,
			shiftModifyDB.StartTime,
			shiftModifyDB.EndTime,
		).
		Suffix("RETURNING " + repository.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shift repository create error: %w", err)
	}

	shiftDB, err := scanShift(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		// shifts_one_active_idx
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shift.ErrActiveShiftExists
		}
		return nil, fmt.Errorf("unexpected shift repository create error: %w", err)
	}

	return ToDomain(shiftDB), nil
}

func (r *Repository) Update(ctx context.Context, shiftModify entities.ShiftModify) (*entities.Shift, error) {
	shiftModifyDB := FromDomainModify(&shiftModify)
	if shiftModifyDB.ID == nil {
		return nil, entities.ErrShiftNotFound
	}

	builder := qb.
		Update("shifts")

	if shiftModifyDB.Status != nil {
		builder = builder.Set("status", shiftModifyDB.Status)
	}
	if shiftModifyDB.StartTime != nil {
		builder = builder.Set("start_time", shiftModifyDB.StartTime)
	}
	if shiftModifyDB.EndTime != nil {
		builder = builder.Set("end_time", shiftModifyDB.EndTime)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": shiftModifyDB.ID}).
		Suffix("RETURNING " + repository.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shift repository update error: %w", err)
	}

	shiftDB, err := scanShift(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrShiftNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shift.ErrActiveShiftExists
		}
		return nil, fmt.Errorf("unexpected shift repository update error: %w", err)
	}

	return ToDomain(shiftDB), nil
}

func (r *Repository) GetActive(ctx context.Context, driverID, connectionID uuid.UUID) (*entities.Shift, error) {
	query, args, err := qb.
		Select(columns...).
		From("shifts").
		Where(sq.Eq{
			"driver_id":     driverID,
			"connection_id": connectionID,
			"status":        entities.ShiftActive.String(),
		}).
		OrderBy("start_time DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shift repository get active error: %w", err)
	}

	shiftDB, err := scanShift(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrShiftNotFound
		}
		return nil, fmt.Errorf("unexpected shift repository get active error: %w", err)
	}

	return ToDomain(shiftDB), nil
}

// GetByFilter возвращает смены профиля, которые могут пересекать окно:
// начатые до конца окна и ещё не закончившиеся к его началу. Окончательная
// обрезка по окну делается при подсчёте.
func (r *Repository) GetByFilter(ctx context.Context, filter entities.RecordFilter) ([]entities.Shift, error) {
	ownerColumn, err := repository.OwnerColumn(filter.Role)
	if err != nil {
		return nil, err
	}

	where := sq.And{
		sq.Eq{ownerColumn: filter.ProfileID},
		sq.Or{
			sq.Eq{"status": entities.ShiftActive.String()},
			sq.Eq{"end_time": nil},
			sq.GtOrEq{"end_time": filter.Window.Start},
		},
	}
	if filter.Window.Bounded() {
		where = append(where, sq.Lt{"start_time": filter.Window.End})
	}
	if filter.ConnectionID != nil {
		where = append(where, sq.Eq{"connection_id": filter.ConnectionID})
	}

	query, args, err := qb.
		Select(columns...).
		From("shifts").
		Where(where).
		OrderBy("start_time", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shift repository get by filter error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shift repository get by filter error: %w", err)
	}
	defer rows.Close()

	shiftsDB := make([]ShiftDB, 0, 8)
	for rows.Next() {
		shiftDB, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected shift repository get by filter error: %w", err)
		}
		shiftsDB = append(shiftsDB, *shiftDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shift repository get by filter error: %w", err)
	}

	return ToDomainList(shiftsDB), nil
}

func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM shifts WHERE status = 'active'`

	var count int64
	if err := r.querier.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected shift repository count active error: %w", err)
	}
	return count, nil
}

func scanShift(row pgx.Row) (*ShiftDB, error) {
	var shiftDB ShiftDB
	err := row.Scan(
		&shiftDB.ID,
		&shiftDB.DriverID,
		&shiftDB.RestaurantID,
		&shiftDB.ConnectionID,
		&shiftDB.Status,
		&shiftDB.StartTime,
		&shiftDB.EndTime,
		&shiftDB.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shiftDB, nil
}
