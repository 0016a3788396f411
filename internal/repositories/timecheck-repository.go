package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-system/internal/entities"
	apperrors "hr-system/pkg/errors"
)

const (
	timecheckTable  = "timechecks"
	timecheckFields = "id, user_code, check_date, check_in_time, check_out_time, miss_check_in, miss_check_out, " +
		"miss_check_in_min, miss_check_out_min, is_leave_benefit, leave_hour, work_hour, timezone, is_day_off, is_active, created_at, updated_at"
)

type TimecheckRepositoryInterface interface {
	CreateTimecheck(ctx context.Context, timecheck entities.Timecheck) (*entities.Timecheck, error)
	FindTimecheck(ctx context.Context, id uint64) (*entities.Timecheck, error)
	UpdateTimecheck(ctx context.Context, timecheck entities.Timecheck) (*entities.Timecheck, error)
	DeactivateTimecheck(ctx context.Context, id uint64) error
}

type TimecheckRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTimecheckRepository(storage *pgxpool.Pool, logger *zap.Logger) TimecheckRepositoryInterface {
	return &TimecheckRepository{storage: storage, logger: logger}
}

func scanTimecheck(row pgx.Row) (*entities.Timecheck, error) {
	var t entities.Timecheck
	err := row.Scan(
		&t.ID, &t.UserCode, &t.CheckDate, &t.CheckInTime, &t.CheckOutTime, &t.MissCheckIn, &t.MissCheckOut,
		&t.MissCheckInMin, &t.MissCheckOutMin, &t.IsLeaveBenefit, &t.LeaveHour, &t.WorkHour, &t.Timezone,
		&t.IsDayOff, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования timecheck: %w", err)
	}
	return &t, nil
}

func (r *TimecheckRepository) CreateTimecheck(ctx context.Context, t entities.Timecheck) (*entities.Timecheck, error) {
	query, args, err := psql.Insert(timecheckTable).
		Columns(
			"user_code", "check_date", "check_in_time", "check_out_time", "miss_check_in", "miss_check_out",
			"miss_check_in_min", "miss_check_out_min", "is_leave_benefit", "leave_hour", "work_hour", "timezone", "is_day_off",
		).
		Values(
			t.UserCode, t.CheckDate, t.CheckInTime, t.CheckOutTime, t.MissCheckIn, t.MissCheckOut,
			t.MissCheckInMin, t.MissCheckOutMin, t.IsLeaveBenefit, t.LeaveHour, t.WorkHour, t.Timezone, t.IsDayOff,
		).
		Suffix("RETURNING " + timecheckFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	created, err := scanTimecheck(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapWriteError(err, "Отметка за этот день")
	}
	return created, nil
}

// FindTimecheck ищет только активные отметки.
func (r *TimecheckRepository) FindTimecheck(ctx context.Context, id uint64) (*entities.Timecheck, error) {
	query := `SELECT ` + timecheckFields + ` FROM timechecks WHERE id = $1 AND is_active = TRUE`
	return scanTimecheck(r.storage.QueryRow(ctx, query, id))
}

func (r *TimecheckRepository) UpdateTimecheck(ctx context.Context, t entities.Timecheck) (*entities.Timecheck, error) {
	query, args, err := sq.Update(timecheckTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": t.ID, "is_active": true}).
		Set("check_in_time", t.CheckInTime).
		Set("check_out_time", t.CheckOutTime).
		Set("miss_check_in", t.MissCheckIn).
		Set("miss_check_out", t.MissCheckOut).
		Set("miss_check_in_min", t.MissCheckInMin).
		Set("miss_check_out_min", t.MissCheckOutMin).
		Set("is_leave_benefit", t.IsLeaveBenefit).
		Set("leave_hour", t.LeaveHour).
		Set("work_hour", t.WorkHour).
		Set("is_day_off", t.IsDayOff).
		Set("updated_at", sq.Expr("NOW()")).
		Suffix("RETURNING " + timecheckFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanTimecheck(r.storage.QueryRow(ctx, query, args...))
}

func (r *TimecheckRepository) DeactivateTimecheck(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `UPDATE timechecks SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
