package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-system/internal/entities"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
)

const (
	worktimeSettingTable  = "general_worktime_settings"
	worktimeTable         = "general_worktimes"
	worktimeSettingFields = "id, code, name, created_at, updated_at"
	worktimeFields        = "id, worktime_code, day_of_week, start_time, end_time, break_start, break_end, work_hour, is_day_off, created_at, updated_at"
)

type WorktimeRepositoryInterface interface {
	GetSettings(ctx context.Context, filter types.PageFilter) ([]entities.GeneralWorktimeSetting, uint64, error)
	FindSettingByCode(ctx context.Context, code string) (*entities.GeneralWorktimeSetting, error)
	GetWorktimes(ctx context.Context, worktimeCode string) ([]entities.GeneralWorktime, error)
	CreateSettingInTx(ctx context.Context, tx pgx.Tx, setting entities.GeneralWorktimeSetting) (*entities.GeneralWorktimeSetting, error)
	CreateWorktimeInTx(ctx context.Context, tx pgx.Tx, worktime entities.GeneralWorktime) (*entities.GeneralWorktime, error)
}

type WorktimeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewWorktimeRepository(storage *pgxpool.Pool, logger *zap.Logger) WorktimeRepositoryInterface {
	return &WorktimeRepository{storage: storage, logger: logger}
}

func scanWorktimeSetting(row pgx.Row) (*entities.GeneralWorktimeSetting, error) {
	var s entities.GeneralWorktimeSetting
	err := row.Scan(&s.ID, &s.Code, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования worktime setting: %w", err)
	}
	return &s, nil
}

func scanWorktime(row pgx.Row) (*entities.GeneralWorktime, error) {
	var w entities.GeneralWorktime
	err := row.Scan(
		&w.ID, &w.WorktimeCode, &w.DayOfWeek, &w.StartTime, &w.EndTime,
		&w.BreakStart, &w.BreakEnd, &w.WorkHour, &w.IsDayOff, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования worktime: %w", err)
	}
	return &w, nil
}

// findWorktimesByCode возвращает дни графика по возрастанию day_of_week.
func findWorktimesByCode(ctx context.Context, db querier, worktimeCode string) ([]entities.GeneralWorktime, error) {
	query := `SELECT ` + worktimeFields + ` FROM general_worktimes WHERE worktime_code = $1 ORDER BY day_of_week ASC`
	rows, err := db.Query(ctx, query, worktimeCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	worktimes := make([]entities.GeneralWorktime, 0)
	for rows.Next() {
		w, err := scanWorktime(rows)
		if err != nil {
			return nil, err
		}
		worktimes = append(worktimes, *w)
	}
	return worktimes, rows.Err()
}

func (r *WorktimeRepository) GetSettings(ctx context.Context, filter types.PageFilter) ([]entities.GeneralWorktimeSetting, uint64, error) {
	total, err := countRows(ctx, r.storage, psql.Select("COUNT(*)").From(worktimeSettingTable))
	if err != nil || total == 0 {
		return []entities.GeneralWorktimeSetting{}, total, err
	}

	query, args, err := paginate(psql.Select(worktimeSettingFields).From(worktimeSettingTable).OrderBy("id ASC"), filter.Limit, filter.Offset, filter.GetAll).ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	settings := make([]entities.GeneralWorktimeSetting, 0)
	for rows.Next() {
		s, err := scanWorktimeSetting(rows)
		if err != nil {
			return nil, 0, err
		}
		settings = append(settings, *s)
	}
	return settings, total, rows.Err()
}

func (r *WorktimeRepository) FindSettingByCode(ctx context.Context, code string) (*entities.GeneralWorktimeSetting, error) {
	query := `SELECT ` + worktimeSettingFields + ` FROM general_worktime_settings WHERE code = $1`
	return scanWorktimeSetting(r.storage.QueryRow(ctx, query, code))
}

func (r *WorktimeRepository) GetWorktimes(ctx context.Context, worktimeCode string) ([]entities.GeneralWorktime, error) {
	return findWorktimesByCode(ctx, r.storage, worktimeCode)
}

func (r *WorktimeRepository) CreateSettingInTx(ctx context.Context, tx pgx.Tx, setting entities.GeneralWorktimeSetting) (*entities.GeneralWorktimeSetting, error) {
	query := `INSERT INTO general_worktime_settings (code, name) VALUES ($1, $2) RETURNING ` + worktimeSettingFields
	created, err := scanWorktimeSetting(tx.QueryRow(ctx, query, setting.Code, setting.Name))
	if err != nil {
		return nil, mapWriteError(err, "График")
	}
	return created, nil
}

func (r *WorktimeRepository) CreateWorktimeInTx(ctx context.Context, tx pgx.Tx, w entities.GeneralWorktime) (*entities.GeneralWorktime, error) {
	query, args, err := psql.Insert(worktimeTable).
		Columns("worktime_code", "day_of_week", "start_time", "end_time", "break_start", "break_end", "work_hour", "is_day_off").
		Values(w.WorktimeCode, w.DayOfWeek, w.StartTime, w.EndTime, w.BreakStart, w.BreakEnd, w.WorkHour, w.IsDayOff).
		Suffix("RETURNING " + worktimeFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	created, err := scanWorktime(tx.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapWriteError(err, "День графика")
	}
	return created, nil
}
