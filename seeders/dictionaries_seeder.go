package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func seedRoles(ctx context.Context, tx pgx.Tx, logger *zap.Logger) error {
	logger.Info("  - Наполнение таблицы 'roles'...")
	query := `INSERT INTO roles (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`
	for _, r := range rolesData {
		if _, err := tx.Exec(ctx, query, r.Code, r.Name); err != nil {
			return fmt.Errorf("роль %s: %w", r.Code, err)
		}
	}
	return nil
}

func seedDepartments(ctx context.Context, tx pgx.Tx, logger *zap.Logger) error {
	logger.Info("  - Наполнение таблицы 'departments'...")
	query := `INSERT INTO departments (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`
	for _, d := range departmentsData {
		if _, err := tx.Exec(ctx, query, d.Code, d.Name); err != nil {
			return fmt.Errorf("отдел %s: %w", d.Code, err)
		}
	}
	return nil
}

func seedLeaveBenefits(ctx context.Context, tx pgx.Tx, logger *zap.Logger) error {
	logger.Info("  - Наполнение таблицы 'leave_benefits'...")
	query := `INSERT INTO leave_benefits (code, name, days_per_year) VALUES ($1, $2, $3) ON CONFLICT (code) DO NOTHING`
	for _, lb := range leaveBenefitsData {
		if _, err := tx.Exec(ctx, query, lb.Code, lb.Name, lb.DaysPerYear); err != nil {
			return fmt.Errorf("отпуск %s: %w", lb.Code, err)
		}
	}
	return nil
}

func seedWorktime(ctx context.Context, tx pgx.Tx, logger *zap.Logger) error {
	logger.Info("  - Наполнение графика работы по умолчанию...")
	if _, err := tx.Exec(ctx,
		`INSERT INTO general_worktime_settings (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
		officeWorktimeCode, officeWorktimeName,
	); err != nil {
		return fmt.Errorf("настройка графика: %w", err)
	}

	query := `INSERT INTO general_worktimes
		(worktime_code, day_of_week, start_time, end_time, break_start, break_end, work_hour, is_day_off)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (worktime_code, day_of_week) DO NOTHING`
	for _, d := range officeWeek {
		if _, err := tx.Exec(ctx, query,
			officeWorktimeCode, d.DayOfWeek, d.StartTime, d.EndTime, d.BreakStart, d.BreakEnd, d.WorkHour, d.IsDayOff,
		); err != nil {
			return fmt.Errorf("день графика %d: %w", d.DayOfWeek, err)
		}
	}
	return nil
}

// SeedDictionaries наполняет справочники одной транзакцией; повторный запуск ничего не меняет.
func SeedDictionaries(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	logger.Info("▶️  Запуск наполнения справочников...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, seed := range []func(context.Context, pgx.Tx, *zap.Logger) error{
		seedRoles, seedDepartments, seedLeaveBenefits, seedWorktime,
	} {
		if err := seed(ctx, tx, logger); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	logger.Info("✅ Наполнение справочников завершено!")
	return nil
}
