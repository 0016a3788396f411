package seeders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-system/pkg/utils"
)

// SeedAdmin создаёт администратора с ролями ADMIN и HR, если его ещё нет.
func SeedAdmin(ctx context.Context, db *pgxpool.Pool, password string, logger *zap.Logger) error {
	logger.Info("  - Создание пользователя 'Администратор'...")
	if password == "" {
		return errors.New("пароль администратора не задан")
	}

	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", adminEmail).Scan(&userID)
	if err == nil {
		logger.Info("    - Администратор уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке существования пользователя: %w", err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO users (code, name, email, password, department, worktime_code, leave_benefit_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.Exec(ctx, query,
		adminCode, adminName, adminEmail, hashedPassword, "HQ", officeWorktimeCode, "STANDARD",
	); err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	for _, role := range []string{"ADMIN", "HR"} {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_roles (user_code, role_code) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			adminCode, role,
		); err != nil {
			return fmt.Errorf("ошибка при привязке роли %s: %w", role, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	logger.Info("    - Администратор успешно создан", zap.String("email", adminEmail))
	return nil
}
