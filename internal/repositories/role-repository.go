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
	roleTable  = "roles"
	roleFields = "id, code, name, created_at, updated_at"
)

type RoleRepositoryInterface interface {
	GetRoles(ctx context.Context, filter types.PageFilter) ([]entities.Role, uint64, error)
	FindRoleByCode(ctx context.Context, code string) (*entities.Role, error)
	CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error)
	AssignRole(ctx context.Context, userCode, roleCode string) (*entities.UserRole, error)
	RevokeRole(ctx context.Context, userCode, roleCode string) error
}

type RoleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRoleRepository(storage *pgxpool.Pool, logger *zap.Logger) RoleRepositoryInterface {
	return &RoleRepository{storage: storage, logger: logger}
}

func scanRole(row pgx.Row) (*entities.Role, error) {
	var role entities.Role
	err := row.Scan(&role.ID, &role.Code, &role.Name, &role.CreatedAt, &role.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования строки роли: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) GetRoles(ctx context.Context, filter types.PageFilter) ([]entities.Role, uint64, error) {
	total, err := countRows(ctx, r.storage, psql.Select("COUNT(*)").From(roleTable))
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета ролей: %w", err)
	}
	if total == 0 {
		return []entities.Role{}, 0, nil
	}

	query, args, err := paginate(psql.Select(roleFields).From(roleTable).OrderBy("id ASC"), filter.Limit, filter.Offset, filter.GetAll).ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка ролей: %w", err)
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, 0, err
		}
		roles = append(roles, *role)
	}
	return roles, total, rows.Err()
}

func (r *RoleRepository) FindRoleByCode(ctx context.Context, code string) (*entities.Role, error) {
	query := `SELECT ` + roleFields + ` FROM roles WHERE code = $1`
	return scanRole(r.storage.QueryRow(ctx, query, code))
}

func (r *RoleRepository) CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error) {
	query := `INSERT INTO roles (code, name) VALUES ($1, $2) RETURNING ` + roleFields
	created, err := scanRole(r.storage.QueryRow(ctx, query, role.Code, role.Name))
	if err != nil {
		return nil, mapWriteError(err, "Роль")
	}
	return created, nil
}

func (r *RoleRepository) AssignRole(ctx context.Context, userCode, roleCode string) (*entities.UserRole, error) {
	query := `INSERT INTO user_roles (user_code, role_code) VALUES ($1, $2)
		RETURNING id, user_code, role_code, created_at, updated_at`
	var ur entities.UserRole
	err := r.storage.QueryRow(ctx, query, userCode, roleCode).
		Scan(&ur.ID, &ur.UserCode, &ur.RoleCode, &ur.CreatedAt, &ur.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err, "Роль пользователя")
	}
	return &ur, nil
}

func (r *RoleRepository) RevokeRole(ctx context.Context, userCode, roleCode string) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM user_roles WHERE user_code = $1 AND role_code = $2`, userCode, roleCode)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
