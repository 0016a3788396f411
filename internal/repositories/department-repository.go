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
	"hr-system/pkg/types"
)

const (
	departmentTable  = "departments"
	departmentFields = "id, code, name, created_at, updated_at"
)

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, filter types.PageFilter) ([]entities.Department, uint64, error)
	FindDepartmentByCode(ctx context.Context, code string) (*entities.Department, error)
	CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, code string, name *string) (*entities.Department, error)
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.ID, &d.Code, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования department: %w", err)
	}
	return &d, nil
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, filter types.PageFilter) ([]entities.Department, uint64, error) {
	total, err := countRows(ctx, r.storage, psql.Select("COUNT(*)").From(departmentTable))
	if err != nil || total == 0 {
		return []entities.Department{}, total, err
	}

	builder := paginate(psql.Select(departmentFields).From(departmentTable).OrderBy("id ASC"), filter.Limit, filter.Offset, filter.GetAll)
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	departments := make([]entities.Department, 0)
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, *dept)
	}
	return departments, total, rows.Err()
}

func (r *DepartmentRepository) FindDepartmentByCode(ctx context.Context, code string) (*entities.Department, error) {
	query := `SELECT ` + departmentFields + ` FROM departments WHERE code = $1`
	return scanDepartment(r.storage.QueryRow(ctx, query, code))
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error) {
	query := `INSERT INTO departments (code, name) VALUES ($1, $2) RETURNING ` + departmentFields
	created, err := scanDepartment(r.storage.QueryRow(ctx, query, department.Code, department.Name))
	if err != nil {
		return nil, mapWriteError(err, "Департамент")
	}
	return created, nil
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, code string, name *string) (*entities.Department, error) {
	if name == nil {
		return r.FindDepartmentByCode(ctx, code)
	}
	query, args, err := sq.Update(departmentTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"code": code}).
		Set("name", *name).
		Set("updated_at", sq.Expr("NOW()")).
		Suffix("RETURNING " + departmentFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanDepartment(r.storage.QueryRow(ctx, query, args...))
}
