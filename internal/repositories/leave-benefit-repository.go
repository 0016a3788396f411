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
	leaveBenefitTable  = "leave_benefits"
	leaveBenefitFields = "id, code, name, days_per_year, created_at, updated_at"
)

type LeaveBenefitRepositoryInterface interface {
	GetLeaveBenefits(ctx context.Context, filter types.PageFilter) ([]entities.LeaveBenefit, uint64, error)
	FindLeaveBenefitByCode(ctx context.Context, code string) (*entities.LeaveBenefit, error)
	CreateLeaveBenefit(ctx context.Context, benefit entities.LeaveBenefit) (*entities.LeaveBenefit, error)
}

type LeaveBenefitRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewLeaveBenefitRepository(storage *pgxpool.Pool, logger *zap.Logger) LeaveBenefitRepositoryInterface {
	return &LeaveBenefitRepository{storage: storage, logger: logger}
}

func scanLeaveBenefit(row pgx.Row) (*entities.LeaveBenefit, error) {
	var lb entities.LeaveBenefit
	err := row.Scan(&lb.ID, &lb.Code, &lb.Name, &lb.DaysPerYear, &lb.CreatedAt, &lb.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования leave_benefit: %w", err)
	}
	return &lb, nil
}

func (r *LeaveBenefitRepository) GetLeaveBenefits(ctx context.Context, filter types.PageFilter) ([]entities.LeaveBenefit, uint64, error) {
	total, err := countRows(ctx, r.storage, psql.Select("COUNT(*)").From(leaveBenefitTable))
	if err != nil || total == 0 {
		return []entities.LeaveBenefit{}, total, err
	}

	builder := paginate(psql.Select(leaveBenefitFields).From(leaveBenefitTable).OrderBy("id ASC"), filter.Limit, filter.Offset, filter.GetAll)
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	benefits := make([]entities.LeaveBenefit, 0)
	for rows.Next() {
		lb, err := scanLeaveBenefit(rows)
		if err != nil {
			return nil, 0, err
		}
		benefits = append(benefits, *lb)
	}
	return benefits, total, rows.Err()
}

func (r *LeaveBenefitRepository) FindLeaveBenefitByCode(ctx context.Context, code string) (*entities.LeaveBenefit, error) {
	query := `SELECT ` + leaveBenefitFields + ` FROM leave_benefits WHERE code = $1`
	return scanLeaveBenefit(r.storage.QueryRow(ctx, query, code))
}

func (r *LeaveBenefitRepository) CreateLeaveBenefit(ctx context.Context, benefit entities.LeaveBenefit) (*entities.LeaveBenefit, error) {
	query := `INSERT INTO leave_benefits (code, name, days_per_year) VALUES ($1, $2, $3) RETURNING ` + leaveBenefitFields
	created, err := scanLeaveBenefit(r.storage.QueryRow(ctx, query, benefit.Code, benefit.Name, benefit.DaysPerYear))
	if err != nil {
		return nil, mapWriteError(err, "Льгота")
	}
	return created, nil
}
