package services

import (
	"context"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	"hr-system/pkg/types"
)

type LeaveBenefitServiceInterface interface {
	GetLeaveBenefits(ctx context.Context, filter types.PageFilter) (types.Page[entities.LeaveBenefit], error)
	FindLeaveBenefit(ctx context.Context, code string) (*entities.LeaveBenefit, error)
	CreateLeaveBenefit(ctx context.Context, payload dto.CreateLeaveBenefitDTO) (*entities.LeaveBenefit, error)
}

type LeaveBenefitService struct {
	leaveBenefitRepository repositories.LeaveBenefitRepositoryInterface
	logger                 *zap.Logger
}

func NewLeaveBenefitService(leaveBenefitRepository repositories.LeaveBenefitRepositoryInterface, logger *zap.Logger) LeaveBenefitServiceInterface {
	return &LeaveBenefitService{leaveBenefitRepository: leaveBenefitRepository, logger: logger}
}

func (s *LeaveBenefitService) GetLeaveBenefits(ctx context.Context, filter types.PageFilter) (types.Page[entities.LeaveBenefit], error) {
	benefits, total, err := s.leaveBenefitRepository.GetLeaveBenefits(ctx, filter)
	if err != nil {
		s.logger.Error("Ошибка при получении типов отпусков", zap.Error(err))
		return types.Page[entities.LeaveBenefit]{}, err
	}
	return types.NewPage(benefits, total, filter), nil
}

func (s *LeaveBenefitService) FindLeaveBenefit(ctx context.Context, code string) (*entities.LeaveBenefit, error) {
	return s.leaveBenefitRepository.FindLeaveBenefitByCode(ctx, code)
}

func (s *LeaveBenefitService) CreateLeaveBenefit(ctx context.Context, payload dto.CreateLeaveBenefitDTO) (*entities.LeaveBenefit, error) {
	benefit, err := s.leaveBenefitRepository.CreateLeaveBenefit(ctx, entities.LeaveBenefit{
		Code:        payload.Code,
		Name:        payload.Name,
		DaysPerYear: payload.DaysPerYear,
	})
	if err != nil {
		s.logger.Error("Ошибка при создании типа отпуска", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Тип отпуска создан", zap.String("code", benefit.Code))
	return benefit, nil
}
