package services

import (
	"context"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	"hr-system/pkg/types"
)

type DepartmentServiceInterface interface {
	GetDepartments(ctx context.Context, filter types.PageFilter) (types.Page[entities.Department], error)
	FindDepartment(ctx context.Context, code string) (*entities.Department, error)
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, code string, payload dto.UpdateDepartmentDTO) (*entities.Department, error)
}

type DepartmentService struct {
	*BaseService
	departmentRepository repositories.DepartmentRepositoryInterface
	userRepository       repositories.UserRepositoryInterface
}

func NewDepartmentService(
	departmentRepository repositories.DepartmentRepositoryInterface,
	userRepository repositories.UserRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) DepartmentServiceInterface {
	return &DepartmentService{
		BaseService:          NewBaseService(cache, logger),
		departmentRepository: departmentRepository,
		userRepository:       userRepository,
	}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, filter types.PageFilter) (types.Page[entities.Department], error) {
	departments, total, err := s.departmentRepository.GetDepartments(ctx, filter)
	if err != nil {
		s.logger.Error("Ошибка при получении списка департаментов", zap.Error(err))
		return types.Page[entities.Department]{}, err
	}
	return types.NewPage(departments, total, filter), nil
}

func (s *DepartmentService) FindDepartment(ctx context.Context, code string) (*entities.Department, error) {
	return s.departmentRepository.FindDepartmentByCode(ctx, code)
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	department, err := s.departmentRepository.CreateDepartment(ctx, entities.Department{Code: payload.Code, Name: payload.Name})
	if err != nil {
		s.logger.Error("Ошибка при создании департамента", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Департамент успешно создан", zap.String("code", department.Code))
	return department, nil
}

// UpdateDepartment меняет название. Код департамента неизменяем: на него ссылаются пользователи.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, code string, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	department, err := s.departmentRepository.UpdateDepartment(ctx, code, payload.Name)
	if err != nil {
		s.logger.Error("Ошибка при обновлении департамента", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	if s.cache != nil {
		// название отдела входит в owner-info его сотрудников
		if keys := referencedOwnersInfoKeys(ctx, s.userRepository, entities.UserReferenceConditions{Department: &code}, s.logger); len(keys) > 0 {
			s.CacheDel(ctx, keys...)
		}
	}

	s.logger.Info("Департамент успешно обновлен", zap.String("code", code))
	return department, nil
}
