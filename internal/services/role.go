package services

import (
	"context"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	"hr-system/pkg/types"
)

type RoleServiceInterface interface {
	GetRoles(ctx context.Context, filter types.PageFilter) (types.Page[entities.Role], error)
	CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*entities.Role, error)
	AssignRole(ctx context.Context, userCode, roleCode string) (*entities.UserRole, error)
	RevokeRole(ctx context.Context, userCode, roleCode string) error
}

type RoleService struct {
	roleRepository repositories.RoleRepositoryInterface
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewRoleService(roleRepository repositories.RoleRepositoryInterface, userRepository repositories.UserRepositoryInterface, logger *zap.Logger) RoleServiceInterface {
	return &RoleService{roleRepository: roleRepository, userRepository: userRepository, logger: logger}
}

func (s *RoleService) GetRoles(ctx context.Context, filter types.PageFilter) (types.Page[entities.Role], error) {
	roles, total, err := s.roleRepository.GetRoles(ctx, filter)
	if err != nil {
		s.logger.Error("Ошибка при получении списка ролей", zap.Error(err))
		return types.Page[entities.Role]{}, err
	}
	return types.NewPage(roles, total, filter), nil
}

func (s *RoleService) CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*entities.Role, error) {
	role, err := s.roleRepository.CreateRole(ctx, entities.Role{Code: payload.Code, Name: payload.Name})
	if err != nil {
		s.logger.Error("Ошибка при создании роли", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Роль создана", zap.String("code", role.Code))
	return role, nil
}

// ensureUserAndRole возвращает ErrNotFound, если нет пользователя или роли.
func (s *RoleService) ensureUserAndRole(ctx context.Context, userCode, roleCode string) error {
	if _, err := s.userRepository.FindOneByConditions(ctx, entities.UserConditions{Code: &userCode}); err != nil {
		return err
	}
	_, err := s.roleRepository.FindRoleByCode(ctx, roleCode)
	return err
}

func (s *RoleService) AssignRole(ctx context.Context, userCode, roleCode string) (*entities.UserRole, error) {
	if err := s.ensureUserAndRole(ctx, userCode, roleCode); err != nil {
		return nil, err
	}
	userRole, err := s.roleRepository.AssignRole(ctx, userCode, roleCode)
	if err != nil {
		s.logger.Error("Ошибка при назначении роли",
			zap.String("userCode", userCode), zap.String("roleCode", roleCode), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Роль назначена", zap.String("userCode", userCode), zap.String("roleCode", roleCode))
	return userRole, nil
}

func (s *RoleService) RevokeRole(ctx context.Context, userCode, roleCode string) error {
	if err := s.ensureUserAndRole(ctx, userCode, roleCode); err != nil {
		return err
	}
	if err := s.roleRepository.RevokeRole(ctx, userCode, roleCode); err != nil {
		return err
	}
	s.logger.Info("Роль отозвана", zap.String("userCode", userCode), zap.String("roleCode", roleCode))
	return nil
}
