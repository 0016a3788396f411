package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
	"hr-system/pkg/utils"
)

const ownersInfoCachePrefix = "owners-info:"

func ownersInfoCacheKey(code string) string {
	return ownersInfoCachePrefix + code
}

// referencedOwnersInfoKeys возвращает ключи owner-info пользователей, в ответе
// которых видно имя отдела или руководителя из условий.
func referencedOwnersInfoKeys(ctx context.Context, userRepository repositories.UserRepositoryInterface, conditions entities.UserReferenceConditions, logger *zap.Logger) []string {
	codes, err := userRepository.GetUserCodes(ctx, conditions)
	if err != nil {
		logger.Warn("Не удалось получить пользователей для сброса кэша", zap.Error(err))
		return nil
	}
	keys := make([]string, 0, len(codes))
	for _, code := range codes {
		keys = append(keys, ownersInfoCacheKey(code))
	}
	return keys
}

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter entities.UserFilter) (types.Page[dto.UserListItemDTO], error)
	SignUp(ctx context.Context, payload dto.SignUpDTO) (*dto.UserDTO, error)
	FindOneByConditions(ctx context.Context, conditions entities.UserConditions) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	UpdateUserAssignments(ctx context.Context, id uint64, payload dto.UpdateUserAssignmentsDTO) (*dto.UserDTO, error)
	FindOneWithRoles(ctx context.Context, conditions entities.UserConditions) (*dto.UserWithRolesDTO, error)
	GetOwnersInfo(ctx context.Context, code string) (*dto.OwnersInfoDTO, error)
	GetUserWorktime(ctx context.Context, code string, checkDate time.Time) (*dto.UserWorktimeDTO, error)
}

type UserService struct {
	*BaseService
	userRepository         repositories.UserRepositoryInterface
	departmentRepository   repositories.DepartmentRepositoryInterface
	worktimeRepository     repositories.WorktimeRepositoryInterface
	leaveBenefitRepository repositories.LeaveBenefitRepositoryInterface
	ownersInfoTTL          time.Duration
}

func NewUserService(
	userRepository repositories.UserRepositoryInterface,
	departmentRepository repositories.DepartmentRepositoryInterface,
	worktimeRepository repositories.WorktimeRepositoryInterface,
	leaveBenefitRepository repositories.LeaveBenefitRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	ownersInfoTTL time.Duration,
	logger *zap.Logger,
) UserServiceInterface {
	return &UserService{
		BaseService:            NewBaseService(cache, logger),
		userRepository:         userRepository,
		departmentRepository:   departmentRepository,
		worktimeRepository:     worktimeRepository,
		leaveBenefitRepository: leaveBenefitRepository,
		ownersInfoTTL:          ownersInfoTTL,
	}
}

func (s *UserService) GetUsers(ctx context.Context, filter entities.UserFilter) (types.Page[dto.UserListItemDTO], error) {
	if filter.Email != nil {
		filter.Email = utils.ToPtr(utils.NormalizeEmail(*filter.Email))
	}
	users, total, err := s.userRepository.GetUsers(ctx, filter)
	if err != nil {
		s.logger.Error("Ошибка при получении списка пользователей", zap.Error(err))
		return types.Page[dto.UserListItemDTO]{}, err
	}

	items := make([]dto.UserListItemDTO, 0, len(users))
	for _, u := range users {
		items = append(items, userListItemToDTO(u))
	}
	return types.NewPage(items, total, filter.PageFilter), nil
}

func (s *UserService) SignUp(ctx context.Context, payload dto.SignUpDTO) (*dto.UserDTO, error) {
	if err := s.checkReferences(ctx, "", payload.Department, payload.ManagerCode, payload.WorktimeCode, payload.LeaveBenefitCode); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(payload.Code)
	if code == "" {
		code = strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	}

	user := entities.User{
		Code:             code,
		Name:             payload.Name,
		Email:            utils.NormalizeEmail(payload.Email),
		Phone:            optionalString(payload.Phone),
		Password:         payload.Password,
		Department:       optionalString(payload.Department),
		ManagerCode:      optionalString(payload.ManagerCode),
		WorktimeCode:     optionalString(payload.WorktimeCode),
		LeaveBenefitCode: optionalString(payload.LeaveBenefitCode),
	}

	created, err := s.userRepository.SignUp(ctx, user)
	if err != nil {
		s.logger.Error("Ошибка при регистрации пользователя", zap.String("email", user.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Пользователь зарегистрирован", zap.Uint64("id", created.ID), zap.String("code", created.Code))
	return userEntityToDTO(created), nil
}

func (s *UserService) FindOneByConditions(ctx context.Context, conditions entities.UserConditions) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindOneByConditions(ctx, normalizeConditions(conditions))
	if err != nil {
		return nil, err
	}
	return userEntityToDTO(user), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	return s.applyUpdate(ctx, id, entities.UserUpdate{Phone: payload.Phone})
}

func (s *UserService) UpdateUserAssignments(ctx context.Context, id uint64, payload dto.UpdateUserAssignmentsDTO) (*dto.UserDTO, error) {
	current, err := s.userRepository.FindOneByConditions(ctx, entities.UserConditions{ID: &id})
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, current.Code, payload.Department, payload.ManagerCode, payload.WorktimeCode, payload.LeaveBenefitCode); err != nil {
		return nil, err
	}

	return s.applyUpdate(ctx, id, entities.UserUpdate{
		Name:             payload.Name,
		Department:       payload.Department,
		ManagerCode:      payload.ManagerCode,
		WorktimeCode:     payload.WorktimeCode,
		LeaveBenefitCode: payload.LeaveBenefitCode,
		IsActive:         payload.IsActive,
	})
}

func (s *UserService) applyUpdate(ctx context.Context, id uint64, update entities.UserUpdate) (*dto.UserDTO, error) {
	updated, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		s.logger.Error("Ошибка при обновлении пользователя", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	keys := []string{ownersInfoCacheKey(updated.Code)}
	if update.Name != nil && s.cache != nil {
		// имя руководителя хранится в owner-info подчинённых
		keys = append(keys, referencedOwnersInfoKeys(ctx, s.userRepository, entities.UserReferenceConditions{ManagerCode: &updated.Code}, s.logger)...)
	}
	s.CacheDel(ctx, keys...)
	s.logger.Info("Пользователь обновлен", zap.Uint64("id", id))
	return userEntityToDTO(updated), nil
}

// checkReferences проверяет, что все указанные коды существуют.
// Пустая строка означает очистку поля и не проверяется.
func (s *UserService) checkReferences(ctx context.Context, selfCode string, department, managerCode, worktimeCode, leaveBenefitCode *string) error {
	check := func(value *string, label string, find func(string) error) error {
		code := utils.SafeDeref(value)
		if code == "" {
			return nil
		}
		err := find(code)
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewHttpError(
				http.StatusBadRequest,
				fmt.Sprintf("%s с кодом '%s' не найден", label, code),
				apperrors.ErrBadRequest,
				nil,
			)
		}
		return err
	}

	if selfCode != "" && utils.SafeDeref(managerCode) == selfCode {
		return apperrors.NewBadRequestError("Пользователь не может быть собственным руководителем")
	}

	if err := check(department, "Отдел", func(code string) error {
		_, err := s.departmentRepository.FindDepartmentByCode(ctx, code)
		return err
	}); err != nil {
		return err
	}
	if err := check(managerCode, "Руководитель", func(code string) error {
		_, err := s.userRepository.FindOneByConditions(ctx, entities.UserConditions{Code: &code})
		return err
	}); err != nil {
		return err
	}
	if err := check(worktimeCode, "График", func(code string) error {
		_, err := s.worktimeRepository.FindSettingByCode(ctx, code)
		return err
	}); err != nil {
		return err
	}
	return check(leaveBenefitCode, "Тип отпуска", func(code string) error {
		_, err := s.leaveBenefitRepository.FindLeaveBenefitByCode(ctx, code)
		return err
	})
}

func (s *UserService) FindOneWithRoles(ctx context.Context, conditions entities.UserConditions) (*dto.UserWithRolesDTO, error) {
	return s.userRepository.FindOneWithRoles(ctx, normalizeConditions(conditions))
}

// normalizeConditions приводит email к нижнему регистру, как при регистрации.
func normalizeConditions(conditions entities.UserConditions) entities.UserConditions {
	if conditions.Email != nil {
		conditions.Email = utils.ToPtr(utils.NormalizeEmail(*conditions.Email))
	}
	return conditions
}

// GetOwnersInfo сначала смотрит в кеш, при промахе читает из БД и кладёт результат в кеш.
func (s *UserService) GetOwnersInfo(ctx context.Context, code string) (*dto.OwnersInfoDTO, error) {
	key := ownersInfoCacheKey(code)

	var cached dto.OwnersInfoDTO
	if s.CacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	rec, err := s.userRepository.GetOwnersInfo(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Error("Ошибка при получении данных владельца", zap.String("code", code), zap.Error(err))
		}
		return nil, err
	}

	info := ownerRecordToDTO(rec)
	s.CacheSet(ctx, key, info, s.ownersInfoTTL)
	return info, nil
}

func (s *UserService) GetUserWorktime(ctx context.Context, code string, checkDate time.Time) (*dto.UserWorktimeDTO, error) {
	wt, err := s.userRepository.GetUserWorktime(ctx, code, checkDate)
	if err != nil {
		return nil, err
	}
	return userWorktimeToDTO(wt), nil
}

func optionalString(v *string) null.String {
	if v == nil || *v == "" {
		return null.String{}
	}
	return null.StringFrom(*v)
}
