package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
	"hr-system/pkg/utils"
)

type TimecheckServiceInterface interface {
	GetTimechecks(ctx context.Context, filter entities.TimecheckFilter, conditions *entities.TimecheckConditions) (types.Page[dto.TimecheckDTO], error)
	ExportTimechecks(ctx context.Context, filter entities.TimecheckFilter, conditions *entities.TimecheckConditions) ([]dto.TimecheckDTO, error)
	CreateTimecheck(ctx context.Context, payload dto.CreateTimecheckDTO) (*dto.TimecheckDTO, error)
	UpdateTimecheck(ctx context.Context, id uint64, payload dto.UpdateTimecheckDTO) (*dto.TimecheckDTO, error)
	DeactivateTimecheck(ctx context.Context, id uint64) error
}

type TimecheckService struct {
	userRepository      repositories.UserRepositoryInterface
	timecheckRepository repositories.TimecheckRepositoryInterface
	logger              *zap.Logger
}

func NewTimecheckService(
	userRepository repositories.UserRepositoryInterface,
	timecheckRepository repositories.TimecheckRepositoryInterface,
	logger *zap.Logger,
) TimecheckServiceInterface {
	return &TimecheckService{
		userRepository:      userRepository,
		timecheckRepository: timecheckRepository,
		logger:              logger,
	}
}

func (s *TimecheckService) GetTimechecks(ctx context.Context, filter entities.TimecheckFilter, conditions *entities.TimecheckConditions) (types.Page[dto.TimecheckDTO], error) {
	rows, total, err := s.userRepository.GetTimechecks(ctx, filter, conditions)
	if err != nil {
		s.logger.Error("Ошибка при получении отметок", zap.Any("filter", filter), zap.Error(err))
		return types.Page[dto.TimecheckDTO]{}, err
	}
	return types.NewPage(timecheckRowsToDTOs(rows), total, filter.PageFilter), nil
}

// ExportTimechecks отдаёт все отметки по фильтру без пагинации.
func (s *TimecheckService) ExportTimechecks(ctx context.Context, filter entities.TimecheckFilter, conditions *entities.TimecheckConditions) ([]dto.TimecheckDTO, error) {
	filter.GetAll = true
	rows, _, err := s.userRepository.GetTimechecks(ctx, filter, conditions)
	if err != nil {
		s.logger.Error("Ошибка при выгрузке отметок", zap.Error(err))
		return nil, err
	}
	return timecheckRowsToDTOs(rows), nil
}

// scheduleFor возвращает владельца отметки и его график на день checkDate.
func (s *TimecheckService) scheduleFor(ctx context.Context, userCode string, checkDate time.Time) (entities.TimecheckUser, *entities.GeneralWorktime, error) {
	wt, err := s.userRepository.GetUserWorktime(ctx, userCode, checkDate)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return entities.TimecheckUser{}, nil, apperrors.NewHttpError(http.StatusBadRequest, "Пользователь не найден", err, nil).
			WithContext("userCode", userCode)
	}
	if err != nil {
		return entities.TimecheckUser{}, nil, err
	}

	user := entities.TimecheckUser{ID: wt.ID, Code: wt.Code, Name: wt.Name}
	if wt.WorktimeStg == nil {
		return user, nil, nil
	}
	return user, wt.WorktimeStg.Worktime, nil
}

func (s *TimecheckService) CreateTimecheck(ctx context.Context, payload dto.CreateTimecheckDTO) (*dto.TimecheckDTO, error) {
	checkDate, err := utils.ParseDate(payload.CheckDate)
	if err != nil || checkDate == nil {
		return nil, apperrors.ErrInvalidDate
	}
	if payload.CheckInTime != nil && payload.CheckOutTime != nil && payload.CheckOutTime.Before(*payload.CheckInTime) {
		return nil, apperrors.NewInvalidInputError("Время ухода не может быть раньше времени прихода")
	}

	user, day, err := s.scheduleFor(ctx, payload.UserCode, *checkDate)
	if err != nil {
		return nil, err
	}

	timezone := payload.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	t := entities.Timecheck{
		UserCode:       payload.UserCode,
		CheckDate:      *checkDate,
		CheckInTime:    null.TimeFromPtr(payload.CheckInTime),
		CheckOutTime:   null.TimeFromPtr(payload.CheckOutTime),
		IsLeaveBenefit: payload.IsLeaveBenefit,
		LeaveHour:      payload.LeaveHour,
		Timezone:       timezone,
		IsDayOff:       payload.IsDayOff,
	}
	if err := applySchedule(&t, day, s.logger); err != nil {
		return nil, err
	}

	created, err := s.timecheckRepository.CreateTimecheck(ctx, t)
	if err != nil {
		s.logger.Error("Ошибка при создании отметки", zap.String("userCode", t.UserCode), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Отметка создана", zap.Uint64("id", created.ID), zap.String("userCode", created.UserCode))
	result := timecheckToDTO(*created, user)
	return &result, nil
}

func (s *TimecheckService) UpdateTimecheck(ctx context.Context, id uint64, payload dto.UpdateTimecheckDTO) (*dto.TimecheckDTO, error) {
	t, err := s.timecheckRepository.FindTimecheck(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.CheckInTime != nil {
		t.CheckInTime = null.TimeFrom(*payload.CheckInTime)
	}
	if payload.CheckOutTime != nil {
		t.CheckOutTime = null.TimeFrom(*payload.CheckOutTime)
	}
	if payload.IsLeaveBenefit != nil {
		t.IsLeaveBenefit = *payload.IsLeaveBenefit
	}
	if payload.LeaveHour != nil {
		t.LeaveHour = *payload.LeaveHour
	}
	if payload.IsDayOff != nil {
		t.IsDayOff = *payload.IsDayOff
	}
	if t.CheckInTime.Valid && t.CheckOutTime.Valid && t.CheckOutTime.Time.Before(t.CheckInTime.Time) {
		return nil, apperrors.NewInvalidInputError("Время ухода не может быть раньше времени прихода")
	}

	user, day, err := s.scheduleFor(ctx, t.UserCode, t.CheckDate)
	if err != nil {
		return nil, err
	}
	if err := applySchedule(t, day, s.logger); err != nil {
		return nil, err
	}

	updated, err := s.timecheckRepository.UpdateTimecheck(ctx, *t)
	if err != nil {
		s.logger.Error("Ошибка при обновлении отметки", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Отметка обновлена", zap.Uint64("id", id))
	result := timecheckToDTO(*updated, user)
	return &result, nil
}

func (s *TimecheckService) DeactivateTimecheck(ctx context.Context, id uint64) error {
	if err := s.timecheckRepository.DeactivateTimecheck(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("Ошибка при деактивации отметки", zap.Uint64("id", id), zap.Error(err))
		}
		return err
	}
	s.logger.Info("Отметка деактивирована", zap.Uint64("id", id))
	return nil
}
