package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
)

type WorktimeServiceInterface interface {
	GetSettings(ctx context.Context, filter types.PageFilter) (types.Page[dto.WorktimeSettingDTO], error)
	GetSetting(ctx context.Context, code string) (*dto.WorktimeSettingDTO, error)
	CreateSetting(ctx context.Context, payload dto.CreateWorktimeSettingDTO) (*dto.WorktimeSettingDTO, error)
}

type WorktimeService struct {
	txManager          repositories.TxManagerInterface
	worktimeRepository repositories.WorktimeRepositoryInterface
	logger             *zap.Logger
}

func NewWorktimeService(txManager repositories.TxManagerInterface, worktimeRepository repositories.WorktimeRepositoryInterface, logger *zap.Logger) WorktimeServiceInterface {
	return &WorktimeService{txManager: txManager, worktimeRepository: worktimeRepository, logger: logger}
}

func settingToDTO(s entities.GeneralWorktimeSetting) dto.WorktimeSettingDTO {
	return dto.WorktimeSettingDTO{ID: s.ID, Code: s.Code, Name: s.Name}
}

func (s *WorktimeService) GetSettings(ctx context.Context, filter types.PageFilter) (types.Page[dto.WorktimeSettingDTO], error) {
	settings, total, err := s.worktimeRepository.GetSettings(ctx, filter)
	if err != nil {
		s.logger.Error("Ошибка при получении графиков", zap.Error(err))
		return types.Page[dto.WorktimeSettingDTO]{}, err
	}
	items := make([]dto.WorktimeSettingDTO, 0, len(settings))
	for _, setting := range settings {
		items = append(items, settingToDTO(setting))
	}
	return types.NewPage(items, total, filter), nil
}

func (s *WorktimeService) GetSetting(ctx context.Context, code string) (*dto.WorktimeSettingDTO, error) {
	setting, err := s.worktimeRepository.FindSettingByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	days, err := s.worktimeRepository.GetWorktimes(ctx, code)
	if err != nil {
		s.logger.Error("Ошибка при получении дней графика", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	result := settingToDTO(*setting)
	result.Days = worktimeEntitiesToDTOs(days)
	return &result, nil
}

// CreateSetting создаёт график и все его дни в одной транзакции.
func (s *WorktimeService) CreateSetting(ctx context.Context, payload dto.CreateWorktimeSettingDTO) (*dto.WorktimeSettingDTO, error) {
	seen := make(map[int]bool, len(payload.Days))
	for _, day := range payload.Days {
		if seen[day.DayOfWeek] {
			return nil, apperrors.NewInvalidInputError("День недели %d указан несколько раз", day.DayOfWeek)
		}
		seen[day.DayOfWeek] = true
		if day.EndTime <= day.StartTime {
			return nil, apperrors.NewInvalidInputError("День %d: окончание должно быть позже начала", day.DayOfWeek)
		}
		if (day.BreakStart == nil) != (day.BreakEnd == nil) {
			return nil, apperrors.NewInvalidInputError("День %d: перерыв задаётся началом и концом", day.DayOfWeek)
		}
		if day.BreakStart != nil && *day.BreakEnd <= *day.BreakStart {
			return nil, apperrors.NewInvalidInputError("День %d: конец перерыва должен быть позже начала", day.DayOfWeek)
		}
	}

	var result dto.WorktimeSettingDTO
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		setting, err := s.worktimeRepository.CreateSettingInTx(ctx, tx, entities.GeneralWorktimeSetting{
			Code: payload.Code,
			Name: payload.Name,
		})
		if err != nil {
			return err
		}
		result = settingToDTO(*setting)

		days := make([]entities.GeneralWorktime, 0, len(payload.Days))
		for _, day := range payload.Days {
			created, err := s.worktimeRepository.CreateWorktimeInTx(ctx, tx, entities.GeneralWorktime{
				WorktimeCode: setting.Code,
				DayOfWeek:    day.DayOfWeek,
				StartTime:    day.StartTime,
				EndTime:      day.EndTime,
				BreakStart:   null.StringFromPtr(day.BreakStart),
				BreakEnd:     null.StringFromPtr(day.BreakEnd),
				WorkHour:     day.WorkHour,
				IsDayOff:     day.IsDayOff,
			})
			if err != nil {
				return err
			}
			days = append(days, *created)
		}
		result.Days = worktimeEntitiesToDTOs(sortWorktimes(days))
		return nil
	})
	if err != nil {
		s.logger.Error("Ошибка при создании графика", zap.String("code", payload.Code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("График создан", zap.String("code", result.Code), zap.Int("days", len(result.Days)))
	return &result, nil
}
