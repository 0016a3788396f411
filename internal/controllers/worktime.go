package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/services"
	"hr-system/pkg/api"
	"hr-system/pkg/utils"
)

type WorktimeController struct {
	worktimeService services.WorktimeServiceInterface
	logger          *zap.Logger
}

func NewWorktimeController(worktimeService services.WorktimeServiceInterface, logger *zap.Logger) *WorktimeController {
	return &WorktimeController{worktimeService: worktimeService, logger: logger}
}

func (c *WorktimeController) GetSettings(ctx echo.Context) error {
	page, err := c.worktimeService.GetSettings(ctx.Request().Context(), utils.ParsePageFilter(ctx.QueryParams()))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessPage(ctx, "Графики успешно получены", page)
}

func (c *WorktimeController) GetSetting(ctx echo.Context) error {
	res, err := c.worktimeService.GetSetting(ctx.Request().Context(), ctx.Param("code"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "График успешно получен", res)
}

func (c *WorktimeController) CreateSetting(ctx echo.Context) error {
	var payload dto.CreateWorktimeSettingDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.worktimeService.CreateSetting(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "График успешно создан", res)
}
