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

type LeaveBenefitController struct {
	leaveBenefitService services.LeaveBenefitServiceInterface
	logger              *zap.Logger
}

func NewLeaveBenefitController(service services.LeaveBenefitServiceInterface, logger *zap.Logger) *LeaveBenefitController {
	return &LeaveBenefitController{leaveBenefitService: service, logger: logger}
}

func (c *LeaveBenefitController) GetLeaveBenefits(ctx echo.Context) error {
	page, err := c.leaveBenefitService.GetLeaveBenefits(ctx.Request().Context(), utils.ParsePageFilter(ctx.QueryParams()))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessPage(ctx, "Типы отпусков успешно получены", page)
}

func (c *LeaveBenefitController) FindLeaveBenefit(ctx echo.Context) error {
	res, err := c.leaveBenefitService.FindLeaveBenefit(ctx.Request().Context(), ctx.Param("code"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Тип отпуска успешно найден", res)
}

func (c *LeaveBenefitController) CreateLeaveBenefit(ctx echo.Context) error {
	var payload dto.CreateLeaveBenefitDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.leaveBenefitService.CreateLeaveBenefit(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Тип отпуска успешно создан", res)
}
