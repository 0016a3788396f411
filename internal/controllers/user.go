package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/services"
	"hr-system/pkg/api"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/utils"
)

type UserController struct {
	userService      services.UserServiceInterface
	timecheckService services.TimecheckServiceInterface
	logger           *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, timecheckService services.TimecheckServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, timecheckService: timecheckService, logger: logger}
}

func parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Неверный формат ID")
	}
	return id, nil
}

func (c *UserController) GetUsers(ctx echo.Context) error {
	query := ctx.QueryParams()
	filter := entities.UserFilter{PageFilter: utils.ParsePageFilter(query)}
	if email := strings.TrimSpace(query.Get("email")); email != "" {
		filter.Email = &email
	}

	page, err := c.userService.GetUsers(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessPage(ctx, "Пользователи успешно получены", page)
}

func (c *UserController) SignUp(ctx echo.Context) error {
	var payload dto.SignUpDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.userService.SignUp(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Пользователь успешно зарегистрирован", res)
}

// conditionsFromQuery собирает условия поиска из id, code и email.
func conditionsFromQuery(ctx echo.Context) (entities.UserConditions, error) {
	var conditions entities.UserConditions
	if raw := ctx.QueryParam("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return conditions, apperrors.NewInvalidInputError("Неверный формат id: %s", raw)
		}
		conditions.ID = &id
	}
	if code := strings.TrimSpace(ctx.QueryParam("code")); code != "" {
		conditions.Code = &code
	}
	if email := strings.TrimSpace(ctx.QueryParam("email")); email != "" {
		conditions.Email = &email
	}
	return conditions, nil
}

func (c *UserController) FindOneByConditions(ctx echo.Context) error {
	conditions, err := conditionsFromQuery(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.userService.FindOneByConditions(ctx.Request().Context(), conditions)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Пользователь успешно найден", res)
}

func (c *UserController) FindOneWithRoles(ctx echo.Context) error {
	code := ctx.Param("code")
	res, err := c.userService.FindOneWithRoles(ctx.Request().Context(), entities.UserConditions{Code: &code})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Пользователь с ролями успешно получен", res)
}

func (c *UserController) UpdateUser(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateUserDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.userService.UpdateUser(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Пользователь успешно обновлен", res)
}

func (c *UserController) UpdateUserAssignments(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateUserAssignmentsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.userService.UpdateUserAssignments(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Привязки пользователя успешно обновлены", res)
}

func (c *UserController) GetOwnersInfo(ctx echo.Context) error {
	res, err := c.userService.GetOwnersInfo(ctx.Request().Context(), ctx.Param("code"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Данные сотрудника успешно получены", res)
}

func (c *UserController) GetUserWorktime(ctx echo.Context) error {
	checkDate, err := utils.ParseDate(ctx.QueryParam("checkDate"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if checkDate == nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Параметр checkDate обязателен"), c.logger)
	}

	res, err := c.userService.GetUserWorktime(ctx.Request().Context(), ctx.Param("code"), *checkDate)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "График сотрудника успешно получен", res)
}

// GetUserTimechecks - отметки одного сотрудника; условия по отделу здесь не принимаются.
func (c *UserController) GetUserTimechecks(ctx echo.Context) error {
	filter, err := timecheckFilterFromQuery(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	code := ctx.Param("code")

	page, err := c.timecheckService.GetTimechecks(ctx.Request().Context(), filter, &entities.TimecheckConditions{UserCode: &code})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessPage(ctx, "Отметки сотрудника успешно получены", page)
}
