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

type RoleController struct {
	roleService services.RoleServiceInterface
	logger      *zap.Logger
}

func NewRoleController(roleService services.RoleServiceInterface, logger *zap.Logger) *RoleController {
	return &RoleController{roleService: roleService, logger: logger}
}

func (c *RoleController) GetRoles(ctx echo.Context) error {
	page, err := c.roleService.GetRoles(ctx.Request().Context(), utils.ParsePageFilter(ctx.QueryParams()))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessPage(ctx, "Роли успешно получены", page)
}

func (c *RoleController) CreateRole(ctx echo.Context) error {
	var payload dto.CreateRoleDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.roleService.CreateRole(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Роль успешно создана", res)
}

func (c *RoleController) AssignRole(ctx echo.Context) error {
	res, err := c.roleService.AssignRole(ctx.Request().Context(), ctx.Param("userCode"), ctx.Param("roleCode"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Роль успешно назначена", res)
}

func (c *RoleController) RevokeRole(ctx echo.Context) error {
	if err := c.roleService.RevokeRole(ctx.Request().Context(), ctx.Param("userCode"), ctx.Param("roleCode")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessEmpty(ctx, "Роль успешно отозвана")
}
