package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/controllers"
	"hr-system/internal/services"
)

func runRoleRouter(api *echo.Group, roleService services.RoleServiceInterface, logger *zap.Logger) {
	roleCtrl := controllers.NewRoleController(roleService, logger)

	api.GET("/roles", roleCtrl.GetRoles)
	api.POST("/roles", roleCtrl.CreateRole)
	api.POST("/roles/:roleCode/users/:userCode", roleCtrl.AssignRole)
	api.DELETE("/roles/:roleCode/users/:userCode", roleCtrl.RevokeRole)
}
