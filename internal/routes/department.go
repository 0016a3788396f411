package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/controllers"
	"hr-system/internal/services"
)

func runDepartmentRouter(api *echo.Group, departmentService services.DepartmentServiceInterface, logger *zap.Logger) {
	departmentCtrl := controllers.NewDepartmentController(departmentService, logger)

	api.GET("/departments", departmentCtrl.GetDepartments)
	api.POST("/departments", departmentCtrl.CreateDepartment)
	api.GET("/departments/:code", departmentCtrl.FindDepartment)
	api.PUT("/departments/:code", departmentCtrl.UpdateDepartment)
}
