package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/controllers"
	"hr-system/internal/services"
)

func runWorktimeRouter(api *echo.Group, worktimeService services.WorktimeServiceInterface, logger *zap.Logger) {
	worktimeCtrl := controllers.NewWorktimeController(worktimeService, logger)

	api.GET("/worktimes", worktimeCtrl.GetSettings)
	api.POST("/worktimes", worktimeCtrl.CreateSetting)
	api.GET("/worktimes/:code", worktimeCtrl.GetSetting)
}
