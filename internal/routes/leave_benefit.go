package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/controllers"
	"hr-system/internal/services"
)

func runLeaveBenefitRouter(api *echo.Group, leaveBenefitService services.LeaveBenefitServiceInterface, logger *zap.Logger) {
	leaveBenefitCtrl := controllers.NewLeaveBenefitController(leaveBenefitService, logger)

	api.GET("/leave-benefits", leaveBenefitCtrl.GetLeaveBenefits)
	api.POST("/leave-benefits", leaveBenefitCtrl.CreateLeaveBenefit)
	api.GET("/leave-benefits/:code", leaveBenefitCtrl.FindLeaveBenefit)
}
