package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
)

func runTimecheckRouter(api *echo.Group, timecheckCtrl *controllers.TimecheckController) {
	timechecks := api.Group("/timechecks")

	// /export регистрируется раньше /:id
	timechecks.GET("/export", timecheckCtrl.ExportTimechecks)
	timechecks.GET("", timecheckCtrl.GetTimechecks)
	timechecks.POST("", timecheckCtrl.CreateTimecheck)
	timechecks.PUT("/:id", timecheckCtrl.UpdateTimecheck)
	timechecks.DELETE("/:id", timecheckCtrl.DeactivateTimecheck)
}
