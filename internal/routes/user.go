package routes

import (
	"github.com/labstack/echo/v4"

	"hr-system/internal/controllers"
)

func runUserRouter(api *echo.Group, userCtrl *controllers.UserController) {
	users := api.Group("/users")

	users.GET("", userCtrl.GetUsers)
	users.POST("/sign-up", userCtrl.SignUp)
	users.GET("/find", userCtrl.FindOneByConditions)
	users.PUT("/:id", userCtrl.UpdateUser)
	users.PUT("/:id/assignments", userCtrl.UpdateUserAssignments)
	users.GET("/:code/roles", userCtrl.FindOneWithRoles)
	users.GET("/:code/owner-info", userCtrl.GetOwnersInfo)
	users.GET("/:code/worktime", userCtrl.GetUserWorktime)
	users.GET("/:code/timechecks", userCtrl.GetUserTimechecks)
}
