package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
)

func runBranchRouter(secure *echo.Group, ctrl *controllers.BranchController) {
	secure.GET("/sucursales", ctrl.GetBranches)
	secure.GET("/sucursales/:id", ctrl.FindBranch)
}
