package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
)

func runAuthRouter(api *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/usuarios/login", ctrl.Login)
	api.POST("/usuarios/logout", ctrl.Logout)
	secure.GET("/usuarios/me", ctrl.Me)
}
