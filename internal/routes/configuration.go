package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
	"taller-system/internal/entities"
	"taller-system/pkg/middleware"
)

func runConfigurationRouter(secure *echo.Group, ctrl *controllers.ConfigurationController, authMW *middleware.AuthMiddleware) {
	admins := authMW.RequireRoles(entities.RoleAdmin)

	secure.GET("/configuraciones", ctrl.GetConfigurations)
	secure.GET("/configuraciones/:clave", ctrl.FindConfiguration)
	secure.PUT("/configuraciones/:clave", ctrl.UpdateConfiguration, admins)
}
