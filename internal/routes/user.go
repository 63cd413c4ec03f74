package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
	"taller-system/internal/entities"
	"taller-system/pkg/middleware"
)

func runUserRouter(secure *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	admins := authMW.RequireRoles(entities.RoleAdmin)

	secure.GET("/usuarios", ctrl.GetUsers, admins)
	secure.GET("/usuarios/:id", ctrl.FindUser, admins)
	secure.POST("/usuarios", ctrl.CreateUser, admins)
	secure.PUT("/usuarios/:id", ctrl.UpdateUser, admins)
	secure.DELETE("/usuarios/:id", ctrl.DeactivateUser, admins)
}
