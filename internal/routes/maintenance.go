package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
	"taller-system/internal/entities"
	"taller-system/pkg/middleware"
)

func runMaintenanceRouter(secure *echo.Group, ctrl *controllers.MaintenanceController, authMW *middleware.AuthMiddleware) {
	technicians := authMW.RequireRoles(entities.RoleAdmin, entities.RoleTechnician)

	secure.POST("/mantenimientos", ctrl.CreateMaintenance, technicians)
	secure.GET("/mantenimientos", ctrl.GetMaintenances)
}
