package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
	"taller-system/internal/entities"
	"taller-system/pkg/middleware"
)

func runReportRouter(secure *echo.Group, ctrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	admins := authMW.RequireRoles(entities.RoleAdmin)

	secure.GET("/reportes/inventario.xlsx", ctrl.InventoryReport, admins)
	secure.GET("/reportes/comisiones.xlsx", ctrl.CommissionsReport, admins)
}
