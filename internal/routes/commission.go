package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
	"taller-system/internal/entities"
	"taller-system/pkg/middleware"
)

func runCommissionRouter(secure *echo.Group, ctrl *controllers.CommissionController, authMW *middleware.AuthMiddleware) {
	admins := authMW.RequireRoles(entities.RoleAdmin)

	secure.GET("/comisiones", ctrl.GetCommissions, admins)
	secure.GET("/comisiones/equipo/:id", ctrl.FindByEquipment)
	secure.GET("/comisiones/semana/:usuarioId", ctrl.GetWeekly)
	secure.POST("/comisiones", ctrl.CreateCommission, admins)
}
