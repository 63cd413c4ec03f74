package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
	"taller-system/internal/entities"
	"taller-system/pkg/middleware"
)

func runCashRouter(secure *echo.Group, ctrl *controllers.CashController, authMW *middleware.AuthMiddleware) {
	cashiers := authMW.RequireRoles(entities.RoleAdmin, entities.RoleSales)

	secure.POST("/caja/movimiento", ctrl.CreateMovement, cashiers)
	secure.GET("/caja/resumen", ctrl.GetSummary, cashiers)
	secure.GET("/caja/movimientos", ctrl.GetOpenMovements, cashiers)
	secure.POST("/caja/corte", ctrl.CreateCut, cashiers)
	secure.GET("/caja/cortes", ctrl.GetCuts, cashiers)
}
