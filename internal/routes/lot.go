package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
	"taller-system/internal/entities"
	"taller-system/pkg/middleware"
)

func runLotRouter(secure *echo.Group, ctrl *controllers.LotController, authMW *middleware.AuthMiddleware) {
	receivers := authMW.RequireRoles(entities.RoleAdmin, entities.RoleTechnician)

	secure.POST("/lotes", ctrl.CreateLot, receivers)
	secure.GET("/lotes", ctrl.GetLots)
	secure.GET("/lotes/:id", ctrl.FindLot)
	secure.GET("/lotes/:id/etiquetas", ctrl.GetLabels)
	secure.GET("/lotes/:id/etiquetas/pdf", ctrl.GetLabelsPDF)
}
