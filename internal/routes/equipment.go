package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
	"taller-system/internal/entities"
	"taller-system/pkg/middleware"
)

func runEquipmentRouter(secure *echo.Group, ctrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	technicians := authMW.RequireRoles(entities.RoleAdmin, entities.RoleTechnician)

	secure.POST("/equipos", ctrl.SaveEquipment, technicians)
	// Edits arrive as PUT from the form; the serial label resolves the target
	// either way, so both verbs share the handler.
	secure.PUT("/equipos/:id", ctrl.SaveEquipment, technicians)
	secure.GET("/equipos", ctrl.GetEquipments)
	secure.GET("/equipos/buscar", ctrl.SearchByLabel)
	secure.GET("/equipos/estado/:id", ctrl.GetEquipmentsByState)
	secure.GET("/equipos/:id", ctrl.FindEquipment)
}
