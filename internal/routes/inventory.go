package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
	"taller-system/internal/entities"
	"taller-system/pkg/middleware"
)

func runInventoryRouter(secure *echo.Group, ctrl *controllers.InventoryController, authMW *middleware.AuthMiddleware) {
	admins := authMW.RequireRoles(entities.RoleAdmin)
	stockWriters := authMW.RequireRoles(entities.RoleAdmin, entities.RoleTechnician)

	secure.GET("/inventario/validar-stock", ctrl.CheckStock)
	secure.POST("/inventario/descontar", ctrl.DeductStock, stockWriters)
	secure.POST("/inventario/registrar-equipo", ctrl.RegisterEquipment, admins)
	secure.POST("/inventario", ctrl.CreateItem, admins)
	secure.GET("/inventario/general", ctrl.GetGeneral)
	secure.GET("/inventario/hardware/ram", ctrl.GetRAM)
	secure.GET("/inventario/hardware/almacenamiento", ctrl.GetStorage)
	secure.PUT("/inventario/:id", ctrl.UpdateItem, admins)
	secure.DELETE("/inventario/:id", ctrl.DeleteItem, admins)
}
