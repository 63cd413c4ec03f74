package routes

import (
	"github.com/labstack/echo/v4"

	"taller-system/internal/controllers"
)

func runCatalogRouter(secure *echo.Group, ctrl *controllers.CatalogController) {
	secure.GET("/catalogoEstados", ctrl.GetStates)
	secure.GET("/catalogoMemoriaRam", ctrl.GetRAMTypes)
	secure.GET("/catalogoAlmacenamiento", ctrl.GetStorageTypes)
	secure.GET("/catalogoMantenimiento", ctrl.GetMaintenanceTypes)
}
