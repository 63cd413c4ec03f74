package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"taller-system/internal/services"
	"taller-system/pkg/utils"
)

type CatalogController struct {
	catalogService *services.CatalogService
	logger         *zap.Logger
}

func NewCatalogController(catalogService *services.CatalogService, logger *zap.Logger) *CatalogController {
	return &CatalogController{catalogService: catalogService, logger: logger}
}

func (c *CatalogController) GetStates(ctx echo.Context) error {
	states, err := c.catalogService.GetStates(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, states, "Estados obtenidos correctamente", http.StatusOK)
}

func (c *CatalogController) GetRAMTypes(ctx echo.Context) error {
	types, err := c.catalogService.GetRAMTypes(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, types, "Catálogo de RAM obtenido correctamente", http.StatusOK)
}

func (c *CatalogController) GetStorageTypes(ctx echo.Context) error {
	types, err := c.catalogService.GetStorageTypes(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, types, "Catálogo de almacenamiento obtenido correctamente", http.StatusOK)
}

func (c *CatalogController) GetMaintenanceTypes(ctx echo.Context) error {
	types, err := c.catalogService.GetMaintenanceTypes(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, types, "Catálogo de mantenimiento obtenido correctamente", http.StatusOK)
}
