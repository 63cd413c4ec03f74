package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/services"
	apperrors "taller-system/pkg/errors"
	"taller-system/pkg/utils"
)

type ConfigurationController struct {
	configurationService *services.ConfigurationService
	logger               *zap.Logger
}

func NewConfigurationController(configurationService *services.ConfigurationService, logger *zap.Logger) *ConfigurationController {
	return &ConfigurationController{configurationService: configurationService, logger: logger}
}

func (c *ConfigurationController) GetConfigurations(ctx echo.Context) error {
	configs, err := c.configurationService.GetConfigurations(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, configs, "Configuraciones obtenidas correctamente", http.StatusOK)
}

func (c *ConfigurationController) FindConfiguration(ctx echo.Context) error {
	clave := ctx.Param("clave")
	res, err := c.configurationService.FindConfiguration(ctx.Request().Context(), clave)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Configuración encontrada", http.StatusOK)
}

func (c *ConfigurationController) UpdateConfiguration(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	clave := ctx.Param("clave")

	var payload dto.UpdateConfigurationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de datos inválido"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.configurationService.UpdateConfiguration(reqCtx, clave, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Configuración actualizada correctamente", http.StatusOK)
}
