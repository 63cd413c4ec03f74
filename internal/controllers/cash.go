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

type CashController struct {
	cashService *services.CashService
	logger      *zap.Logger
}

func NewCashController(cashService *services.CashService, logger *zap.Logger) *CashController {
	return &CashController{cashService: cashService, logger: logger}
}

func (c *CashController) CreateMovement(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateCashMovementDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de datos inválido"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.cashService.CreateMovement(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Movimiento registrado correctamente", http.StatusCreated)
}

// GetSummary returns the open totals since the last cut.
func (c *CashController) GetSummary(ctx echo.Context) error {
	res, err := c.cashService.GetSummary(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Resumen de caja obtenido", http.StatusOK)
}

func (c *CashController) GetOpenMovements(ctx echo.Context) error {
	res, err := c.cashService.GetOpenMovements(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Movimientos abiertos obtenidos", http.StatusOK)
}

func (c *CashController) CreateCut(ctx echo.Context) error {
	res, err := c.cashService.CreateCut(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Corte de caja realizado", http.StatusCreated)
}

func (c *CashController) GetCuts(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx)

	cuts, total, err := c.cashService.GetCuts(reqCtx, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, cuts, "Cortes obtenidos correctamente", http.StatusOK, total)
}
