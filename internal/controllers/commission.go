package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/services"
	apperrors "taller-system/pkg/errors"
	"taller-system/pkg/utils"
)

type CommissionController struct {
	commissionService *services.CommissionService
	logger            *zap.Logger
}

func NewCommissionController(commissionService *services.CommissionService, logger *zap.Logger) *CommissionController {
	return &CommissionController{commissionService: commissionService, logger: logger}
}

func (c *CommissionController) GetCommissions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx)

	commissions, total, err := c.commissionService.GetCommissions(reqCtx, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, commissions, "Comisiones obtenidas correctamente", http.StatusOK, total)
}

// FindByEquipment answers whether an assembly already generated a commission.
func (c *CommissionController) FindByEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de equipo inválido"))
	}

	res, err := c.commissionService.FindByEquipment(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Comisión encontrada", http.StatusOK)
}

func (c *CommissionController) GetWeekly(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	userID, err := strconv.ParseUint(ctx.Param("usuarioId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de usuario inválido"))
	}

	res, err := c.commissionService.GetWeekly(reqCtx, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Comisiones de la semana obtenidas", http.StatusOK)
}

func (c *CommissionController) CreateCommission(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateCommissionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de datos inválido"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.commissionService.CreateCommission(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Comisión creada correctamente", http.StatusCreated)
}
