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

type EquipmentController struct {
	equipmentService *services.EquipmentService
	intakeService    *services.IntakeService
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService *services.EquipmentService,
	intakeService *services.IntakeService,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		intakeService:    intakeService,
		logger:           logger,
	}
}

// SaveEquipment is the intake submission: create or update an equipment and,
// on a terminal state, run the whole finalization in one transaction.
func (c *EquipmentController) SaveEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.SaveEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de datos inválido"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.intakeService.SaveEquipment(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Equipo guardado correctamente", http.StatusOK)
}

// SearchByLabel resolves a serial label to its equipment. 404 tells the form
// to switch to create mode.
func (c *EquipmentController) SearchByLabel(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	texto := ctx.QueryParam("texto")
	if texto == "" {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("El parámetro texto es obligatorio"))
	}

	res, err := c.equipmentService.FindByLabelText(reqCtx, texto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Equipo encontrado", http.StatusOK)
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx)

	equipments, total, err := c.equipmentService.GetEquipments(reqCtx, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipments, "Equipos obtenidos correctamente", http.StatusOK, total)
}

func (c *EquipmentController) GetEquipmentsByState(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	stateID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de estado inválido"))
	}

	equipments, err := c.equipmentService.GetEquipmentsByState(reqCtx, stateID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipments, "Equipos obtenidos correctamente", http.StatusOK)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de equipo inválido"))
	}

	res, err := c.equipmentService.FindEquipment(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Equipo encontrado", http.StatusOK)
}
