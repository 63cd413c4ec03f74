package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/services"
	apperrors "taller-system/pkg/errors"
	"taller-system/pkg/utils"
)

type LotController struct {
	lotService      *services.LotService
	labelPDFService *services.LabelPDFService
	logger          *zap.Logger
}

func NewLotController(
	lotService *services.LotService,
	labelPDFService *services.LabelPDFService,
	logger *zap.Logger,
) *LotController {
	return &LotController{
		lotService:      lotService,
		labelPDFService: labelPDFService,
		logger:          logger,
	}
}

func (c *LotController) CreateLot(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateLotDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de datos inválido"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.lotService.CreateLot(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Lote creado correctamente", http.StatusCreated)
}

func (c *LotController) GetLots(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx)

	lots, total, err := c.lotService.GetLots(reqCtx, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, lots, "Lotes obtenidos correctamente", http.StatusOK, total)
}

func (c *LotController) FindLot(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de lote inválido"))
	}

	res, err := c.lotService.FindLot(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Lote encontrado", http.StatusOK)
}

func (c *LotController) GetLabels(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de lote inválido"))
	}

	labels, err := c.lotService.GetLabels(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, labels, "Etiquetas obtenidas correctamente", http.StatusOK)
}

// GetLabelsPDF streams the printable sticker sheet.
func (c *LotController) GetLabelsPDF(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de lote inválido"))
	}

	pdf, err := c.labelPDFService.GenerateLabelSheet(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="etiquetas-lote-%d.pdf"`, id))
	return ctx.Blob(http.StatusOK, "application/pdf", pdf)
}
