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

type InventoryController struct {
	inventoryService *services.InventoryService
	logger           *zap.Logger
}

func NewInventoryController(inventoryService *services.InventoryService, logger *zap.Logger) *InventoryController {
	return &InventoryController{inventoryService: inventoryService, logger: logger}
}

// CheckStock answers the intake form's availability probe with {tieneStock}.
func (c *InventoryController) CheckStock(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.StockCheckDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Parámetros inválidos"))
	}

	res, err := c.inventoryService.CheckStock(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Stock verificado", http.StatusOK)
}

func (c *InventoryController) DeductStock(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.DeductStockDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de datos inválido"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	if err := c.inventoryService.DeductStock(reqCtx, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Stock descontado correctamente", http.StatusOK)
}

func (c *InventoryController) RegisterEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.RegisterEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de datos inválido"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.inventoryService.RegisterEquipment(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Equipo registrado en inventario", http.StatusCreated)
}

func (c *InventoryController) CreateItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateInventoryItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de datos inválido"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.inventoryService.CreateItem(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Artículo creado correctamente", http.StatusCreated)
}

func (c *InventoryController) GetGeneral(ctx echo.Context) error {
	return c.getByType(ctx, "")
}

func (c *InventoryController) GetRAM(ctx echo.Context) error {
	return c.getByType(ctx, "ram")
}

func (c *InventoryController) GetStorage(ctx echo.Context) error {
	return c.getByType(ctx, "almacenamiento")
}

func (c *InventoryController) getByType(ctx echo.Context, tipo string) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx)

	items, total, err := c.inventoryService.GetItems(reqCtx, tipo, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Inventario obtenido correctamente", http.StatusOK, total)
}

func (c *InventoryController) UpdateItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de artículo inválido"))
	}

	var payload dto.UpdateInventoryItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de datos inválido"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.inventoryService.UpdateItem(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Artículo actualizado correctamente", http.StatusOK)
}

func (c *InventoryController) DeleteItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ID de artículo inválido"))
	}

	if err := c.inventoryService.DeleteItem(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
