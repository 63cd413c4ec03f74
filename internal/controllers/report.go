package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"taller-system/internal/services"
	"taller-system/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	reportService *services.ReportService
	logger        *zap.Logger
}

func NewReportController(reportService *services.ReportService, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) InventoryReport(ctx echo.Context) error {
	data, err := c.reportService.GenerateInventoryReport(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return c.sendWorkbook(ctx, "inventario", data)
}

func (c *ReportController) CommissionsReport(ctx echo.Context) error {
	data, err := c.reportService.GenerateCommissionsReport(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return c.sendWorkbook(ctx, "comisiones", data)
}

func (c *ReportController) sendWorkbook(ctx echo.Context, name string, data []byte) error {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Blob(http.StatusOK, xlsxContentType, data)
}
