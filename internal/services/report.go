package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"taller-system/internal/repositories"
)

// ReportService renders the admin exports as xlsx workbooks.
type ReportService struct {
	inventoryRepository  repositories.InventoryRepositoryInterface
	commissionRepository repositories.CommissionRepositoryInterface
	logger               *zap.Logger
}

func NewReportService(
	inventoryRepository repositories.InventoryRepositoryInterface,
	commissionRepository repositories.CommissionRepositoryInterface,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		inventoryRepository:  inventoryRepository,
		commissionRepository: commissionRepository,
		logger:               logger,
	}
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	return nil
}

// GenerateInventoryReport exports every stock record, one row per line.
func (s *ReportService) GenerateInventoryReport(ctx context.Context) ([]byte, error) {
	items, _, err := s.inventoryRepository.GetItems(ctx, "", 0, 0)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Tipo", "Especificación", "Cantidad", "Estado", "Precio", "Sucursal", "Fecha"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, it := range items {
		row := i + 2
		values := []any{
			it.ID, it.Tipo, it.Especificacion, it.Cantidad, it.Estado,
			it.Precio.InexactFloat64(), it.SucursalID, it.FechaCreacion.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("failed to render inventory report", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateCommissionsReport exports all commissions with their source
// reference (equipment, maintenance or sale).
func (s *ReportService) GenerateCommissionsReport(ctx context.Context) ([]byte, error) {
	commissions, _, err := s.commissionRepository.GetCommissions(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Usuario", "Origen", "Referencia", "Monto", "Fecha"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, c := range commissions {
		origen, referencia := "manual", ""
		switch {
		case c.EquipoID.Valid:
			origen, referencia = "armado", fmt.Sprintf("equipo %d", c.EquipoID.Uint64)
		case c.MantenimientoID.Valid:
			origen, referencia = "mantenimiento", fmt.Sprintf("mantenimiento %d", c.MantenimientoID.Uint64)
		case c.VentaID.Valid:
			origen, referencia = "venta", fmt.Sprintf("venta %d", c.VentaID.Uint64)
		}

		row := i + 2
		values := []any{
			c.ID, c.UsuarioID, origen, referencia,
			c.Monto.InexactFloat64(), c.FechaCreacion.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("failed to render commissions report", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}
