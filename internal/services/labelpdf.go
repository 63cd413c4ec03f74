package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"go.uber.org/zap"

	"taller-system/internal/repositories"
)

// Label sticker grid on A4: 3 columns x 8 rows per page.
const (
	labelCols   = 3
	labelWidth  = 63.0
	labelHeight = 33.0
	labelMargin = 10.0
)

type LabelPDFService struct {
	lotRepository repositories.LotRepositoryInterface
	logger        *zap.Logger
}

func NewLabelPDFService(lotRepository repositories.LotRepositoryInterface, logger *zap.Logger) *LabelPDFService {
	return &LabelPDFService{lotRepository: lotRepository, logger: logger}
}

// GenerateLabelSheet renders the printable sticker sheet for a lot: one cell
// per serial, each carrying the lot tag and the serial text.
func (s *LabelPDFService) GenerateLabelSheet(ctx context.Context, lotID uint64) ([]byte, error) {
	lot, err := s.lotRepository.FindLot(ctx, lotID)
	if err != nil {
		return nil, err
	}
	labels, err := s.lotRepository.GetLabels(ctx, lotID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(labelMargin, labelMargin, labelMargin)
	pdf.SetAutoPageBreak(true, labelMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, fmt.Sprintf("%s  (%d equipos)", lot.Etiqueta, lot.TotalEquipos), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	x0, y := pdf.GetXY()
	for i, label := range labels {
		col := i % labelCols
		if col == 0 && i > 0 {
			y += labelHeight
			_, pageH := pdf.GetPageSize()
			if y+labelHeight > pageH-labelMargin {
				pdf.AddPage()
				_, y = pdf.GetXY()
			}
		}
		x := x0 + float64(col)*labelWidth

		pdf.Rect(x, y, labelWidth, labelHeight, "D")
		pdf.SetXY(x, y+8)
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(labelWidth, 6, lot.Etiqueta, "", 2, "C", false, 0, "")
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(labelWidth, 10, label.Etiqueta, "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error("failed to render label sheet", zap.Uint64("lotId", lotID), zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}
