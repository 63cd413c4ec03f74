package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	"taller-system/internal/repositories"
	"taller-system/pkg/utils"
)

type LotService struct {
	lotRepository repositories.LotRepositoryInterface
	txManager     repositories.TxManagerInterface
	logger        *zap.Logger
}

func NewLotService(
	lotRepository repositories.LotRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *LotService {
	return &LotService{
		lotRepository: lotRepository,
		txManager:     txManager,
		logger:        logger,
	}
}

func lotToDTO(l entities.Lot) dto.LotDTO {
	return dto.LotDTO{
		ID:            l.ID,
		Etiqueta:      l.Etiqueta,
		FechaRecibo:   l.FechaRecibo.Format(time.RFC3339),
		TotalEquipos:  l.TotalEquipos,
		UsuarioRecibo: l.UsuarioRecibo,
		FechaCreacion: l.FechaCreacion.Format(time.RFC3339),
	}
}

func labelToDTO(l entities.SerialLabel) dto.SerialLabelDTO {
	return dto.SerialLabelDTO{
		LoteEtiquetaID: l.ID,
		LoteID:         l.LoteID,
		Etiqueta:       l.Etiqueta,
		EquipoID:       l.EquipoID,
		EstadoID:       l.EstadoID,
		EstadoNombre:   l.EstadoNombre,
	}
}

// CreateLot registers a reception batch and its serial labels in one
// transaction, so a lot never exists without its full label set.
func (s *LotService) CreateLot(ctx context.Context, payload dto.CreateLotDTO) (*dto.LotDTO, error) {
	session, err := utils.GetSessionFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lot := entities.Lot{
		Etiqueta:      GenerateLotLabel(now),
		FechaRecibo:   now,
		TotalEquipos:  payload.TotalEquipos,
		UsuarioRecibo: session.UserID,
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		lotID, err := s.lotRepository.CreateLot(ctx, tx, lot)
		if err != nil {
			return err
		}
		lot.ID = lotID
		return s.lotRepository.CreateLabels(ctx, tx, lotID, GenerateSerialLabels(now, payload.TotalEquipos))
	})
	if err != nil {
		s.logger.Error("failed to create lot", zap.Error(err))
		return nil, err
	}

	s.logger.Info("lot created",
		zap.Uint64("lotId", lot.ID),
		zap.String("etiqueta", lot.Etiqueta),
		zap.Int("totalEquipos", lot.TotalEquipos),
	)
	result := lotToDTO(lot)
	result.FechaCreacion = now.Format(time.RFC3339)
	return &result, nil
}

func (s *LotService) GetLots(ctx context.Context, limit, offset uint64) ([]dto.LotDTO, uint64, error) {
	lots, total, err := s.lotRepository.GetLots(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.LotDTO, 0, len(lots))
	for _, l := range lots {
		result = append(result, lotToDTO(l))
	}
	return result, total, nil
}

func (s *LotService) FindLot(ctx context.Context, id uint64) (*dto.LotDTO, error) {
	lot, err := s.lotRepository.FindLot(ctx, id)
	if err != nil {
		return nil, err
	}
	result := lotToDTO(*lot)
	return &result, nil
}

// GetLabels lists the serials of a lot with per-label progress, feeding the
// label selector in the intake form.
func (s *LotService) GetLabels(ctx context.Context, lotID uint64) ([]dto.SerialLabelDTO, error) {
	if _, err := s.lotRepository.FindLot(ctx, lotID); err != nil {
		return nil, err
	}

	labels, err := s.lotRepository.GetLabels(ctx, lotID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SerialLabelDTO, 0, len(labels))
	for _, l := range labels {
		result = append(result, labelToDTO(l))
	}
	return result, nil
}
