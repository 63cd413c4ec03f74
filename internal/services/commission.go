package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	"taller-system/internal/repositories"
	apperrors "taller-system/pkg/errors"
)

type CommissionService struct {
	commissionRepository repositories.CommissionRepositoryInterface
	logger               *zap.Logger
}

func NewCommissionService(
	commissionRepository repositories.CommissionRepositoryInterface,
	logger *zap.Logger,
) *CommissionService {
	return &CommissionService{
		commissionRepository: commissionRepository,
		logger:               logger,
	}
}

func commissionToDTO(c entities.Commission) dto.CommissionDTO {
	return dto.CommissionDTO{
		ID:              c.ID,
		UsuarioID:       c.UsuarioID,
		VentaID:         c.VentaID,
		MantenimientoID: c.MantenimientoID,
		EquipoID:        c.EquipoID,
		Monto:           c.Monto,
		FechaCreacion:   c.FechaCreacion.Format(time.RFC3339),
	}
}

// weekRange returns the Monday 00:00 opening the week containing ref and the
// Monday after, matching how the payroll card cuts weeks.
func weekRange(ref time.Time) (time.Time, time.Time) {
	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	year, month, day := ref.AddDate(0, 0, -(weekday - 1)).Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, ref.Location())
	return start, start.AddDate(0, 0, 7)
}

// FindByEquipment answers whether an assembly already paid out. ErrNotFound
// means no commission exists for the equipment yet.
func (s *CommissionService) FindByEquipment(ctx context.Context, equipmentID uint64) (*dto.CommissionDTO, error) {
	c, err := s.commissionRepository.FindByEquipment(ctx, nil, equipmentID)
	if err != nil {
		return nil, err
	}
	result := commissionToDTO(*c)
	return &result, nil
}

// GetWeekly aggregates a user's commissions for the week containing now.
func (s *CommissionService) GetWeekly(ctx context.Context, userID uint64) (*dto.WeeklyCommissionsDTO, error) {
	from, to := weekRange(time.Now())
	commissions, total, err := s.commissionRepository.GetWeeklyByUser(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	result := dto.WeeklyCommissionsDTO{
		Comisiones:  make([]dto.CommissionDTO, 0, len(commissions)),
		TotalSemana: total,
	}
	for _, c := range commissions {
		result.Comisiones = append(result.Comisiones, commissionToDTO(c))
	}
	return &result, nil
}

func (s *CommissionService) GetCommissions(ctx context.Context, limit, offset uint64) ([]dto.CommissionDTO, uint64, error) {
	commissions, total, err := s.commissionRepository.GetCommissions(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.CommissionDTO, 0, len(commissions))
	for _, c := range commissions {
		result = append(result, commissionToDTO(c))
	}
	return result, total, nil
}

// CreateCommission is the manual credit path for adjustments outside the
// automatic assembly and maintenance flows. An equipment that already paid
// out keeps its existing commission; re-posting it is a no-op.
func (s *CommissionService) CreateCommission(ctx context.Context, payload dto.CreateCommissionDTO) (*dto.CommissionDTO, error) {
	if payload.EquipoID.Valid {
		existing, err := s.commissionRepository.FindByEquipment(ctx, nil, payload.EquipoID.Uint64)
		if err == nil {
			result := commissionToDTO(*existing)
			return &result, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	commission := entities.Commission{
		UsuarioID:       payload.UsuarioID,
		VentaID:         payload.VentaID,
		MantenimientoID: payload.MantenimientoID,
		EquipoID:        payload.EquipoID,
		Monto:           payload.Monto,
	}
	newID, err := s.commissionRepository.CreateCommission(ctx, nil, commission)
	if err != nil {
		return nil, err
	}
	commission.ID = newID
	commission.FechaCreacion = time.Now()

	s.logger.Info("commission created",
		zap.Uint64("commissionId", newID),
		zap.Uint64("usuarioId", payload.UsuarioID),
		zap.String("monto", payload.Monto.String()),
	)
	result := commissionToDTO(commission)
	return &result, nil
}
