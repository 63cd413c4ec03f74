package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	"taller-system/internal/repositories"
	apperrors "taller-system/pkg/errors"
	"taller-system/pkg/utils"
)

type CashService struct {
	cashRepository repositories.CashRepositoryInterface
	txManager      repositories.TxManagerInterface
	logger         *zap.Logger
}

func NewCashService(
	cashRepository repositories.CashRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *CashService {
	return &CashService{
		cashRepository: cashRepository,
		txManager:      txManager,
		logger:         logger,
	}
}

func movementToDTO(m entities.CashMovement) dto.CashMovementDTO {
	return dto.CashMovementDTO{
		ID:            m.ID,
		Tipo:          m.Tipo,
		Monto:         m.Monto,
		Descripcion:   m.Descripcion,
		UsuarioID:     m.UsuarioID,
		SucursalID:    m.SucursalID,
		FechaCreacion: m.FechaCreacion.Format(time.RFC3339),
	}
}

func cutToDTO(c entities.CashCut) dto.CashCutDTO {
	return dto.CashCutDTO{
		ID:            c.ID,
		Folio:         c.Folio,
		TotalVentas:   c.TotalVentas,
		TotalGastos:   c.TotalGastos,
		TotalIngresos: c.TotalIngresos,
		UsuarioID:     c.UsuarioID,
		SucursalID:    c.SucursalID,
		FechaCorte:    c.FechaCorte.Format(time.RFC3339),
	}
}

func (s *CashService) CreateMovement(ctx context.Context, payload dto.CreateCashMovementDTO) (*dto.CashMovementDTO, error) {
	session, err := utils.GetSessionFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if payload.Monto.IsNegative() || payload.Monto.IsZero() {
		return nil, apperrors.NewBadRequestError("monto must be positive")
	}

	movement := entities.CashMovement{
		Tipo:        payload.Tipo,
		Monto:       payload.Monto,
		Descripcion: payload.Descripcion,
		UsuarioID:   session.UserID,
		SucursalID:  session.BranchID,
	}
	newID, err := s.cashRepository.CreateMovement(ctx, movement)
	if err != nil {
		return nil, err
	}
	movement.ID = newID
	movement.FechaCreacion = time.Now()

	s.logger.Info("cash movement registered",
		zap.Uint64("movementId", newID),
		zap.String("tipo", payload.Tipo),
		zap.String("monto", payload.Monto.String()),
	)
	result := movementToDTO(movement)
	return &result, nil
}

// GetSummary returns the totals accumulated since the last cut for the
// session's branch.
func (s *CashService) GetSummary(ctx context.Context) (*dto.CashSummaryDTO, error) {
	session, err := utils.GetSessionFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := s.cashRepository.GetOpenSummary(ctx, nil, session.BranchID)
	if err != nil {
		return nil, err
	}
	return &dto.CashSummaryDTO{
		TotalVentas:   summary.TotalVentas,
		TotalGastos:   summary.TotalGastos,
		TotalIngresos: summary.TotalIngresos,
	}, nil
}

func (s *CashService) GetOpenMovements(ctx context.Context) ([]dto.CashMovementDTO, error) {
	session, err := utils.GetSessionFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := s.cashRepository.GetOpenMovements(ctx, session.BranchID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CashMovementDTO, 0, len(movements))
	for _, m := range movements {
		result = append(result, movementToDTO(m))
	}
	return result, nil
}

// CreateCut snapshots the open totals under a folio and stamps the open
// movements, all in one transaction so a movement can never be counted twice.
func (s *CashService) CreateCut(ctx context.Context) (*dto.CashCutDTO, error) {
	session, err := utils.GetSessionFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	cut := entities.CashCut{
		Folio:      uuid.NewString(),
		UsuarioID:  session.UserID,
		SucursalID: session.BranchID,
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		summary, err := s.cashRepository.GetOpenSummary(ctx, tx, session.BranchID)
		if err != nil {
			return err
		}
		cut.TotalVentas = summary.TotalVentas
		cut.TotalGastos = summary.TotalGastos
		cut.TotalIngresos = summary.TotalIngresos

		cutID, err := s.cashRepository.CreateCut(ctx, tx, cut)
		if err != nil {
			return err
		}
		cut.ID = cutID
		return s.cashRepository.StampMovements(ctx, tx, cutID, session.BranchID)
	})
	if err != nil {
		s.logger.Error("cash cut failed", zap.Uint64("sucursalId", session.BranchID), zap.Error(err))
		return nil, err
	}
	cut.FechaCorte = time.Now()

	s.logger.Info("cash cut created",
		zap.Uint64("cutId", cut.ID),
		zap.String("folio", cut.Folio),
		zap.Uint64("sucursalId", session.BranchID),
	)
	result := cutToDTO(cut)
	return &result, nil
}

func (s *CashService) GetCuts(ctx context.Context, limit, offset uint64) ([]dto.CashCutDTO, uint64, error) {
	session, err := utils.GetSessionFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	cuts, total, err := s.cashRepository.GetCuts(ctx, session.BranchID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.CashCutDTO, 0, len(cuts))
	for _, c := range cuts {
		result = append(result, cutToDTO(c))
	}
	return result, total, nil
}
