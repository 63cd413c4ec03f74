package services

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	"taller-system/internal/repositories"
	apperrors "taller-system/pkg/errors"
	"taller-system/pkg/utils"
)

const maintenanceDateLayout = "2006-01-02"

type MaintenanceService struct {
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	catalogRepository     repositories.CatalogRepositoryInterface
	commissionRepository  repositories.CommissionRepositoryInterface
	configuration         *ConfigurationService
	txManager             repositories.TxManagerInterface
	logger                *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	catalogRepository repositories.CatalogRepositoryInterface,
	commissionRepository repositories.CommissionRepositoryInterface,
	configuration *ConfigurationService,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepository: maintenanceRepository,
		catalogRepository:     catalogRepository,
		commissionRepository:  commissionRepository,
		configuration:         configuration,
		txManager:             txManager,
		logger:                logger,
	}
}

func maintenanceToDTO(m entities.Maintenance) dto.MaintenanceDTO {
	return dto.MaintenanceDTO{
		ID:            m.ID,
		Equipo:        m.Equipo,
		Detalle:       m.Detalle,
		Fecha:         m.Fecha.Format(maintenanceDateLayout),
		TecnicoID:     m.TecnicoID,
		TipoID:        m.TipoID,
		Descripcion:   m.Descripcion,
		Costo:         m.Costo,
		EquipoID:      m.EquipoID,
		FechaCreacion: m.FechaCreacion.Format(time.RFC3339),
	}
}

// CreateMaintenance records the job and credits the technician a percentage
// of its cost, both in one transaction. Catalog jobs take their cost from the
// catalog; "otro" jobs require an explicit cost.
func (s *MaintenanceService) CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*dto.MaintenanceDTO, error) {
	session, err := utils.GetSessionFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	fecha, err := time.Parse(maintenanceDateLayout, payload.Fecha)
	if err != nil {
		return nil, apperrors.NewBadRequestError("fecha must be yyyy-mm-dd")
	}

	maintenance := entities.Maintenance{
		Equipo:      payload.Equipo,
		Detalle:     payload.Detalle,
		Fecha:       fecha,
		TecnicoID:   session.UserID,
		TipoID:      payload.TipoID,
		Descripcion: payload.Descripcion,
		EquipoID:    payload.EquipoID,
	}

	if payload.TipoID.Valid {
		tipo, err := s.catalogRepository.FindMaintenanceType(ctx, payload.TipoID.Uint64)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("unknown tipo_id")
		}
		if err != nil {
			return nil, err
		}
		maintenance.Costo = tipo.Costo
		if maintenance.Descripcion == "" {
			maintenance.Descripcion = tipo.Descripcion
		}
	} else {
		if payload.Costo == nil {
			return nil, apperrors.NewBadRequestError("costo is required when tipo_id is empty")
		}
		maintenance.Costo = *payload.Costo
	}

	rate, err := s.configuration.GetDecimal(ctx, ConfigKeyMaintenanceCommission)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		newID, err := s.maintenanceRepository.CreateMaintenance(ctx, tx, maintenance)
		if err != nil {
			return err
		}
		maintenance.ID = newID

		_, err = s.commissionRepository.CreateCommission(ctx, tx, entities.Commission{
			UsuarioID:       session.UserID,
			MantenimientoID: null.Uint64From(newID),
			Monto:           maintenance.Costo.Mul(rate),
		})
		return err
	})
	if err != nil {
		s.logger.Error("maintenance registration failed", zap.Error(err))
		return nil, err
	}
	maintenance.FechaCreacion = time.Now()

	s.logger.Info("maintenance registered",
		zap.Uint64("maintenanceId", maintenance.ID),
		zap.Uint64("tecnicoId", session.UserID),
		zap.String("costo", maintenance.Costo.String()),
	)
	result := maintenanceToDTO(maintenance)
	return &result, nil
}

func (s *MaintenanceService) GetMaintenances(ctx context.Context, limit, offset uint64) ([]dto.MaintenanceDTO, uint64, error) {
	maintenances, total, err := s.maintenanceRepository.GetMaintenances(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.MaintenanceDTO, 0, len(maintenances))
	for _, m := range maintenances {
		result = append(result, maintenanceToDTO(m))
	}
	return result, total, nil
}
