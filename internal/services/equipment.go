package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	"taller-system/internal/repositories"
)

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func equipmentToDTO(e entities.Equipment) dto.EquipmentDTO {
	result := dto.EquipmentDTO{
		ID:             e.ID,
		Nombre:         e.Nombre,
		Descripcion:    e.Descripcion,
		Procesador:     e.Procesador,
		Tipo:           e.Tipo,
		LoteEtiquetaID: e.LoteEtiquetaID,
		LoteID:         e.LoteID,
		EstadoID:       e.EstadoID,
		Cantidad:       e.Cantidad,
		SucursalID:     e.SucursalID,
		TecnicoID:      e.TecnicoID,
		RAMModules:     make([]dto.RAMModuleDTO, 0, len(e.RAMModules)),
		Storages:       make([]dto.StorageDeviceDTO, 0, len(e.Storages)),
		FechaCreacion:  e.FechaCreacion.Format(time.RFC3339),
	}
	if e.Estado != nil {
		result.EstadoNombre = e.Estado.Nombre
		result.EsTerminal = e.Estado.EsTerminal
	}
	for _, m := range e.RAMModules {
		result.RAMModules = append(result.RAMModules, dto.RAMModuleDTO{
			MemoriaRAMID: m.MemoriaRAMID,
			Cantidad:     m.Cantidad,
			Slot:         m.Slot,
		})
	}
	for _, s := range e.Storages {
		result.Storages = append(result.Storages, dto.StorageDeviceDTO{
			AlmacenamientoID:  s.AlmacenamientoID,
			Rol:               s.Rol,
			CapacidadOverride: s.CapacidadOverride,
			Orden:             s.Orden,
			Cantidad:          s.Cantidad,
		})
	}
	return result
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	e, err := s.equipmentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := equipmentToDTO(*e)
	return &result, nil
}

// FindByLabelText resolves the serial the technician typed or scanned.
// ErrNotFound propagates so the controller can answer 404 and the form
// switches to create mode.
func (s *EquipmentService) FindByLabelText(ctx context.Context, texto string) (*dto.EquipmentDTO, error) {
	e, err := s.equipmentRepository.FindByLabelText(ctx, texto)
	if err != nil {
		return nil, err
	}
	result := equipmentToDTO(*e)
	return &result, nil
}

func (s *EquipmentService) GetEquipments(ctx context.Context, limit, offset uint64) ([]dto.EquipmentDTO, uint64, error) {
	equipments, total, err := s.equipmentRepository.GetEquipments(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.EquipmentDTO, 0, len(equipments))
	for _, e := range equipments {
		result = append(result, equipmentToDTO(e))
	}
	return result, total, nil
}

func (s *EquipmentService) GetEquipmentsByState(ctx context.Context, stateID uint64) ([]dto.EquipmentDTO, error) {
	equipments, err := s.equipmentRepository.GetEquipmentsByState(ctx, stateID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EquipmentDTO, 0, len(equipments))
	for _, e := range equipments {
		result = append(result, equipmentToDTO(e))
	}
	return result, nil
}
