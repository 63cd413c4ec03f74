package services

import (
	"context"
	"errors"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/entities"
	"taller-system/internal/repositories"
	apperrors "taller-system/pkg/errors"
	"taller-system/pkg/utils"
)

// componentNeed is one tallied stock requirement of a submission.
type componentNeed struct {
	ref      entities.ComponentRef
	cantidad int
}

// IntakeService runs the equipment registration workflow: resolve the serial
// label, create or update the equipment with its components, and on reaching
// a terminal state deduct the consumed parts, put the unit up for sale and
// credit the technician. All writes happen in one transaction.
type IntakeService struct {
	equipmentRepository  repositories.EquipmentRepositoryInterface
	lotRepository        repositories.LotRepositoryInterface
	catalogRepository    repositories.CatalogRepositoryInterface
	inventoryRepository  repositories.InventoryRepositoryInterface
	commissionRepository repositories.CommissionRepositoryInterface
	configuration        *ConfigurationService
	txManager            repositories.TxManagerInterface
	logger               *zap.Logger
}

func NewIntakeService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	lotRepository repositories.LotRepositoryInterface,
	catalogRepository repositories.CatalogRepositoryInterface,
	inventoryRepository repositories.InventoryRepositoryInterface,
	commissionRepository repositories.CommissionRepositoryInterface,
	configuration *ConfigurationService,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *IntakeService {
	return &IntakeService{
		equipmentRepository:  equipmentRepository,
		lotRepository:        lotRepository,
		catalogRepository:    catalogRepository,
		inventoryRepository:  inventoryRepository,
		commissionRepository: commissionRepository,
		configuration:        configuration,
		txManager:            txManager,
		logger:               logger,
	}
}

// tallyComponents folds the selected slots into per-catalog-item quantities;
// two slots with the same RAM type become one need of the summed quantity.
func tallyComponents(rams []dto.RAMModuleDTO, storages []dto.StorageDeviceDTO) []componentNeed {
	needs := []componentNeed{}
	ramIdx := map[uint64]int{}
	for _, m := range rams {
		if i, ok := ramIdx[m.MemoriaRAMID]; ok {
			needs[i].cantidad += m.Cantidad
			continue
		}
		id := m.MemoriaRAMID
		ramIdx[id] = len(needs)
		needs = append(needs, componentNeed{
			ref:      entities.ComponentRef{MemoriaRAMID: &id},
			cantidad: m.Cantidad,
		})
	}
	storageIdx := map[uint64]int{}
	for _, d := range storages {
		if i, ok := storageIdx[d.AlmacenamientoID]; ok {
			needs[i].cantidad += d.Cantidad
			continue
		}
		id := d.AlmacenamientoID
		storageIdx[id] = len(needs)
		needs = append(needs, componentNeed{
			ref:      entities.ComponentRef{AlmacenamientoID: &id},
			cantidad: d.Cantidad,
		})
	}
	return needs
}

// CheckStock answers whether the branch can cover every tallied component of
// a submission. Advisory only; the save path re-checks under row locks.
func (s *IntakeService) CheckStock(ctx context.Context, ref entities.ComponentRef, cantidad int, branchID uint64) (bool, error) {
	available, err := s.inventoryRepository.AvailableStock(ctx, ref, branchID)
	if err != nil {
		return false, err
	}
	return available >= cantidad, nil
}

// SaveEquipment is the single entry point of the intake form, for both first
// submission and edits of an existing unit.
func (s *IntakeService) SaveEquipment(ctx context.Context, payload dto.SaveEquipmentDTO) (*dto.EquipmentDTO, error) {
	session, err := utils.GetSessionFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	label, err := s.lotRepository.FindLabelByID(ctx, payload.LoteEtiquetaID)
	if err != nil {
		return nil, err
	}

	state, err := s.catalogRepository.FindState(ctx, payload.EstadoID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewBadRequestError("unknown estado_id")
	}
	if err != nil {
		return nil, err
	}

	var existing *entities.Equipment
	if label.EquipoID != nil {
		existing, err = s.equipmentRepository.FindByID(ctx, *label.EquipoID)
		if err != nil {
			return nil, err
		}
		if existing.Estado != nil && existing.Estado.EsTerminal {
			return nil, apperrors.ErrEquipmentFinalized
		}
	}

	rams := payload.SelectedRAM()
	storages := payload.SelectedStorages()
	needs := tallyComponents(rams, storages)

	if state.EsTerminal {
		// An assembled unit needs both kinds of parts, not just one.
		if len(rams) == 0 || len(storages) == 0 {
			return nil, apperrors.ErrComponentsRequired
		}
		for _, need := range needs {
			ok, err := s.CheckStock(ctx, need.ref, need.cantidad, session.BranchID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, apperrors.ErrInsufficientStock
			}
		}
	}

	equipment := entities.Equipment{
		Nombre:         payload.Nombre,
		Descripcion:    payload.Descripcion,
		Procesador:     payload.Procesador,
		Tipo:           payload.Tipo,
		LoteEtiquetaID: payload.LoteEtiquetaID,
		EstadoID:       payload.EstadoID,
		Cantidad:       payload.Cantidad,
		SucursalID:     session.BranchID,
		TecnicoID:      session.UserID,
	}
	if equipment.Cantidad == 0 {
		equipment.Cantidad = 1
	}

	isNew := existing == nil

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if isNew {
			newID, err := s.equipmentRepository.CreateEquipment(ctx, tx, equipment)
			if err != nil {
				return err
			}
			equipment.ID = newID
		} else {
			equipment.ID = existing.ID
			if err := s.equipmentRepository.UpdateEquipment(ctx, tx, existing.ID, equipment); err != nil {
				return err
			}
		}

		if err := s.equipmentRepository.ReplaceComponents(ctx, tx, equipment.ID, toRAMAssignments(rams), toStorageAssignments(storages)); err != nil {
			return err
		}

		if state.EsTerminal {
			return s.finalize(ctx, tx, equipment, session, needs)
		}
		if isNew {
			return s.addLooseComponents(ctx, tx, session.BranchID, needs)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("intake failed",
			zap.Uint64("loteEtiquetaId", payload.LoteEtiquetaID),
			zap.Bool("isNew", isNew),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("equipment saved",
		zap.Uint64("equipoId", equipment.ID),
		zap.String("etiqueta", label.Etiqueta),
		zap.String("estado", state.Nombre),
		zap.Bool("terminal", state.EsTerminal),
	)

	return s.FindSaved(ctx, equipment.ID)
}

// finalize runs the terminal-state side effects inside the caller's
// transaction: consume stock, register the unit as sellable and credit the
// technician once.
func (s *IntakeService) finalize(ctx context.Context, tx pgx.Tx, equipment entities.Equipment, session utils.Session, needs []componentNeed) error {
	for _, need := range needs {
		if err := s.inventoryRepository.DeductStock(ctx, tx, need.ref, need.cantidad, session.BranchID); err != nil {
			return err
		}
	}

	// Price zero until sales assigns one.
	if _, err := s.inventoryRepository.RegisterEquipment(ctx, tx, equipment.ID, session.BranchID, decimal.Zero); err != nil {
		return err
	}

	_, err := s.commissionRepository.FindByEquipment(ctx, tx, equipment.ID)
	if err == nil {
		// Already credited on a previous finalization attempt.
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	amount, err := s.configuration.GetDecimal(ctx, ConfigKeyAssemblyCommission)
	if err != nil {
		return err
	}
	_, err = s.commissionRepository.CreateCommission(ctx, tx, entities.Commission{
		UsuarioID: session.UserID,
		EquipoID:  null.Uint64From(equipment.ID),
		Monto:     amount,
	})
	return err
}

// addLooseComponents registers the parts pulled out of a freshly received
// unit as used stock.
func (s *IntakeService) addLooseComponents(ctx context.Context, tx pgx.Tx, branchID uint64, needs []componentNeed) error {
	for _, need := range needs {
		item := entities.InventoryItem{
			Cantidad:   need.cantidad,
			Estado:     "usado",
			Precio:     decimal.Zero,
			SucursalID: branchID,
		}
		switch {
		case need.ref.MemoriaRAMID != nil:
			item.Tipo = "ram"
			item.MemoriaRAMID = null.Uint64From(*need.ref.MemoriaRAMID)
		case need.ref.AlmacenamientoID != nil:
			item.Tipo = "almacenamiento"
			item.AlmacenamientoID = null.Uint64From(*need.ref.AlmacenamientoID)
		}
		if _, err := s.inventoryRepository.AddItem(ctx, tx, item); err != nil {
			return err
		}
	}
	return nil
}

// FindSaved reloads the persisted equipment with its joined state and
// components for the response body.
func (s *IntakeService) FindSaved(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	e, err := s.equipmentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := equipmentToDTO(*e)
	return &result, nil
}

func toRAMAssignments(modules []dto.RAMModuleDTO) []entities.RAMAssignment {
	out := make([]entities.RAMAssignment, 0, len(modules))
	for _, m := range modules {
		out = append(out, entities.RAMAssignment{
			MemoriaRAMID: m.MemoriaRAMID,
			Cantidad:     m.Cantidad,
			Slot:         m.Slot,
		})
	}
	return out
}

func toStorageAssignments(devices []dto.StorageDeviceDTO) []entities.StorageAssignment {
	out := make([]entities.StorageAssignment, 0, len(devices))
	for _, d := range devices {
		out = append(out, entities.StorageAssignment{
			AlmacenamientoID:  d.AlmacenamientoID,
			Rol:               d.Rol,
			CapacidadOverride: d.CapacidadOverride,
			Orden:             d.Orden,
			Cantidad:          d.Cantidad,
		})
	}
	return out
}
