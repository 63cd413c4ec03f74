package services

import (
	"context"
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

type InventoryService struct {
	inventoryRepository repositories.InventoryRepositoryInterface
	txManager           repositories.TxManagerInterface
	logger              *zap.Logger
}

func NewInventoryService(
	inventoryRepository repositories.InventoryRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		inventoryRepository: inventoryRepository,
		txManager:           txManager,
		logger:              logger,
	}
}

func itemToDTO(it entities.InventoryItem) dto.InventoryItemDTO {
	return dto.InventoryItemDTO{
		ID:               it.ID,
		Tipo:             it.Tipo,
		Especificacion:   it.Especificacion,
		Cantidad:         it.Cantidad,
		Estado:           it.Estado,
		Precio:           it.Precio,
		MemoriaRAMID:     it.MemoriaRAMID,
		AlmacenamientoID: it.AlmacenamientoID,
		EquipoID:         it.EquipoID,
		SucursalID:       it.SucursalID,
		FechaCreacion:    it.FechaCreacion.Format(time.RFC3339),
	}
}

func componentRef(memoriaRAMID, almacenamientoID *uint64) (entities.ComponentRef, error) {
	ref := entities.ComponentRef{MemoriaRAMID: memoriaRAMID, AlmacenamientoID: almacenamientoID}
	if ref.MemoriaRAMID == nil && ref.AlmacenamientoID == nil {
		return ref, apperrors.NewBadRequestError("memoria_ram_id or almacenamiento_id is required")
	}
	return ref, nil
}

// CheckStock answers the pre-submit availability probe of the intake form.
func (s *InventoryService) CheckStock(ctx context.Context, payload dto.StockCheckDTO) (*dto.StockCheckResultDTO, error) {
	ref, err := componentRef(payload.MemoriaRAMID, payload.AlmacenamientoID)
	if err != nil {
		return nil, err
	}
	if payload.Cantidad <= 0 {
		payload.Cantidad = 1
	}
	branchID, err := resolveBranch(ctx, payload.SucursalID)
	if err != nil {
		return nil, err
	}

	available, err := s.inventoryRepository.AvailableStock(ctx, ref, branchID)
	if err != nil {
		return nil, err
	}
	return &dto.StockCheckResultDTO{TieneStock: available >= payload.Cantidad}, nil
}

// DeductStock is the manual adjustment endpoint. The intake path deducts
// inside its own transaction; this one wraps a single deduction.
func (s *InventoryService) DeductStock(ctx context.Context, payload dto.DeductStockDTO) error {
	ref, err := componentRef(payload.MemoriaRAMID, payload.AlmacenamientoID)
	if err != nil {
		return err
	}
	branchID, err := resolveBranch(ctx, payload.SucursalID)
	if err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.inventoryRepository.DeductStock(ctx, tx, ref, payload.Cantidad, branchID)
	})
}

func (s *InventoryService) CreateItem(ctx context.Context, payload dto.CreateInventoryItemDTO) (*dto.InventoryItemDTO, error) {
	branchID, err := resolveBranch(ctx, payload.SucursalID)
	if err != nil {
		return nil, err
	}

	item := entities.InventoryItem{
		Tipo:             payload.Tipo,
		Especificacion:   payload.Especificacion,
		Cantidad:         payload.Cantidad,
		Estado:           payload.Estado,
		Precio:           payload.Precio,
		MemoriaRAMID:     null.Uint64FromPtr(payload.MemoriaRAMID),
		AlmacenamientoID: null.Uint64FromPtr(payload.AlmacenamientoID),
		SucursalID:       branchID,
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		newID, err := s.inventoryRepository.AddItem(ctx, tx, item)
		if err != nil {
			return err
		}
		item.ID = newID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.findItemDTO(ctx, item.ID)
}

// RegisterEquipment exposes the sellable registration as its own endpoint for
// units assembled before the system existed.
func (s *InventoryService) RegisterEquipment(ctx context.Context, payload dto.RegisterEquipmentDTO) (*dto.InventoryItemDTO, error) {
	branchID, err := resolveBranch(ctx, payload.SucursalID)
	if err != nil {
		return nil, err
	}

	var newID uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.inventoryRepository.RegisterEquipment(ctx, tx, payload.EquipoID, branchID, payload.Precio)
		if err != nil {
			return err
		}
		newID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.findItemDTO(ctx, newID)
}

func (s *InventoryService) GetItems(ctx context.Context, tipo string, limit, offset uint64) ([]dto.InventoryItemDTO, uint64, error) {
	items, total, err := s.inventoryRepository.GetItems(ctx, tipo, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.InventoryItemDTO, 0, len(items))
	for _, it := range items {
		result = append(result, itemToDTO(it))
	}
	return result, total, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id uint64, payload dto.UpdateInventoryItemDTO) (*dto.InventoryItemDTO, error) {
	existing, err := s.inventoryRepository.FindItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Especificacion != nil {
		existing.Especificacion = *payload.Especificacion
	}
	if payload.Cantidad != nil {
		existing.Cantidad = *payload.Cantidad
	}
	if payload.Estado != nil {
		existing.Estado = *payload.Estado
	}
	if payload.Precio != nil {
		existing.Precio = *payload.Precio
	}

	if err := s.inventoryRepository.UpdateItem(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.findItemDTO(ctx, id)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id uint64) error {
	return s.inventoryRepository.DeleteItem(ctx, id)
}

func (s *InventoryService) findItemDTO(ctx context.Context, id uint64) (*dto.InventoryItemDTO, error) {
	item, err := s.inventoryRepository.FindItem(ctx, id)
	if err != nil {
		return nil, err
	}
	result := itemToDTO(*item)
	return &result, nil
}

// resolveBranch prefers the branch in the session and falls back to an
// explicit sucursal_id for admin tooling.
func resolveBranch(ctx context.Context, explicit uint64) (uint64, error) {
	session, err := utils.GetSessionFromCtx(ctx)
	if err != nil {
		return 0, err
	}
	if session.BranchID != 0 {
		return session.BranchID, nil
	}
	if explicit != 0 {
		return explicit, nil
	}
	return 0, apperrors.NewBadRequestError("sucursal_id is required")
}
