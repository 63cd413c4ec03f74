package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type StockCheckDTO struct {
	MemoriaRAMID     *uint64 `query:"memoria_ram_id"`
	AlmacenamientoID *uint64 `query:"almacenamiento_id"`
	Cantidad         int     `query:"cantidad"`
	SucursalID       uint64  `query:"sucursal_id"`
}

type StockCheckResultDTO struct {
	TieneStock bool `json:"tieneStock"`
}

type DeductStockDTO struct {
	MemoriaRAMID     *uint64 `json:"memoria_ram_id"`
	AlmacenamientoID *uint64 `json:"almacenamiento_id"`
	Cantidad         int     `json:"cantidad" validate:"required,min=1"`
	SucursalID       uint64  `json:"sucursal_id"`
}

type CreateInventoryItemDTO struct {
	Tipo             string          `json:"tipo" validate:"required,max=50"`
	Especificacion   string          `json:"especificacion" validate:"max=255"`
	Cantidad         int             `json:"cantidad" validate:"required,min=1"`
	Estado           string          `json:"estado" validate:"required,max=50"`
	Precio           decimal.Decimal `json:"precio"`
	MemoriaRAMID     *uint64         `json:"memoria_ram_id"`
	AlmacenamientoID *uint64         `json:"almacenamiento_id"`
	SucursalID       uint64          `json:"sucursal_id"`
}

type UpdateInventoryItemDTO struct {
	Especificacion *string          `json:"especificacion" validate:"omitempty,max=255"`
	Cantidad       *int             `json:"cantidad" validate:"omitempty,min=0"`
	Estado         *string          `json:"estado" validate:"omitempty,max=50"`
	Precio         *decimal.Decimal `json:"precio"`
}

type RegisterEquipmentDTO struct {
	EquipoID   uint64          `json:"equipo_id" validate:"required"`
	SucursalID uint64          `json:"sucursal_id"`
	Precio     decimal.Decimal `json:"precio"`
}

type InventoryItemDTO struct {
	ID               uint64          `json:"id"`
	Tipo             string          `json:"tipo"`
	Especificacion   string          `json:"especificacion"`
	Cantidad         int             `json:"cantidad"`
	Estado           string          `json:"estado"`
	Precio           decimal.Decimal `json:"precio"`
	MemoriaRAMID     null.Uint64     `json:"memoria_ram_id"`
	AlmacenamientoID null.Uint64     `json:"almacenamiento_id"`
	EquipoID         null.Uint64     `json:"equipo_id"`
	SucursalID       uint64          `json:"sucursal_id"`
	FechaCreacion    string          `json:"fecha_creacion"`
}
