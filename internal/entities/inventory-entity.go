package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

// InventoryItem is one stock record scoped to a branch. Exactly one of
// MemoriaRAMID / AlmacenamientoID / EquipoID is set depending on Tipo.
type InventoryItem struct {
	ID               uint64
	Tipo             string
	Especificacion   string
	Cantidad         int
	Estado           string
	Precio           decimal.Decimal
	MemoriaRAMID     null.Uint64
	AlmacenamientoID null.Uint64
	EquipoID         null.Uint64
	SucursalID       uint64
	FechaCreacion    time.Time
}

// ComponentRef identifies a stock line by catalog item; used by the stock
// check and deduction paths.
type ComponentRef struct {
	MemoriaRAMID     *uint64
	AlmacenamientoID *uint64
}
