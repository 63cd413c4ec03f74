package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

// CreateMaintenanceDTO records a maintenance job. TipoID selects a catalog
// entry with its cost; when absent, Descripcion and Costo describe an "otro"
// job priced by hand.
type CreateMaintenanceDTO struct {
	Equipo      string           `json:"equipo" validate:"required,max=150"`
	Detalle     string           `json:"detalle" validate:"required,max=500"`
	Fecha       string           `json:"fecha" validate:"required"`
	TipoID      null.Uint64      `json:"tipo_id"`
	Descripcion string           `json:"descripcion" validate:"max=255"`
	Costo       *decimal.Decimal `json:"costo"`
	EquipoID    null.Uint64      `json:"equipo_id"`
}

type MaintenanceDTO struct {
	ID            uint64          `json:"id"`
	Equipo        string          `json:"equipo"`
	Detalle       string          `json:"detalle"`
	Fecha         string          `json:"fecha"`
	TecnicoID     uint64          `json:"tecnico_id"`
	TipoID        null.Uint64     `json:"tipo_id"`
	Descripcion   string          `json:"descripcion"`
	Costo         decimal.Decimal `json:"costo"`
	EquipoID      null.Uint64     `json:"equipo_id"`
	FechaCreacion string          `json:"fecha_creacion"`
}
