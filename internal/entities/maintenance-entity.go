package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type Maintenance struct {
	ID            uint64
	Equipo        string
	Detalle       string
	Fecha         time.Time
	TecnicoID     uint64
	TipoID        null.Uint64
	Descripcion   string
	Costo         decimal.Decimal
	EquipoID      null.Uint64
	FechaCreacion time.Time
}
