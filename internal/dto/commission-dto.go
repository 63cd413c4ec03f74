package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type CreateCommissionDTO struct {
	UsuarioID       uint64          `json:"usuario_id" validate:"required"`
	VentaID         null.Uint64     `json:"venta_id"`
	MantenimientoID null.Uint64     `json:"mantenimiento_id"`
	EquipoID        null.Uint64     `json:"equipo_id"`
	Monto           decimal.Decimal `json:"monto" validate:"required"`
}

type CommissionDTO struct {
	ID              uint64          `json:"id"`
	UsuarioID       uint64          `json:"usuario_id"`
	VentaID         null.Uint64     `json:"venta_id"`
	MantenimientoID null.Uint64     `json:"mantenimiento_id"`
	EquipoID        null.Uint64     `json:"equipo_id"`
	Monto           decimal.Decimal `json:"monto"`
	FechaCreacion   string          `json:"fecha_creacion"`
}

// WeeklyCommissionsDTO mirrors the shape the commissions card reads: the
// week's rows plus the aggregated total.
type WeeklyCommissionsDTO struct {
	Comisiones  []CommissionDTO `json:"comisiones"`
	TotalSemana decimal.Decimal `json:"total_semana"`
}
