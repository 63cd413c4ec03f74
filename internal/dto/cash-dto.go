package dto

import "github.com/shopspring/decimal"

type CreateCashMovementDTO struct {
	Tipo        string          `json:"tipo" validate:"required,oneof=venta gasto ingreso"`
	Monto       decimal.Decimal `json:"monto" validate:"required"`
	Descripcion string          `json:"descripcion" validate:"max=255"`
}

type CashMovementDTO struct {
	ID            uint64          `json:"id"`
	Tipo          string          `json:"tipo"`
	Monto         decimal.Decimal `json:"monto"`
	Descripcion   string          `json:"descripcion"`
	UsuarioID     uint64          `json:"usuario_id"`
	SucursalID    uint64          `json:"sucursal_id"`
	FechaCreacion string          `json:"fecha_creacion"`
}

type CashSummaryDTO struct {
	TotalVentas   decimal.Decimal `json:"total_ventas"`
	TotalGastos   decimal.Decimal `json:"total_gastos"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
}

type CashCutDTO struct {
	ID            uint64          `json:"id"`
	Folio         string          `json:"folio"`
	TotalVentas   decimal.Decimal `json:"total_ventas"`
	TotalGastos   decimal.Decimal `json:"total_gastos"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	UsuarioID     uint64          `json:"usuario_id"`
	SucursalID    uint64          `json:"sucursal_id"`
	FechaCorte    string          `json:"fecha_corte"`
}
