package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

const (
	CashMovementSale    = "venta"
	CashMovementExpense = "gasto"
	CashMovementIncome  = "ingreso"
)

// CashMovement is a single register entry. CorteID stays null until the
// movement is swept into a cut.
type CashMovement struct {
	ID            uint64
	Tipo          string
	Monto         decimal.Decimal
	Descripcion   string
	UsuarioID     uint64
	SucursalID    uint64
	CorteID       null.Uint64
	FechaCreacion time.Time
}

// CashCut snapshots the running totals and closes the open movements under a
// folio.
type CashCut struct {
	ID            uint64
	Folio         string
	TotalVentas   decimal.Decimal
	TotalGastos   decimal.Decimal
	TotalIngresos decimal.Decimal
	UsuarioID     uint64
	SucursalID    uint64
	FechaCorte    time.Time
}

// CashSummary is the open balance since the last cut.
type CashSummary struct {
	TotalVentas   decimal.Decimal
	TotalGastos   decimal.Decimal
	TotalIngresos decimal.Decimal
}
