package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

// Commission is a monetary credit for a technician or salesperson. At most one
// commission may reference a given equipment (assembly commissions are
// idempotent by equipment id).
type Commission struct {
	ID              uint64
	UsuarioID       uint64
	VentaID         null.Uint64
	MantenimientoID null.Uint64
	EquipoID        null.Uint64
	Monto           decimal.Decimal
	FechaCreacion   time.Time
}
