package entities

import "github.com/shopspring/decimal"

// EquipmentState is a review state from catalogo_estados. Terminal-ness is an
// explicit flag; nothing in the code compares against a literal state id.
type EquipmentState struct {
	ID         uint64
	Nombre     string
	EsTerminal bool
}

type RAMType struct {
	ID          uint64
	Descripcion string
}

type StorageType struct {
	ID          uint64
	Descripcion string
}

type MaintenanceType struct {
	ID          uint64
	Descripcion string
	Costo       decimal.Decimal
}
