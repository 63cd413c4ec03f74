package entities

import "time"

type Equipment struct {
	ID                 uint64
	Nombre             string
	Descripcion        string
	Procesador         string
	Tipo               string
	LoteEtiquetaID     uint64
	LoteID             uint64
	EstadoID           uint64
	Estado             *EquipmentState
	Cantidad           int
	SucursalID         uint64
	TecnicoID          uint64
	RAMModules         []RAMAssignment
	Storages           []StorageAssignment
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}

// RAMAssignment attaches one catalog RAM type to an equipment. Duplicate
// catalog ids represent multiple identical modules.
type RAMAssignment struct {
	MemoriaRAMID uint64
	Cantidad     int
	Slot         *int
}

type StorageAssignment struct {
	AlmacenamientoID  uint64
	Rol               *string
	CapacidadOverride *int
	Orden             *int
	Cantidad          int
}
