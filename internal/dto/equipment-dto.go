package dto

// RAMModuleDTO is one slot of the component editor. A zero MemoriaRAMID means
// the slot was never selected and is dropped before processing.
type RAMModuleDTO struct {
	MemoriaRAMID uint64 `json:"memoria_ram_id"`
	Cantidad     int    `json:"cantidad" validate:"omitempty,min=1"`
	Slot         *int   `json:"slot"`
}

type StorageDeviceDTO struct {
	AlmacenamientoID  uint64  `json:"almacenamiento_id"`
	Rol               *string `json:"rol"`
	CapacidadOverride *int    `json:"capacidad_override"`
	Orden             *int    `json:"orden"`
	Cantidad          int     `json:"cantidad" validate:"omitempty,min=1"`
}

// SaveEquipmentDTO is the intake submission payload, shared by create and
// update. Technician and branch come from the session, not the body.
type SaveEquipmentDTO struct {
	Nombre         string             `json:"nombre" validate:"required,max=150"`
	Descripcion    string             `json:"descripcion" validate:"max=500"`
	Procesador     string             `json:"procesador" validate:"required,max=150"`
	Tipo           string             `json:"tipo" validate:"omitempty,max=50"`
	LoteEtiquetaID uint64             `json:"lote_etiqueta_id" validate:"required"`
	EstadoID       uint64             `json:"estado_id" validate:"required"`
	Cantidad       int                `json:"cantidad" validate:"omitempty,min=1"`
	RAMModules     []RAMModuleDTO     `json:"ramModules" validate:"dive"`
	Storages       []StorageDeviceDTO `json:"storages" validate:"dive"`
}

// SelectedRAM returns the slots with a catalog item chosen, defaulting the
// per-slot quantity to 1 the way the original form did.
func (d SaveEquipmentDTO) SelectedRAM() []RAMModuleDTO {
	out := make([]RAMModuleDTO, 0, len(d.RAMModules))
	for _, m := range d.RAMModules {
		if m.MemoriaRAMID == 0 {
			continue
		}
		if m.Cantidad == 0 {
			m.Cantidad = 1
		}
		out = append(out, m)
	}
	return out
}

func (d SaveEquipmentDTO) SelectedStorages() []StorageDeviceDTO {
	out := make([]StorageDeviceDTO, 0, len(d.Storages))
	for _, s := range d.Storages {
		if s.AlmacenamientoID == 0 {
			continue
		}
		if s.Cantidad == 0 {
			s.Cantidad = 1
		}
		out = append(out, s)
	}
	return out
}

type EquipmentDTO struct {
	ID             uint64             `json:"id"`
	Nombre         string             `json:"nombre"`
	Descripcion    string             `json:"descripcion"`
	Procesador     string             `json:"procesador"`
	Tipo           string             `json:"tipo"`
	LoteEtiquetaID uint64             `json:"lote_etiqueta_id"`
	LoteID         uint64             `json:"lote_id"`
	EstadoID       uint64             `json:"estado_id"`
	EstadoNombre   string             `json:"estado_nombre"`
	EsTerminal     bool               `json:"es_terminal"`
	Cantidad       int                `json:"cantidad"`
	SucursalID     uint64             `json:"sucursal_id"`
	TecnicoID      uint64             `json:"tecnico_id"`
	RAMModules     []RAMModuleDTO     `json:"ramModules"`
	Storages       []StorageDeviceDTO `json:"storages"`
	FechaCreacion  string             `json:"fecha_creacion"`
}
