package dto

type CreateLotDTO struct {
	TotalEquipos int `json:"total_equipos" validate:"required,min=1,max=100"`
}

type LotDTO struct {
	ID            uint64 `json:"id"`
	Etiqueta      string `json:"etiqueta"`
	FechaRecibo   string `json:"fecha_recibo"`
	TotalEquipos  int    `json:"total_equipos"`
	UsuarioRecibo uint64 `json:"usuario_recibio"`
	FechaCreacion string `json:"fecha_creacion"`
}

type SerialLabelDTO struct {
	LoteEtiquetaID uint64  `json:"lote_etiqueta_id"`
	LoteID         uint64  `json:"lote_id"`
	Etiqueta       string  `json:"etiqueta"`
	EquipoID       *uint64 `json:"equipo_id"`
	EstadoID       *uint64 `json:"estado_id"`
	EstadoNombre   *string `json:"estado_nombre"`
}
