package entities

import "time"

// Lot is an intake batch of physical units received together. Immutable after
// creation.
type Lot struct {
	ID            uint64
	Etiqueta      string
	FechaRecibo   time.Time
	TotalEquipos  int
	UsuarioRecibo uint64
	FechaCreacion time.Time
}

// SerialLabel is one serial tag inside a lot. EquipoID stays nil until a
// technician first submits specs for the label.
type SerialLabel struct {
	ID           uint64
	LoteID       uint64
	Etiqueta     string
	EquipoID     *uint64
	EstadoID     *uint64
	EstadoNombre *string
}
