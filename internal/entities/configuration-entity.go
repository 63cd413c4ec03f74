package entities

import "time"

type Configuration struct {
	Clave              string
	Valor              string
	Descripcion        string
	FechaActualizacion time.Time
}
