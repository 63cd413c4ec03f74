package dto

import "github.com/shopspring/decimal"

type EquipmentStateDTO struct {
	ID         uint64 `json:"id"`
	Nombre     string `json:"nombre"`
	EsTerminal bool   `json:"es_terminal"`
}

type ComponentTypeDTO struct {
	ID          uint64 `json:"id"`
	Descripcion string `json:"descripcion"`
}

type MaintenanceTypeDTO struct {
	ID          uint64          `json:"id"`
	Descripcion string          `json:"descripcion"`
	Costo       decimal.Decimal `json:"costo"`
}
