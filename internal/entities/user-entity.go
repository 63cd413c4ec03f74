package entities

import "time"

// Roles are a fixed set; there is no permission matrix behind them.
const (
	RoleAdmin      = "admin"
	RoleTechnician = "tecnico"
	RoleSales      = "ventas"
)

type User struct {
	ID            uint64
	Nombre        string
	Email         string
	PasswordHash  string
	Rol           string
	SucursalID    uint64
	Activo        bool
	FechaCreacion time.Time
}

type Branch struct {
	ID            uint64
	Nombre        string
	Direccion     string
	Telefono      string
	FechaCreacion time.Time
}
