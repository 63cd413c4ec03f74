package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SessionUserDTO struct {
	ID         uint64 `json:"id"`
	Nombre     string `json:"nombre"`
	Email      string `json:"email"`
	Rol        string `json:"rol"`
	SucursalID uint64 `json:"sucursal_id"`
}

// MeDTO wraps the session user under "user", matching what the front-end
// reads from /api/usuarios/me.
type MeDTO struct {
	User SessionUserDTO `json:"user"`
}

type LoginResultDTO struct {
	User  SessionUserDTO `json:"user"`
	Token string         `json:"token"`
}

type CreateUserDTO struct {
	Nombre     string `json:"nombre" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Rol        string `json:"rol" validate:"required,oneof=admin tecnico ventas"`
	SucursalID uint64 `json:"sucursal_id" validate:"required"`
}

type UpdateUserDTO struct {
	Nombre     *string `json:"nombre" validate:"omitempty,max=100"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Password   *string `json:"password" validate:"omitempty,min=6"`
	Rol        *string `json:"rol" validate:"omitempty,oneof=admin tecnico ventas"`
	SucursalID *uint64 `json:"sucursal_id"`
	Activo     *bool   `json:"activo"`
}

type UserDTO struct {
	ID            uint64 `json:"id"`
	Nombre        string `json:"nombre"`
	Email         string `json:"email"`
	Rol           string `json:"rol"`
	SucursalID    uint64 `json:"sucursal_id"`
	Activo        bool   `json:"activo"`
	FechaCreacion string `json:"fecha_creacion"`
}

type BranchDTO struct {
	ID        uint64 `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}
