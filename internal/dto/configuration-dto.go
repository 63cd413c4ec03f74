package dto

type ConfigurationDTO struct {
	Clave       string `json:"clave"`
	Valor       string `json:"valor"`
	Descripcion string `json:"descripcion,omitempty"`
}

type UpdateConfigurationDTO struct {
	Valor string `json:"valor" validate:"required,max=255"`
}
