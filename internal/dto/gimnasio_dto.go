package dto

type GimnasioRequest struct {
	Nombre    string  `json:"nombre" validate:"required"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
}

type GimnasioResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Activo    bool    `json:"activo"`
}

type SucursalRequest struct {
	GimnasioID string  `json:"gimnasio_id" validate:"required,uuid"`
	Nombre     string  `json:"nombre"      validate:"required"`
	Direccion  *string `json:"direccion"`
}

type SucursalResponse struct {
	ID         string  `json:"id"`
	GimnasioID string  `json:"gimnasio_id"`
	Gimnasio   string  `json:"gimnasio,omitempty"`
	Nombre     string  `json:"nombre"`
	Direccion  *string `json:"direccion"`
	Activa     bool    `json:"activa"`
}
