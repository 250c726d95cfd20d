package dto

type CrearUsuarioRequest struct {
	Username   string   `json:"username" validate:"required,min=3"`
	Password   string   `json:"password" validate:"required,min=8"`
	Nombre     string   `json:"nombre"   validate:"required"`
	Apellido   string   `json:"apellido" validate:"required"`
	Cedula     string   `json:"cedula"   validate:"required,min=6"`
	Email      *string  `json:"email"    validate:"omitempty,email"`
	Telefono   *string  `json:"telefono"`
	Roles      []string `json:"roles"    validate:"required,min=1,dive,oneof=DEV ADMIN COACH CLIENTE"`
	GimnasioID *string  `json:"gimnasio_id" validate:"omitempty,uuid"`
	SucursalID *string  `json:"sucursal_id" validate:"omitempty,uuid"`
}

type ActualizarUsuarioRequest struct {
	Nombre     string   `json:"nombre"`
	Apellido   string   `json:"apellido"`
	Email      *string  `json:"email"    validate:"omitempty,email"`
	Telefono   *string  `json:"telefono"`
	Password   string   `json:"password" validate:"omitempty,min=8"`
	Roles      []string `json:"roles"    validate:"omitempty,dive,oneof=DEV ADMIN COACH CLIENTE"`
	GimnasioID *string  `json:"gimnasio_id" validate:"omitempty,uuid"`
	SucursalID *string  `json:"sucursal_id" validate:"omitempty,uuid"`
}

type UsuarioResponse struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Nombre     string   `json:"nombre"`
	Apellido   string   `json:"apellido"`
	Cedula     string   `json:"cedula"`
	Email      *string  `json:"email"`
	Telefono   *string  `json:"telefono"`
	Roles      []string `json:"roles"`
	GimnasioID *string  `json:"gimnasio_id"`
	SucursalID *string  `json:"sucursal_id"`
	Activo     bool     `json:"activo"`
}
