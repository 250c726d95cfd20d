package dto

// VerificarCheckInRequest starts a check-in attempt. Both fields are hard
// preconditions: check-ins are always branch-scoped.
type VerificarCheckInRequest struct {
	Cedula     string `json:"cedula"      validate:"required"`
	SucursalID string `json:"sucursal_id" validate:"required,uuid"`
}

// Decision actions.
const (
	AccionAutoAprobado         = "auto_aprobado"
	AccionRequiereConfirmacion = "requiere_confirmacion"
)

// Decision motives, surfaced as distinct warnings by the console.
const (
	MotivoSinMembresia     = "sin_membresia"
	MotivoMembresiaVencida = "membresia_vencida"
)

// CheckInDecision is ephemeral — it is never persisted, only rendered in the
// operator's confirmation view.
type CheckInDecision struct {
	Usuario       UsuarioResponse    `json:"usuario"`
	Membresia     *MembresiaResponse `json:"membresia"`
	VigenciaEstado string            `json:"vigencia_estado"`
	DiasRestantes *int               `json:"dias_restantes"`
	Accion        string             `json:"accion"`
	Motivo        string             `json:"motivo,omitempty"`
}

// RegistrarCheckInRequest records the access event after the decision — either
// automatically (auto_aprobado) or after the operator's manual override.
type RegistrarCheckInRequest struct {
	UsuarioID   string  `json:"usuario_id"   validate:"required,uuid"`
	SucursalID  string  `json:"sucursal_id"  validate:"required,uuid"`
	MembresiaID *string `json:"membresia_id" validate:"omitempty,uuid"`
	Manual      bool    `json:"manual"`
}

type CheckInResponse struct {
	ID         string `json:"id"`
	UsuarioID  string `json:"usuario_id"`
	Usuario    string `json:"usuario,omitempty"`
	SucursalID string `json:"sucursal_id"`
	Sucursal   string `json:"sucursal,omitempty"`
	Resultado  string `json:"resultado"`
	CreatedAt  string `json:"created_at"`
}

type CheckInFilter struct {
	SucursalID string `form:"sucursal_id" validate:"omitempty,uuid"`
	Fecha      string `form:"fecha"` // YYYY-MM-DD
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CheckInListResponse struct {
	Data  []CheckInResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
