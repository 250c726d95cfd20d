package dto

import "github.com/shopspring/decimal"

// PagoRequest is one entry of a split payment.
type PagoRequest struct {
	TipoPagoID string          `json:"tipo_pago_id" validate:"required,uuid"`
	Monto      decimal.Decimal `json:"monto"        validate:"required"`
	Referencia *string         `json:"referencia"`
}

// CrearMembresiaRequest creates one membership per cliente_id (group purchase
// when more than one). The server computes fecha_fin and derives the estado
// from the payment sum: partial payment leaves PENDIENTE plus saldo.
type CrearMembresiaRequest struct {
	ClienteIDs      []string      `json:"cliente_ids"       validate:"required,min=1,dive,uuid"`
	TipoMembresiaID string        `json:"tipo_membresia_id" validate:"required,uuid"`
	FechaInicio     string        `json:"fecha_inicio"      validate:"required,datetime=2006-01-02"`
	Pagos           []PagoRequest `json:"pagos"             validate:"omitempty,dive"`
}

// AbonoRequest adds one payment to an existing membership, reducing its saldo.
type AbonoRequest struct {
	TipoPagoID string          `json:"tipo_pago_id" validate:"required,uuid"`
	Monto      decimal.Decimal `json:"monto"        validate:"required"`
	Referencia *string         `json:"referencia"`
}

type PagoResponse struct {
	ID         string          `json:"id"`
	TipoPago   string          `json:"tipo_pago"`
	Monto      decimal.Decimal `json:"monto"`
	Referencia *string         `json:"referencia"`
	Fecha      string          `json:"fecha"`
}

type MembresiaResponse struct {
	ID                string          `json:"id"`
	ClienteID         string          `json:"cliente_id"`
	ClienteNombre     string          `json:"cliente_nombre"`
	TipoMembresiaID   string          `json:"tipo_membresia_id"`
	TipoMembresia     string          `json:"tipo_membresia"`
	FechaInicio       string          `json:"fecha_inicio"`
	FechaFin          string          `json:"fecha_fin"`
	Estado            string          `json:"estado"`
	Precio            decimal.Decimal `json:"precio"`
	SaldoPendiente    decimal.Decimal `json:"saldo_pendiente"`
	Pagos             []PagoResponse  `json:"pagos,omitempty"`
	// Vigencia is the date-derived classification, independent from Estado.
	VigenciaEstado    string `json:"vigencia_estado,omitempty"`
	DiasRestantes     *int   `json:"dias_restantes,omitempty"`
}

// VencimientosFilter drives the "upcoming renewals" list. Dias overrides the
// default 7-day warning window.
type VencimientosFilter struct {
	Dias int `form:"dias,default=7" validate:"min=1,max=90"`
}

type TipoMembresiaRequest struct {
	Nombre       string          `json:"nombre"        validate:"required"`
	PrecioBase   decimal.Decimal `json:"precio_base"   validate:"required"`
	DuracionDias int             `json:"duracion_dias" validate:"required,min=1"`
}

type TipoMembresiaResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	PrecioBase   decimal.Decimal `json:"precio_base"`
	DuracionDias int             `json:"duracion_dias"`
	Activo       bool            `json:"activo"`
}

type TipoPagoResponse struct {
	ID          string `json:"id"`
	Descripcion string `json:"descripcion"`
}
