package dto

import "github.com/shopspring/decimal"

// VentaFilter is bound from query string of GET /v1/ventas.
type VentaFilter struct {
	Fecha     string `form:"fecha"`      // YYYY-MM-DD; empty = all
	Estado    string `form:"estado"`     // COMPLETADA | ANULADA | all
	ClienteID string `form:"cliente_id"` // optional uuid
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

// RegistrarVentaRequest creates a sale. The payment sum must match the
// computed total within the sale tolerance — sales have no pending state.
type RegistrarVentaRequest struct {
	ClienteID  string             `json:"cliente_id"  validate:"required,uuid"`
	SucursalID *string            `json:"sucursal_id" validate:"omitempty,uuid"`
	Items      []ItemVentaRequest `json:"items"       validate:"required,min=1,dive"`
	Pagos      []PagoRequest      `json:"pagos"       validate:"required,min=1,dive"`
	// ClienteEmail: optional — when present, the worker mails the PDF receipt.
	ClienteEmail *string `json:"cliente_email" validate:"omitempty,email"`
}

type AnularVentaRequest struct {
	Motivo string `json:"motivo" validate:"required,min=5"`
}

type ItemVentaResponse struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID        string              `json:"id"`
	ClienteID string              `json:"cliente_id"`
	Total     decimal.Decimal     `json:"total"`
	Estado    string              `json:"estado"`
	Items     []ItemVentaResponse `json:"items"`
	Pagos     []PagoResponse      `json:"pagos"`
	CreatedAt string              `json:"created_at"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
