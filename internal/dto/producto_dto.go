package dto

import "github.com/shopspring/decimal"

type ProductoRequest struct {
	Codigo         string          `json:"codigo"          validate:"required"`
	Nombre         string          `json:"nombre"          validate:"required"`
	Descripcion    *string         `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
	StockActual    int             `json:"stock_actual"    validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre         string           `json:"nombre"`
	Descripcion    *string          `json:"descripcion"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	StockActual    *int             `json:"stock_actual" validate:"omitempty,min=0"`
}

type ProductoResponse struct {
	ID             string          `json:"id"`
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Descripcion    *string         `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	StockActual    int             `json:"stock_actual"`
	Activo         bool            `json:"activo"`
}
