package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	VentaCompletada = "COMPLETADA"
	VentaAnulada    = "ANULADA"
)

// Venta is a product sale to a client. Unlike memberships, sales carry no
// pending state: payments must cover the total before the row is created.
type Venta struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Cliente    *Usuario   `gorm:"foreignKey:ClienteID"`
	SucursalID *uuid.UUID `gorm:"type:uuid;index"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Estado     string          `gorm:"type:varchar(20);not null"`
	Items      []VentaItem     `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
	Pagos      []Pago          `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VentaItem snapshots the unit price at sale time so later price changes
// do not rewrite history.
type VentaItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID `gorm:"type:uuid;not null"`
	Producto       *Producto `gorm:"foreignKey:ProductoID"`
	Cantidad       int       `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}
