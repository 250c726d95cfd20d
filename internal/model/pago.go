package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoPago is a payment method (efectivo, tarjeta, transferencia, ...).
type TipoPago struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descripcion string    `gorm:"uniqueIndex;not null"`
	Activo      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// Pago belongs to exactly one Membresia or one Venta, never both.
// Immutable once persisted — there is no edit path.
type Pago struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MembresiaID *uuid.UUID `gorm:"type:uuid;index"`
	VentaID     *uuid.UUID `gorm:"type:uuid;index"`
	TipoPagoID  uuid.UUID  `gorm:"type:uuid;not null"`
	TipoPago    *TipoPago  `gorm:"foreignKey:TipoPagoID"`
	Monto       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Referencia  *string
	CreatedAt   time.Time
}
