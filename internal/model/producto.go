package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a sellable item (supplements, drinks, merchandising).
type Producto struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo         string          `gorm:"uniqueIndex;not null"`
	Nombre         string          `gorm:"not null"`
	Descripcion    *string
	PrecioUnitario decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StockActual    int             `gorm:"not null;default:0"`
	Activo         bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
