package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados administrativos de una membresia. Set at write time only — the
// date-derived vigencia (service.EvaluarVigencia) never mutates this field.
const (
	MembresiaActiva    = "ACTIVA"
	MembresiaPendiente = "PENDIENTE"
	MembresiaVencida   = "VENCIDA"
	MembresiaCancelada = "CANCELADA"
)

// TipoMembresia is a membership plan: base price and duration in days.
type TipoMembresia struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string          `gorm:"uniqueIndex;not null"`
	PrecioBase   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DuracionDias int             `gorm:"not null"`
	Activo       bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Membresia belongs to exactly one client. FechaFin is computed server-side as
// FechaInicio + DuracionDias at purchase time. SaldoPendiente is always >= 0;
// while it is positive right after creation the Estado is PENDIENTE.
type Membresia struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Cliente         *Usuario       `gorm:"foreignKey:ClienteID"`
	TipoMembresiaID uuid.UUID      `gorm:"type:uuid;not null"`
	TipoMembresia   *TipoMembresia `gorm:"foreignKey:TipoMembresiaID"`
	FechaInicio     time.Time      `gorm:"type:date;not null"`
	FechaFin        *time.Time     `gorm:"type:date"`
	Estado          string         `gorm:"type:varchar(20);not null;index"`
	Precio          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SaldoPendiente  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Pagos           []Pago          `gorm:"foreignKey:MembresiaID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
