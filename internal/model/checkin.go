package model

import (
	"time"

	"github.com/google/uuid"
)

// Resultados posibles de un registro de acceso.
const (
	CheckInAutoAprobado = "auto_aprobado"
	CheckInManual       = "manual"
)

// CheckIn is one access event at a branch. MembresiaID is nil when the entry
// was a manual override for someone without an active membership.
type CheckIn struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Usuario     *Usuario   `gorm:"foreignKey:UsuarioID"`
	SucursalID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Sucursal    *Sucursal  `gorm:"foreignKey:SucursalID"`
	MembresiaID *uuid.UUID `gorm:"type:uuid"`
	Resultado   string     `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time  `gorm:"index"`
}
