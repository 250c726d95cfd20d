package model

import (
	"time"

	"github.com/google/uuid"
)

// Gimnasio is a gym tenant. Branches (sucursales) hang off it.
type Gimnasio struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Direccion *string
	Telefono  *string
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sucursal is a physical branch of a gym. Check-ins are always branch-scoped.
type Sucursal struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GimnasioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Gimnasio   *Gimnasio `gorm:"foreignKey:GimnasioID"`
	Nombre     string    `gorm:"not null"`
	Direccion  *string
	Activa     bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
