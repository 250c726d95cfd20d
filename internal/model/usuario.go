package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Roles reconocidos por la plataforma.
const (
	RolDev     = "DEV"
	RolAdmin   = "ADMIN"
	RolCoach   = "COACH"
	RolCliente = "CLIENTE"
)

// Usuario stores both staff and clients. Role tags decide what each account
// can do; a client created at the front desk carries only CLIENTE.
type Usuario struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username string    `gorm:"uniqueIndex;not null"`
	Nombre   string    `gorm:"not null"`
	Apellido string    `gorm:"not null"`
	// Cedula is the national-id used for check-in lookups at the front desk.
	Cedula       string `gorm:"uniqueIndex;not null"`
	Email        *string
	Telefono     *string
	PasswordHash string         `gorm:"not null"`
	Roles        pq.StringArray `gorm:"type:text[];not null"`
	// Home gym / branch; nil for DEV accounts that span all gyms.
	GimnasioID *uuid.UUID `gorm:"type:uuid"`
	SucursalID *uuid.UUID `gorm:"type:uuid"`
	Activo     bool       `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TieneRol reports whether the account carries the given role tag.
func (u *Usuario) TieneRol(rol string) bool {
	for _, r := range u.Roles {
		if r == rol {
			return true
		}
	}
	return false
}
