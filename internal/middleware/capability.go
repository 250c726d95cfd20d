package middleware

import (
	"net/http"

	"gymplus/internal/apierror"
	"gymplus/internal/model"

	"github.com/gin-gonic/gin"
)

// Capabilities. Routes guard on one of these instead of naming roles, so
// adding a role is a single edit to the table below.
const (
	CapManageGimnasios  = "manage:gimnasios"
	CapManageUsuarios   = "manage:usuarios"
	CapManageMembresias = "manage:membresias"
	CapManageProductos  = "manage:productos"
	CapRegistrarCheckin = "registrar:checkins"
	CapRegistrarVentas  = "registrar:ventas"
	CapVerReportes      = "ver:reportes"
)

// roleCapabilities maps each role to the capabilities it grants. A user's
// effective set is the union across all their roles.
var roleCapabilities = map[string][]string{
	model.RolDev: {
		CapManageGimnasios, CapManageUsuarios, CapManageMembresias,
		CapManageProductos, CapRegistrarCheckin, CapRegistrarVentas, CapVerReportes,
	},
	model.RolAdmin: {
		CapManageUsuarios, CapManageMembresias, CapManageProductos,
		CapRegistrarCheckin, CapRegistrarVentas, CapVerReportes,
	},
	model.RolCoach: {
		CapRegistrarCheckin, CapRegistrarVentas, CapVerReportes,
	},
	model.RolCliente: {},
}

func capabilitiesFor(roles []string) map[string]bool {
	caps := make(map[string]bool)
	for _, rol := range roles {
		for _, cap := range roleCapabilities[rol] {
			caps[cap] = true
		}
	}
	return caps
}

// HasCapability reports whether the claims grant the capability.
func (c *JWTClaims) HasCapability(cap string) bool {
	return c != nil && c.capabilities[cap]
}

// RequireCapability rejects requests whose token does not grant the capability.
func RequireCapability(cap string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok || !claims.HasCapability(cap) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}
