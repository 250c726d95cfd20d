package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymplus/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, roles []string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  "7f4a1c0e-0000-0000-0000-000000000001",
		"username": "test@gymplus.com",
		"roles":    roles,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func protectedRouter(cap string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegido", JWTAuth(testSecret), RequireCapability(cap), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, token string) int {
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestCapabilitiesFor_UnionDeRoles(t *testing.T) {
	caps := capabilitiesFor([]string{model.RolCoach})
	assert.True(t, caps[CapRegistrarCheckin])
	assert.True(t, caps[CapRegistrarVentas])
	assert.False(t, caps[CapManageUsuarios])
	assert.False(t, caps[CapManageGimnasios])

	// A second role widens the set; it never narrows it.
	caps = capabilitiesFor([]string{model.RolCoach, model.RolAdmin})
	assert.True(t, caps[CapManageUsuarios])
	assert.True(t, caps[CapManageMembresias])
	assert.False(t, caps[CapManageGimnasios])

	// Only DEV reaches gym management.
	caps = capabilitiesFor([]string{model.RolDev})
	assert.True(t, caps[CapManageGimnasios])

	assert.Empty(t, capabilitiesFor([]string{model.RolCliente}))
	assert.Empty(t, capabilitiesFor([]string{"ROL_INVENTADO"}))
}

func TestRequireCapability_Permitido(t *testing.T) {
	r := protectedRouter(CapRegistrarCheckin)
	code := doRequest(r, signToken(t, []string{model.RolCoach}))
	assert.Equal(t, http.StatusOK, code)
}

func TestRequireCapability_Denegado(t *testing.T) {
	r := protectedRouter(CapManageGimnasios)

	code := doRequest(r, signToken(t, []string{model.RolAdmin}))
	assert.Equal(t, http.StatusForbidden, code)

	code = doRequest(r, signToken(t, []string{model.RolCliente}))
	assert.Equal(t, http.StatusForbidden, code)
}

func TestJWTAuth_SinToken(t *testing.T) {
	r := protectedRouter(CapRegistrarCheckin)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, ""))
}

func TestJWTAuth_TokenInvalido(t *testing.T) {
	r := protectedRouter(CapRegistrarCheckin)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "ni-siquiera-es-jwt"))
}

func TestJWTAuth_TokenExpirado(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "7f4a1c0e-0000-0000-0000-000000000001",
		"roles":   []string{model.RolAdmin},
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	r := protectedRouter(CapRegistrarVentas)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, token))
}
