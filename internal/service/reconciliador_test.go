package service_test

import (
	"testing"

	"gymplus/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconciliador_PagoExacto(t *testing.T) {
	r := service.NewReconciliadorPagos(decimal.NewFromInt(100))

	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromInt(60)))
	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromInt(40)))

	assert.Equal(t, "100", r.TotalPagado().String())
	assert.True(t, r.Restante().IsZero())
	assert.True(t, r.EstaSaldado(service.ToleranciaVenta))
}

func TestReconciliador_MontoNoPositivo(t *testing.T) {
	r := service.NewReconciliadorPagos(decimal.NewFromInt(100))

	err := r.AgregarPago(uuid.New(), decimal.Zero)
	assert.ErrorIs(t, err, service.ErrMontoInvalido)

	err = r.AgregarPago(uuid.New(), decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, service.ErrMontoInvalido)

	// Rejected entries never enter the list.
	assert.Empty(t, r.Pagos())
}

func TestReconciliador_ExcedeTotal(t *testing.T) {
	r := service.NewReconciliadorPagos(decimal.NewFromInt(100))
	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromInt(80)))

	err := r.AgregarPago(uuid.New(), decimal.NewFromInt(30))
	assert.ErrorIs(t, err, service.ErrExcedeTotal)

	// The failed entry left the list untouched.
	assert.Len(t, r.Pagos(), 1)
	assert.Equal(t, "80", r.TotalPagado().String())
}

func TestReconciliador_ToleraRedondeoDeCentavo(t *testing.T) {
	// 33.34 + 33.33 + 33.34 = 100.01 against 100: one cent over is accepted.
	r := service.NewReconciliadorPagos(decimal.NewFromInt(100))
	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromFloat(33.34)))
	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromFloat(33.33)))
	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromFloat(33.34)))

	assert.True(t, r.EstaSaldado(service.ToleranciaVenta))
	assert.True(t, r.Restante().IsZero())
}

func TestReconciliador_QuitarPago(t *testing.T) {
	r := service.NewReconciliadorPagos(decimal.NewFromInt(100))
	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromInt(60)))
	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromInt(40)))

	require.NoError(t, r.QuitarPago(0))
	assert.Len(t, r.Pagos(), 1)
	assert.Equal(t, "40", r.TotalPagado().String())

	assert.ErrorIs(t, r.QuitarPago(5), service.ErrIndiceInvalido)
	assert.ErrorIs(t, r.QuitarPago(-1), service.ErrIndiceInvalido)
}

func TestReconciliador_SugerirMonto(t *testing.T) {
	r := service.NewReconciliadorPagos(decimal.NewFromInt(100))
	assert.Equal(t, "100", r.SugerirMonto().String())

	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromInt(70)))
	assert.Equal(t, "30", r.SugerirMonto().String())
}

func TestReconciliador_ToleranciaDeVenta(t *testing.T) {
	r := service.NewReconciliadorPagos(decimal.NewFromInt(100))
	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromFloat(99.96)))

	// 4 cents short still settles a sale; 10 cents short does not.
	assert.True(t, r.EstaSaldado(service.ToleranciaVenta))

	r2 := service.NewReconciliadorPagos(decimal.NewFromInt(100))
	require.NoError(t, r2.AgregarPago(uuid.New(), decimal.NewFromFloat(99.90)))
	assert.False(t, r2.EstaSaldado(service.ToleranciaVenta))
}

func TestReconciliador_PagosDevuelveCopia(t *testing.T) {
	r := service.NewReconciliadorPagos(decimal.NewFromInt(50))
	require.NoError(t, r.AgregarPago(uuid.New(), decimal.NewFromInt(20)))

	pagos := r.Pagos()
	pagos[0].Monto = decimal.NewFromInt(999)

	assert.Equal(t, "20", r.TotalPagado().String())
}
