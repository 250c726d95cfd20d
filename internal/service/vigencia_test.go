package service_test

import (
	"testing"
	"time"

	"gymplus/internal/model"
	"gymplus/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ahora is pinned to mid-morning so the date-only truncation actually matters.
var ahora = time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)

func membresiaQueVence(fin time.Time) *model.Membresia {
	return &model.Membresia{Estado: model.MembresiaActiva, FechaFin: &fin}
}

func TestEvaluarVigencia_Vigente(t *testing.T) {
	fin := ahora.AddDate(0, 0, 8)
	vig := service.EvaluarVigencia(membresiaQueVence(fin), ahora)

	assert.Equal(t, service.VigenciaVigente, vig.Estado)
	require.NotNil(t, vig.DiasRestantes)
	assert.Equal(t, 8, *vig.DiasRestantes)
}

func TestEvaluarVigencia_PorVencerEnElUmbral(t *testing.T) {
	// Exactly 7 days out is already inside the warning window.
	fin := ahora.AddDate(0, 0, 7)
	vig := service.EvaluarVigencia(membresiaQueVence(fin), ahora)

	assert.Equal(t, service.VigenciaPorVencer, vig.Estado)
	require.NotNil(t, vig.DiasRestantes)
	assert.Equal(t, 7, *vig.DiasRestantes)
}

func TestEvaluarVigencia_VenceHoy(t *testing.T) {
	// A membership ending today grants access all day: 0 days left, por_vencer.
	fin := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	vig := service.EvaluarVigencia(membresiaQueVence(fin), ahora)

	assert.Equal(t, service.VigenciaPorVencer, vig.Estado)
	require.NotNil(t, vig.DiasRestantes)
	assert.Equal(t, 0, *vig.DiasRestantes)
}

func TestEvaluarVigencia_VencioAyer(t *testing.T) {
	fin := ahora.AddDate(0, 0, -1)
	vig := service.EvaluarVigencia(membresiaQueVence(fin), ahora)

	assert.Equal(t, service.VigenciaVencida, vig.Estado)
	require.NotNil(t, vig.DiasRestantes)
	assert.Equal(t, -1, *vig.DiasRestantes)
}

func TestEvaluarVigencia_SinMembresia(t *testing.T) {
	vig := service.EvaluarVigencia(nil, ahora)
	assert.Equal(t, service.VigenciaSinMembresia, vig.Estado)
	assert.Nil(t, vig.DiasRestantes)

	// A row without an end date classifies the same way.
	vig = service.EvaluarVigencia(&model.Membresia{Estado: model.MembresiaActiva}, ahora)
	assert.Equal(t, service.VigenciaSinMembresia, vig.Estado)
	assert.Nil(t, vig.DiasRestantes)
}

func TestEvaluarVigencia_UmbralPersonalizado(t *testing.T) {
	fin := ahora.AddDate(0, 0, 10)

	vig := service.EvaluarVigenciaConUmbral(membresiaQueVence(fin), ahora, 15)
	assert.Equal(t, service.VigenciaPorVencer, vig.Estado)

	vig = service.EvaluarVigenciaConUmbral(membresiaQueVence(fin), ahora, 5)
	assert.Equal(t, service.VigenciaVigente, vig.Estado)
}

func TestEvaluarVigencia_IgnoraHoraDelDia(t *testing.T) {
	// Same end date evaluated at 00:01 and 23:59 must classify identically.
	fin := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	temprano := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	tarde := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)

	vigA := service.EvaluarVigencia(membresiaQueVence(fin), temprano)
	vigB := service.EvaluarVigencia(membresiaQueVence(fin), tarde)

	assert.Equal(t, vigA.Estado, vigB.Estado)
	assert.Equal(t, *vigA.DiasRestantes, *vigB.DiasRestantes)
	assert.Equal(t, service.VigenciaPorVencer, vigA.Estado)
}
