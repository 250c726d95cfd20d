package service_test

import (
	"context"
	"testing"
	"time"

	"gymplus/internal/dto"
	"gymplus/internal/model"
	"gymplus/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMembresiaSvc() (service.MembresiaService, *stubMembresiaRepo, *stubTipoMembresiaRepo, *stubTipoPagoRepo, *stubUsuarioRepo) {
	membresiaRepo := newStubMembresiaRepo()
	tipoRepo := newStubTipoMembresiaRepo()
	tipoPagoRepo := newStubTipoPagoRepo()
	usuarioRepo := newStubUsuarioRepo()

	reloj := func() time.Time { return ahora }
	svc := service.NewMembresiaService(membresiaRepo, tipoRepo, tipoPagoRepo, usuarioRepo, nil, reloj)
	return svc, membresiaRepo, tipoRepo, tipoPagoRepo, usuarioRepo
}

func TestCrearMembresia_PagoCompleto(t *testing.T) {
	svc, _, tipoRepo, tipoPagoRepo, usuarioRepo := buildMembresiaSvc()
	plan := seedPlan(tipoRepo, "Mensual", 30, 30)
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	cliente := seedCliente(usuarioRepo, "11111111")

	resps, err := svc.Crear(context.Background(), dto.CrearMembresiaRequest{
		ClienteIDs:      []string{cliente.ID.String()},
		TipoMembresiaID: plan.ID.String(),
		FechaInicio:     "2026-03-10",
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromInt(30)},
		},
	})
	require.NoError(t, err)
	require.Len(t, resps, 1)

	assert.Equal(t, model.MembresiaActiva, resps[0].Estado)
	assert.True(t, resps[0].SaldoPendiente.IsZero())
	// fecha_fin = inicio + duracion del plan, computed server-side.
	assert.Equal(t, "2026-04-09", resps[0].FechaFin)
}

func TestCrearMembresia_PagoParcialQuedaPendiente(t *testing.T) {
	svc, membresiaRepo, tipoRepo, tipoPagoRepo, usuarioRepo := buildMembresiaSvc()
	plan := seedPlan(tipoRepo, "Mensual", 30, 30)
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	cliente := seedCliente(usuarioRepo, "11111111")

	resps, err := svc.Crear(context.Background(), dto.CrearMembresiaRequest{
		ClienteIDs:      []string{cliente.ID.String()},
		TipoMembresiaID: plan.ID.String(),
		FechaInicio:     "2026-03-10",
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)
	require.Len(t, resps, 1)

	assert.Equal(t, model.MembresiaPendiente, resps[0].Estado)
	assert.Equal(t, "20", resps[0].SaldoPendiente.String())
	assert.Len(t, membresiaRepo.pagos, 1)
}

func TestCrearMembresia_SinPagos(t *testing.T) {
	svc, _, tipoRepo, _, usuarioRepo := buildMembresiaSvc()
	plan := seedPlan(tipoRepo, "Mensual", 30, 30)
	cliente := seedCliente(usuarioRepo, "11111111")

	resps, err := svc.Crear(context.Background(), dto.CrearMembresiaRequest{
		ClienteIDs:      []string{cliente.ID.String()},
		TipoMembresiaID: plan.ID.String(),
		FechaInicio:     "2026-03-10",
	})
	require.NoError(t, err)
	require.Len(t, resps, 1)

	assert.Equal(t, model.MembresiaPendiente, resps[0].Estado)
	assert.Equal(t, "30", resps[0].SaldoPendiente.String())
}

func TestCrearMembresia_GrupalAsignacionSecuencial(t *testing.T) {
	// Three clients, one plan each, 75 paid of 90: the first two memberships
	// are covered in full, the third carries the 15 as its own saldo.
	svc, _, tipoRepo, tipoPagoRepo, usuarioRepo := buildMembresiaSvc()
	plan := seedPlan(tipoRepo, "Mensual", 30, 30)
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	c1 := seedCliente(usuarioRepo, "11111111")
	c2 := seedCliente(usuarioRepo, "22222222")
	c3 := seedCliente(usuarioRepo, "33333333")

	resps, err := svc.Crear(context.Background(), dto.CrearMembresiaRequest{
		ClienteIDs:      []string{c1.ID.String(), c2.ID.String(), c3.ID.String()},
		TipoMembresiaID: plan.ID.String(),
		FechaInicio:     "2026-03-10",
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromInt(75)},
		},
	})
	require.NoError(t, err)
	require.Len(t, resps, 3)

	assert.Equal(t, model.MembresiaActiva, resps[0].Estado)
	assert.True(t, resps[0].SaldoPendiente.IsZero())
	assert.Equal(t, model.MembresiaActiva, resps[1].Estado)
	assert.True(t, resps[1].SaldoPendiente.IsZero())
	assert.Equal(t, model.MembresiaPendiente, resps[2].Estado)
	assert.Equal(t, "15", resps[2].SaldoPendiente.String())
}

func TestCrearMembresia_PagoExcedido(t *testing.T) {
	svc, membresiaRepo, tipoRepo, tipoPagoRepo, usuarioRepo := buildMembresiaSvc()
	plan := seedPlan(tipoRepo, "Mensual", 30, 30)
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	cliente := seedCliente(usuarioRepo, "11111111")

	_, err := svc.Crear(context.Background(), dto.CrearMembresiaRequest{
		ClienteIDs:      []string{cliente.ID.String()},
		TipoMembresiaID: plan.ID.String(),
		FechaInicio:     "2026-03-10",
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromInt(50)},
		},
	})
	assert.ErrorIs(t, err, service.ErrExcedeTotal)

	// Validation runs before any write.
	assert.Empty(t, membresiaRepo.membresias)
	assert.Empty(t, membresiaRepo.pagos)
}

func TestCrearMembresia_TipoDesconocido(t *testing.T) {
	svc, _, _, _, usuarioRepo := buildMembresiaSvc()
	cliente := seedCliente(usuarioRepo, "11111111")

	_, err := svc.Crear(context.Background(), dto.CrearMembresiaRequest{
		ClienteIDs:      []string{cliente.ID.String()},
		TipoMembresiaID: "3e2a1b44-0000-0000-0000-000000000001",
		FechaInicio:     "2026-03-10",
	})
	assert.ErrorIs(t, err, service.ErrTipoMembresiaNoEncontrado)
}

func TestAbonar_ReduceSaldo(t *testing.T) {
	svc, membresiaRepo, _, tipoPagoRepo, usuarioRepo := buildMembresiaSvc()
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	cliente := seedCliente(usuarioRepo, "11111111")
	m := seedMembresia(membresiaRepo, cliente.ID, model.MembresiaPendiente, ahora.AddDate(0, 0, 20))
	m.SaldoPendiente = decimal.NewFromInt(20)

	resp, err := svc.Abonar(context.Background(), m.ID, dto.AbonoRequest{
		TipoPagoID: efectivo.ID.String(),
		Monto:      decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "15", resp.SaldoPendiente.String())
	assert.Equal(t, model.MembresiaPendiente, resp.Estado)
}

func TestAbonar_SaldoCeroActiva(t *testing.T) {
	svc, membresiaRepo, _, tipoPagoRepo, usuarioRepo := buildMembresiaSvc()
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	cliente := seedCliente(usuarioRepo, "11111111")
	m := seedMembresia(membresiaRepo, cliente.ID, model.MembresiaPendiente, ahora.AddDate(0, 0, 20))
	m.SaldoPendiente = decimal.NewFromInt(20)

	resp, err := svc.Abonar(context.Background(), m.ID, dto.AbonoRequest{
		TipoPagoID: efectivo.ID.String(),
		Monto:      decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	assert.True(t, resp.SaldoPendiente.IsZero())
	assert.Equal(t, model.MembresiaActiva, resp.Estado)
	assert.Equal(t, model.MembresiaActiva, membresiaRepo.membresias[m.ID].Estado)
}

func TestAbonar_SinSaldo(t *testing.T) {
	svc, membresiaRepo, _, tipoPagoRepo, usuarioRepo := buildMembresiaSvc()
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	cliente := seedCliente(usuarioRepo, "11111111")
	m := seedMembresia(membresiaRepo, cliente.ID, model.MembresiaActiva, ahora.AddDate(0, 0, 20))

	_, err := svc.Abonar(context.Background(), m.ID, dto.AbonoRequest{
		TipoPagoID: efectivo.ID.String(),
		Monto:      decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, service.ErrMembresiaSinSaldo)
}

func TestAbonar_ExcedeSaldo(t *testing.T) {
	svc, membresiaRepo, _, tipoPagoRepo, usuarioRepo := buildMembresiaSvc()
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	cliente := seedCliente(usuarioRepo, "11111111")
	m := seedMembresia(membresiaRepo, cliente.ID, model.MembresiaPendiente, ahora.AddDate(0, 0, 20))
	m.SaldoPendiente = decimal.NewFromInt(10)

	_, err := svc.Abonar(context.Background(), m.ID, dto.AbonoRequest{
		TipoPagoID: efectivo.ID.String(),
		Monto:      decimal.NewFromInt(25),
	})
	assert.ErrorIs(t, err, service.ErrExcedeTotal)
}

func TestVencimientos_SoloDentroDeLaVentana(t *testing.T) {
	svc, membresiaRepo, _, _, usuarioRepo := buildMembresiaSvc()
	cliente := seedCliente(usuarioRepo, "11111111")

	seedMembresia(membresiaRepo, cliente.ID, model.MembresiaActiva, ahora.AddDate(0, 0, 3))
	seedMembresia(membresiaRepo, cliente.ID, model.MembresiaActiva, ahora.AddDate(0, 0, 60))
	// Expired rows and cancelled rows are not "upcoming renewals".
	seedMembresia(membresiaRepo, cliente.ID, model.MembresiaVencida, ahora.AddDate(0, 0, 2))
	seedMembresia(membresiaRepo, cliente.ID, model.MembresiaCancelada, ahora.AddDate(0, 0, 2))

	out, err := svc.Vencimientos(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, string(service.VigenciaPorVencer), out[0].VigenciaEstado)
	require.NotNil(t, out[0].DiasRestantes)
	assert.Equal(t, 3, *out[0].DiasRestantes)
}

func TestCancelar(t *testing.T) {
	svc, membresiaRepo, _, _, usuarioRepo := buildMembresiaSvc()
	cliente := seedCliente(usuarioRepo, "11111111")
	m := seedMembresia(membresiaRepo, cliente.ID, model.MembresiaActiva, ahora.AddDate(0, 0, 20))

	require.NoError(t, svc.Cancelar(context.Background(), m.ID))
	assert.Equal(t, model.MembresiaCancelada, membresiaRepo.membresias[m.ID].Estado)

	// Cancelling twice is rejected.
	assert.Error(t, svc.Cancelar(context.Background(), m.ID))
}
