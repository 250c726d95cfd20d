package service_test

import (
	"context"
	"testing"

	"gymplus/internal/dto"
	"gymplus/internal/model"
	"gymplus/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildVentaSvc() (service.VentaService, *stubVentaRepo, *stubProductoRepo, *stubTipoPagoRepo, *stubUsuarioRepo) {
	ventaRepo := newStubVentaRepo()
	productoRepo := newStubProductoRepo()
	tipoPagoRepo := newStubTipoPagoRepo()
	usuarioRepo := newStubUsuarioRepo()

	svc := service.NewVentaService(ventaRepo, productoRepo, tipoPagoRepo, usuarioRepo, nil)
	return svc, ventaRepo, productoRepo, tipoPagoRepo, usuarioRepo
}

func TestRegistrarVenta_PagoExacto(t *testing.T) {
	svc, ventaRepo, productoRepo, tipoPagoRepo, usuarioRepo := buildVentaSvc()
	cliente := seedCliente(usuarioRepo, "11111111")
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	agua := seedProducto(productoRepo, "Agua 500ml", 2.50, 10)
	barra := seedProducto(productoRepo, "Barra proteica", 5, 4)

	// total = 2.50×2 + 5×1 = 10
	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ClienteID: cliente.ID.String(),
		Items: []dto.ItemVentaRequest{
			{ProductoID: agua.ID.String(), Cantidad: 2},
			{ProductoID: barra.ID.String(), Cantidad: 1},
		},
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "10", resp.Total.String())
	assert.Equal(t, model.VentaCompletada, resp.Estado)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "Agua 500ml", resp.Items[0].Producto)

	// Stock decremented inside the same transaction.
	assert.Equal(t, 8, productoRepo.productos[agua.ID].StockActual)
	assert.Equal(t, 3, productoRepo.productos[barra.ID].StockActual)

	stored, err := ventaRepo.FindByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "10", stored.Total.String())
}

func TestRegistrarVenta_DentroDeTolerancia(t *testing.T) {
	// 4 cents short of the total still commits; sales tolerate rounding noise.
	svc, _, productoRepo, tipoPagoRepo, usuarioRepo := buildVentaSvc()
	cliente := seedCliente(usuarioRepo, "11111111")
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	agua := seedProducto(productoRepo, "Agua 500ml", 10, 5)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ClienteID: cliente.ID.String(),
		Items:     []dto.ItemVentaRequest{{ProductoID: agua.ID.String(), Cantidad: 1}},
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromFloat(9.96)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.VentaCompletada, resp.Estado)
}

func TestRegistrarVenta_PagoInsuficiente(t *testing.T) {
	// Unlike memberships, there is no pending sale: an unsettled payment list
	// rejects the whole request and nothing is written.
	svc, ventaRepo, productoRepo, tipoPagoRepo, usuarioRepo := buildVentaSvc()
	cliente := seedCliente(usuarioRepo, "11111111")
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	agua := seedProducto(productoRepo, "Agua 500ml", 10, 5)

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ClienteID: cliente.ID.String(),
		Items:     []dto.ItemVentaRequest{{ProductoID: agua.ID.String(), Cantidad: 2}},
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromInt(15)},
		},
	})
	assert.ErrorIs(t, err, service.ErrPagosNoCoinciden)

	assert.Empty(t, ventaRepo.ventas)
	assert.Equal(t, 5, productoRepo.productos[agua.ID].StockActual)
}

func TestRegistrarVenta_PagoExcedido(t *testing.T) {
	svc, _, productoRepo, tipoPagoRepo, usuarioRepo := buildVentaSvc()
	cliente := seedCliente(usuarioRepo, "11111111")
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	agua := seedProducto(productoRepo, "Agua 500ml", 10, 5)

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ClienteID: cliente.ID.String(),
		Items:     []dto.ItemVentaRequest{{ProductoID: agua.ID.String(), Cantidad: 1}},
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromInt(50)},
		},
	})
	assert.ErrorIs(t, err, service.ErrExcedeTotal)
}

func TestRegistrarVenta_StockInsuficiente(t *testing.T) {
	svc, ventaRepo, productoRepo, tipoPagoRepo, usuarioRepo := buildVentaSvc()
	cliente := seedCliente(usuarioRepo, "11111111")
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	agua := seedProducto(productoRepo, "Agua 500ml", 10, 2)

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ClienteID: cliente.ID.String(),
		Items:     []dto.ItemVentaRequest{{ProductoID: agua.ID.String(), Cantidad: 5}},
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromInt(50)},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock insuficiente")
	assert.Empty(t, ventaRepo.ventas)
}

func TestRegistrarVenta_ProductoInactivo(t *testing.T) {
	svc, _, productoRepo, tipoPagoRepo, usuarioRepo := buildVentaSvc()
	cliente := seedCliente(usuarioRepo, "11111111")
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	agua := seedProducto(productoRepo, "Agua 500ml", 10, 5)
	agua.Activo = false

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ClienteID: cliente.ID.String(),
		Items:     []dto.ItemVentaRequest{{ProductoID: agua.ID.String(), Cantidad: 1}},
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromInt(10)},
		},
	})
	assert.ErrorIs(t, err, service.ErrProductoInactivo)
}

func TestAnularVenta_RestauraStock(t *testing.T) {
	svc, ventaRepo, productoRepo, tipoPagoRepo, usuarioRepo := buildVentaSvc()
	cliente := seedCliente(usuarioRepo, "11111111")
	efectivo := seedTipoPago(tipoPagoRepo, "efectivo")
	agua := seedProducto(productoRepo, "Agua 500ml", 10, 5)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ClienteID: cliente.ID.String(),
		Items:     []dto.ItemVentaRequest{{ProductoID: agua.ID.String(), Cantidad: 3}},
		Pagos: []dto.PagoRequest{
			{TipoPagoID: efectivo.ID.String(), Monto: decimal.NewFromInt(30)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, productoRepo.productos[agua.ID].StockActual)

	id := uuid.MustParse(resp.ID)
	require.NoError(t, svc.Anular(context.Background(), id, "cliente devolvio el producto"))

	assert.Equal(t, 5, productoRepo.productos[agua.ID].StockActual)
	assert.Equal(t, model.VentaAnulada, ventaRepo.ventas[id].Estado)

	// Voiding twice would restore stock twice.
	assert.Error(t, svc.Anular(context.Background(), id, "segundo intento"))
}

func TestAnularVenta_NoEncontrada(t *testing.T) {
	svc, _, _, _, _ := buildVentaSvc()
	err := svc.Anular(context.Background(), uuid.New(), "no existe")
	assert.ErrorIs(t, err, service.ErrVentaNoEncontrada)
}
