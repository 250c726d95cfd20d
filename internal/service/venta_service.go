package service

// venta_service.go
// Product sales. Payments must settle the computed total at submission time —
// there is no pending-sale state, a deliberate asymmetry with memberships.
// Stock is checked and decremented inside the same transaction that creates
// the sale.

import (
	"context"
	"errors"
	"fmt"

	"gymplus/internal/dto"
	"gymplus/internal/metrics"
	"gymplus/internal/model"
	"gymplus/internal/repository"
	"gymplus/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrVentaNoEncontrada  = errors.New("venta no encontrada")
	ErrPagosNoCoinciden   = errors.New("la suma de pagos no coincide con el total de la venta")
	ErrProductoInactivo   = errors.New("el producto esta inactivo y no puede venderse")
)

type VentaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	Anular(ctx context.Context, id uuid.UUID, motivo string) error
	Obtener(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo       repository.VentaRepository
	productos  repository.ProductoRepository
	tiposPago  repository.TipoPagoRepository
	usuarios   repository.UsuarioRepository
	dispatcher *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	productos repository.ProductoRepository,
	tiposPago repository.TipoPagoRepository,
	usuarios repository.UsuarioRepository,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:       repo,
		productos:  productos,
		tiposPago:  tiposPago,
		usuarios:   usuarios,
		dispatcher: dispatcher,
	}
}

// ── Registrar ─────────────────────────────────────────────────────────────────
//  1. Resolve products, snapshot prices, compute the total (pre-flight, no TX)
//  2. Reconcile payments: every entry validated, sum must settle the total
//  3. BEGIN TX: create venta + items + pagos, decrement stock
//  4. (async) dispatch receipt email when the client has an email

func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id invalido: %w", err)
	}
	cliente, err := s.usuarios.FindByID(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente %s no encontrado", req.ClienteID)
	}

	type resolvedItem struct {
		productoID uuid.UUID
		nombre     string
		precio     decimal.Decimal
		cantidad   int
		subtotal   decimal.Decimal
	}

	var resolved []resolvedItem
	total := decimal.Zero
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id invalido: %w", err)
		}
		p, err := s.productos.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("producto %s no encontrado", item.ProductoID)
		}
		if !p.Activo {
			return nil, ErrProductoInactivo
		}
		if p.StockActual < item.Cantidad {
			return nil, fmt.Errorf("stock insuficiente de %s", p.Nombre)
		}
		subtotal := p.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		total = total.Add(subtotal)
		resolved = append(resolved, resolvedItem{
			productoID: pid,
			nombre:     p.Nombre,
			precio:     p.PrecioUnitario,
			cantidad:   item.Cantidad,
			subtotal:   subtotal,
		})
	}

	// Reconcile the payment list against the computed total. A sale only
	// commits fully settled — ErrPagosNoCoinciden otherwise.
	recon := NewReconciliadorPagos(total)
	pagos := make([]model.Pago, 0, len(req.Pagos))
	for _, e := range req.Pagos {
		tipoPagoID, err := uuid.Parse(e.TipoPagoID)
		if err != nil {
			return nil, fmt.Errorf("tipo_pago_id invalido: %w", err)
		}
		if _, err := s.tiposPago.FindByID(ctx, tipoPagoID); err != nil {
			return nil, fmt.Errorf("tipo de pago %s no encontrado", e.TipoPagoID)
		}
		if err := recon.AgregarPago(tipoPagoID, e.Monto); err != nil {
			return nil, err
		}
		pagos = append(pagos, model.Pago{
			TipoPagoID: tipoPagoID,
			Monto:      e.Monto,
			Referencia: e.Referencia,
		})
	}
	if !recon.EstaSaldado(ToleranciaVenta) {
		return nil, ErrPagosNoCoinciden
	}

	var sucursalID *uuid.UUID
	if req.SucursalID != nil {
		if sid, err := uuid.Parse(*req.SucursalID); err == nil {
			sucursalID = &sid
		}
	}

	venta := model.Venta{
		ClienteID:  clienteID,
		SucursalID: sucursalID,
		Total:      total,
		Estado:     model.VentaCompletada,
	}
	for _, r := range resolved {
		venta.Items = append(venta.Items, model.VentaItem{
			ProductoID:     r.productoID,
			Cantidad:       r.cantidad,
			PrecioUnitario: r.precio,
			Subtotal:       r.subtotal,
		})
	}
	venta.Pagos = pagos

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(ctx, tx, &venta); err != nil {
			return err
		}
		for _, r := range resolved {
			if err := s.productos.DescontarStockTx(ctx, tx, r.productoID, r.cantidad); err != nil {
				return fmt.Errorf("error descontando stock de %s: %w", r.nombre, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	metrics.RecordVenta()

	// Receipt email is best-effort, fire & forget.
	email := req.ClienteEmail
	if email == nil {
		email = cliente.Email
	}
	if s.dispatcher != nil && email != nil && *email != "" {
		_ = s.dispatcher.EnqueueRecibo(ctx, worker.ReciboJobPayload{
			Tipo:    "venta",
			RefID:   venta.ID.String(),
			ToEmail: *email,
		})
	}

	resp := ventaToResponse(&venta)
	for i, r := range resolved {
		resp.Items[i].Producto = r.nombre
	}
	return resp, nil
}

// ── Anular ────────────────────────────────────────────────────────────────────

func (s *ventaService) Anular(ctx context.Context, id uuid.UUID, motivo string) error {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrVentaNoEncontrada
	}
	if venta.Estado == model.VentaAnulada {
		return errors.New("la venta ya esta anulada")
	}
	_ = motivo // recorded in logs at the handler boundary

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Restore stock for each line item.
		for _, item := range venta.Items {
			if err := s.productos.DescontarStockTx(ctx, tx, item.ProductoID, -item.Cantidad); err != nil {
				return err
			}
		}
		return s.repo.UpdateEstadoTx(ctx, tx, id, model.VentaAnulada)
	})
}

// ── Queries ───────────────────────────────────────────────────────────────────

func (s *ventaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVentaNoEncontrada
	}
	return ventaToResponse(venta), nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		items = append(items, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	for _, item := range v.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		items = append(items, dto.ItemVentaResponse{
			Producto:       nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		})
	}
	pagos := make([]dto.PagoResponse, 0, len(v.Pagos))
	for _, p := range v.Pagos {
		pagos = append(pagos, pagoToResponse(&p))
	}
	return &dto.VentaResponse{
		ID:        v.ID.String(),
		ClienteID: v.ClienteID.String(),
		Total:     v.Total,
		Estado:    v.Estado,
		Items:     items,
		Pagos:     pagos,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
