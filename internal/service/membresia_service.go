package service

// membresia_service.go
// Membership purchases (single and group), abonos, and the vencimientos list.
// Creation runs the split-payment reconciliation before any row is written:
// validation failures never reach the database. Unlike sales, a positive
// remainder is a valid outcome — the membership commits as PENDIENTE with the
// remainder as saldo.

import (
	"context"
	"errors"
	"fmt"
	"time"

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
	ErrTipoMembresiaNoEncontrado = errors.New("tipo de membresia no encontrado")
	ErrMembresiaNoEncontrada     = errors.New("membresia no encontrada")
	ErrMembresiaSinSaldo         = errors.New("la membresia no tiene saldo pendiente")
)

type MembresiaService interface {
	Crear(ctx context.Context, req dto.CrearMembresiaRequest) ([]dto.MembresiaResponse, error)
	Abonar(ctx context.Context, id uuid.UUID, req dto.AbonoRequest) (*dto.MembresiaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.MembresiaResponse, error)
	Listar(ctx context.Context) ([]dto.MembresiaResponse, error)
	ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.MembresiaResponse, error)
	// Vencimientos lists ACTIVA memberships whose date window closes within
	// dias days, re-evaluated against the supplied warning window.
	Vencimientos(ctx context.Context, dias int) ([]dto.MembresiaResponse, error)
	Cancelar(ctx context.Context, id uuid.UUID) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type membresiaService struct {
	repo       repository.MembresiaRepository
	tipos      repository.TipoMembresiaRepository
	tiposPago  repository.TipoPagoRepository
	usuarios   repository.UsuarioRepository
	dispatcher *worker.Dispatcher
	reloj      Reloj
}

func NewMembresiaService(
	repo repository.MembresiaRepository,
	tipos repository.TipoMembresiaRepository,
	tiposPago repository.TipoPagoRepository,
	usuarios repository.UsuarioRepository,
	dispatcher *worker.Dispatcher,
	reloj Reloj,
) MembresiaService {
	if reloj == nil {
		reloj = RelojSistema
	}
	return &membresiaService{
		repo:       repo,
		tipos:      tipos,
		tiposPago:  tiposPago,
		usuarios:   usuarios,
		dispatcher: dispatcher,
		reloj:      reloj,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// One membership per cliente_id. requerido = precio base × participantes.
// Payments are validated through the reconciler, then allocated sequentially:
// earlier clients in the list are paid off first, so each membership carries
// its own exact saldo and the saldos sum to the batch remainder.

func (s *membresiaService) Crear(ctx context.Context, req dto.CrearMembresiaRequest) ([]dto.MembresiaResponse, error) {
	tipoID, err := uuid.Parse(req.TipoMembresiaID)
	if err != nil {
		return nil, fmt.Errorf("tipo_membresia_id invalido: %w", err)
	}
	tipo, err := s.tipos.FindByID(ctx, tipoID)
	if err != nil {
		return nil, ErrTipoMembresiaNoEncontrado
	}

	fechaInicio, err := time.Parse("2006-01-02", req.FechaInicio)
	if err != nil {
		return nil, fmt.Errorf("fecha_inicio invalida: %w", err)
	}
	fechaFin := fechaInicio.AddDate(0, 0, tipo.DuracionDias)

	clientes := make([]*model.Usuario, 0, len(req.ClienteIDs))
	for _, idStr := range req.ClienteIDs {
		cid, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("cliente_id invalido: %w", err)
		}
		cliente, err := s.usuarios.FindByID(ctx, cid)
		if err != nil {
			return nil, fmt.Errorf("cliente %s no encontrado", idStr)
		}
		clientes = append(clientes, cliente)
	}

	// Validate the whole payment list before touching the database.
	requerido := tipo.PrecioBase.Mul(decimal.NewFromInt(int64(len(clientes))))
	recon := NewReconciliadorPagos(requerido)
	pagos, err := s.resolverPagos(ctx, recon, req.Pagos)
	if err != nil {
		return nil, err
	}

	// Sequential allocation of the paid total across the batch.
	porPagar := recon.TotalPagado()

	var creadas []*model.Membresia
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for i, cliente := range clientes {
			cubierto := decimal.Min(porPagar, tipo.PrecioBase)
			porPagar = porPagar.Sub(cubierto)

			saldo := tipo.PrecioBase.Sub(cubierto)
			estado := model.MembresiaActiva
			if saldo.GreaterThan(decimal.Zero) {
				estado = model.MembresiaPendiente
			}

			fin := fechaFin
			m := &model.Membresia{
				ClienteID:       cliente.ID,
				TipoMembresiaID: tipo.ID,
				FechaInicio:     fechaInicio,
				FechaFin:        &fin,
				Estado:          estado,
				Precio:          tipo.PrecioBase,
				SaldoPendiente:  saldo,
			}
			if err := s.repo.CreateTx(ctx, tx, m); err != nil {
				return err
			}
			m.Cliente = cliente
			m.TipoMembresia = tipo
			creadas = append(creadas, m)

			// Payment rows are recorded against the first membership of the
			// batch; the allocation above already distributed the amounts.
			if i == 0 {
				for _, p := range pagos {
					pago := p
					pago.MembresiaID = &m.ID
					if err := s.repo.CreatePagoTx(ctx, tx, &pago); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resps := make([]dto.MembresiaResponse, 0, len(creadas))
	for _, m := range creadas {
		metrics.RecordMembresia(m.Estado)
		resps = append(resps, *membresiaToResponse(m))

		if s.dispatcher != nil && m.Cliente != nil && m.Cliente.Email != nil {
			_ = s.dispatcher.EnqueueRecibo(ctx, worker.ReciboJobPayload{
				Tipo:    "membresia",
				RefID:   m.ID.String(),
				ToEmail: *m.Cliente.Email,
			})
		}
	}
	return resps, nil
}

// resolverPagos validates each entry through the reconciler and resolves the
// payment-type references. On any failure nothing has been persisted yet.
func (s *membresiaService) resolverPagos(ctx context.Context, recon *ReconciliadorPagos, entradas []dto.PagoRequest) ([]model.Pago, error) {
	pagos := make([]model.Pago, 0, len(entradas))
	for _, e := range entradas {
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
	return pagos, nil
}

// ── Abonar ────────────────────────────────────────────────────────────────────
// Adds one payment against the saldo. Transitions PENDIENTE → ACTIVA when the
// saldo reaches zero.

func (s *membresiaService) Abonar(ctx context.Context, id uuid.UUID, req dto.AbonoRequest) (*dto.MembresiaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMembresiaNoEncontrada
	}
	if m.SaldoPendiente.LessThanOrEqual(decimal.Zero) {
		return nil, ErrMembresiaSinSaldo
	}

	tipoPagoID, err := uuid.Parse(req.TipoPagoID)
	if err != nil {
		return nil, fmt.Errorf("tipo_pago_id invalido: %w", err)
	}
	if _, err := s.tiposPago.FindByID(ctx, tipoPagoID); err != nil {
		return nil, fmt.Errorf("tipo de pago %s no encontrado", req.TipoPagoID)
	}

	// The saldo is the required total of this mini-reconciliation.
	recon := NewReconciliadorPagos(m.SaldoPendiente)
	if err := recon.AgregarPago(tipoPagoID, req.Monto); err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		pago := &model.Pago{
			MembresiaID: &m.ID,
			TipoPagoID:  tipoPagoID,
			Monto:       req.Monto,
			Referencia:  req.Referencia,
		}
		if err := s.repo.CreatePagoTx(ctx, tx, pago); err != nil {
			return err
		}
		m.Pagos = append(m.Pagos, *pago)

		m.SaldoPendiente = recon.Restante()
		if m.SaldoPendiente.IsZero() && m.Estado == model.MembresiaPendiente {
			m.Estado = model.MembresiaActiva
		}
		return s.repo.UpdateTx(ctx, tx, m)
	})
	if txErr != nil {
		return nil, txErr
	}
	return membresiaToResponse(m), nil
}

// ── Queries ───────────────────────────────────────────────────────────────────

func (s *membresiaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.MembresiaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMembresiaNoEncontrada
	}
	resp := membresiaToResponse(m)
	vig := EvaluarVigencia(m, s.reloj())
	resp.VigenciaEstado = string(vig.Estado)
	resp.DiasRestantes = vig.DiasRestantes
	return resp, nil
}

func (s *membresiaService) Listar(ctx context.Context) ([]dto.MembresiaResponse, error) {
	ms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.conVigencia(ms), nil
}

func (s *membresiaService) ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.MembresiaResponse, error) {
	ms, err := s.repo.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return s.conVigencia(ms), nil
}

func (s *membresiaService) Vencimientos(ctx context.Context, dias int) ([]dto.MembresiaResponse, error) {
	if dias < 1 {
		dias = UmbralPorVencerDefault
	}
	ahora := s.reloj()
	corte := ahora.AddDate(0, 0, dias)
	ms, err := s.repo.ListActivasHasta(ctx, corte)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MembresiaResponse, 0, len(ms))
	for i := range ms {
		vig := EvaluarVigenciaConUmbral(&ms[i], ahora, dias)
		if vig.Estado != VigenciaPorVencer {
			continue
		}
		resp := membresiaToResponse(&ms[i])
		resp.VigenciaEstado = string(vig.Estado)
		resp.DiasRestantes = vig.DiasRestantes
		out = append(out, *resp)
	}
	return out, nil
}

func (s *membresiaService) conVigencia(ms []model.Membresia) []dto.MembresiaResponse {
	ahora := s.reloj()
	out := make([]dto.MembresiaResponse, 0, len(ms))
	for i := range ms {
		resp := membresiaToResponse(&ms[i])
		vig := EvaluarVigencia(&ms[i], ahora)
		resp.VigenciaEstado = string(vig.Estado)
		resp.DiasRestantes = vig.DiasRestantes
		out = append(out, *resp)
	}
	return out
}

// ── Mutaciones de estado ──────────────────────────────────────────────────────

func (s *membresiaService) Cancelar(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrMembresiaNoEncontrada
	}
	if m.Estado == model.MembresiaCancelada {
		return errors.New("la membresia ya esta cancelada")
	}
	m.Estado = model.MembresiaCancelada
	return s.repo.Update(ctx, m)
}

func (s *membresiaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrMembresiaNoEncontrada
	}
	return s.repo.Delete(ctx, id)
}

// ── Mappers ───────────────────────────────────────────────────────────────────

func membresiaToResponse(m *model.Membresia) *dto.MembresiaResponse {
	resp := &dto.MembresiaResponse{
		ID:              m.ID.String(),
		ClienteID:       m.ClienteID.String(),
		TipoMembresiaID: m.TipoMembresiaID.String(),
		FechaInicio:     m.FechaInicio.Format("2006-01-02"),
		Estado:          m.Estado,
		Precio:          m.Precio,
		SaldoPendiente:  m.SaldoPendiente,
	}
	if m.FechaFin != nil {
		resp.FechaFin = m.FechaFin.Format("2006-01-02")
	}
	if m.Cliente != nil {
		resp.ClienteNombre = m.Cliente.Nombre + " " + m.Cliente.Apellido
	}
	if m.TipoMembresia != nil {
		resp.TipoMembresia = m.TipoMembresia.Nombre
	}
	for _, p := range m.Pagos {
		resp.Pagos = append(resp.Pagos, pagoToResponse(&p))
	}
	return resp
}

func pagoToResponse(p *model.Pago) dto.PagoResponse {
	resp := dto.PagoResponse{
		ID:         p.ID.String(),
		Monto:      p.Monto,
		Referencia: p.Referencia,
		Fecha:      p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if p.TipoPago != nil {
		resp.TipoPago = p.TipoPago.Descripcion
	}
	return resp
}
