package service

// checkin_service.go
// Front-desk access flow: look up the person by cedula, scan their memberships
// for an ACTIVA one, classify its date window, and decide between automatic
// approval and a manual front-desk override. The decision is ephemeral; only
// the final access event (Registrar) is persisted.
//
// Verification never caches: staff may renew a membership in another tab
// between two searches, so every call re-fetches and re-evaluates.

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gymplus/internal/dto"
	"gymplus/internal/metrics"
	"gymplus/internal/model"
	"gymplus/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCedulaRequerida     = errors.New("ingrese un numero de cedula")
	ErrSucursalRequerida   = errors.New("seleccione una sucursal antes de registrar accesos")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
)

type CheckInService interface {
	// Verificar resolves a cedula to a person plus an access decision for the
	// given branch. The branch is a hard precondition — check-ins are always
	// branch-scoped.
	Verificar(ctx context.Context, cedula string, sucursalID uuid.UUID) (*dto.CheckInDecision, error)
	Registrar(ctx context.Context, req dto.RegistrarCheckInRequest) (*dto.CheckInResponse, error)
	Listar(ctx context.Context, filter dto.CheckInFilter) (*dto.CheckInListResponse, error)
}

type checkinService struct {
	usuarios   repository.UsuarioRepository
	membresias repository.MembresiaRepository
	sucursales repository.SucursalRepository
	checkins   repository.CheckInRepository
	reloj      Reloj
}

func NewCheckInService(
	usuarios repository.UsuarioRepository,
	membresias repository.MembresiaRepository,
	sucursales repository.SucursalRepository,
	checkins repository.CheckInRepository,
	reloj Reloj,
) CheckInService {
	if reloj == nil {
		reloj = RelojSistema
	}
	return &checkinService{
		usuarios:   usuarios,
		membresias: membresias,
		sucursales: sucursales,
		checkins:   checkins,
		reloj:      reloj,
	}
}

func (s *checkinService) Verificar(ctx context.Context, cedula string, sucursalID uuid.UUID) (*dto.CheckInDecision, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return nil, ErrCedulaRequerida
	}
	if sucursalID == uuid.Nil {
		return nil, ErrSucursalRequerida
	}
	if _, err := s.sucursales.FindByID(ctx, sucursalID); err != nil {
		return nil, ErrSucursalRequerida
	}

	usuario, err := s.usuarios.FindByCedula(ctx, cedula)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	// A failed membership fetch after the person was found is a hard stop:
	// approving access with an unknown membership state is the riskiest path.
	todas, err := s.membresias.ListByCliente(ctx, usuario.ID)
	if err != nil {
		return nil, fmt.Errorf("no se pudo verificar la membresia: %w", err)
	}

	// The list carries every estado in no guaranteed order; scan it all.
	var activa *model.Membresia
	for i := range todas {
		if todas[i].Estado == model.MembresiaActiva {
			activa = &todas[i]
			break
		}
	}

	vig := EvaluarVigencia(activa, s.reloj())

	decision := &dto.CheckInDecision{
		Usuario:        usuarioToResponse(usuario),
		VigenciaEstado: string(vig.Estado),
		DiasRestantes:  vig.DiasRestantes,
	}
	if activa != nil {
		resp := membresiaToResponse(activa)
		resp.VigenciaEstado = string(vig.Estado)
		resp.DiasRestantes = vig.DiasRestantes
		decision.Membresia = resp
	}

	switch {
	case activa == nil:
		// Distinct warning from the expired case: registration is the next step.
		decision.Accion = dto.AccionRequiereConfirmacion
		decision.Motivo = dto.MotivoSinMembresia
	case vig.Estado == VigenciaVencida:
		// Stored estado says ACTIVA but the date window already closed (stale
		// state — the nightly sweep has not caught it yet). Never auto-approve.
		decision.Accion = dto.AccionRequiereConfirmacion
		decision.Motivo = dto.MotivoMembresiaVencida
	default:
		decision.Accion = dto.AccionAutoAprobado
	}
	return decision, nil
}

func (s *checkinService) Registrar(ctx context.Context, req dto.RegistrarCheckInRequest) (*dto.CheckInResponse, error) {
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, fmt.Errorf("usuario_id invalido: %w", err)
	}
	sucursalID, err := uuid.Parse(req.SucursalID)
	if err != nil {
		return nil, ErrSucursalRequerida
	}

	checkin := &model.CheckIn{
		UsuarioID:  usuarioID,
		SucursalID: sucursalID,
		Resultado:  model.CheckInAutoAprobado,
	}
	if req.Manual {
		checkin.Resultado = model.CheckInManual
	}
	if req.MembresiaID != nil {
		if mid, err := uuid.Parse(*req.MembresiaID); err == nil {
			checkin.MembresiaID = &mid
		}
	}

	if err := s.checkins.Create(ctx, checkin); err != nil {
		return nil, err
	}
	metrics.RecordCheckIn(checkin.Resultado)

	return &dto.CheckInResponse{
		ID:         checkin.ID.String(),
		UsuarioID:  checkin.UsuarioID.String(),
		SucursalID: checkin.SucursalID.String(),
		Resultado:  checkin.Resultado,
		CreatedAt:  checkin.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}

func (s *checkinService) Listar(ctx context.Context, filter dto.CheckInFilter) (*dto.CheckInListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	checkins, total, err := s.checkins.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CheckInResponse, 0, len(checkins))
	for _, c := range checkins {
		item := dto.CheckInResponse{
			ID:         c.ID.String(),
			UsuarioID:  c.UsuarioID.String(),
			SucursalID: c.SucursalID.String(),
			Resultado:  c.Resultado,
			CreatedAt:  c.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
		if c.Usuario != nil {
			item.Usuario = c.Usuario.Nombre + " " + c.Usuario.Apellido
		}
		if c.Sucursal != nil {
			item.Sucursal = c.Sucursal.Nombre
		}
		items = append(items, item)
	}
	return &dto.CheckInListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}
