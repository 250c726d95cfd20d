package service

import (
	"context"
	"errors"

	"gymplus/internal/dto"
	"gymplus/internal/model"
	"gymplus/internal/repository"

	"github.com/google/uuid"
)

var ErrTipoNoEncontrado = errors.New("tipo no encontrado")

// TipoService manages the two catalogs the membership flow depends on:
// membership plans and payment methods.
type TipoService interface {
	CrearTipoMembresia(ctx context.Context, req dto.TipoMembresiaRequest) (*dto.TipoMembresiaResponse, error)
	ListarTiposMembresia(ctx context.Context) ([]dto.TipoMembresiaResponse, error)
	ActualizarTipoMembresia(ctx context.Context, id uuid.UUID, req dto.TipoMembresiaRequest) (*dto.TipoMembresiaResponse, error)
	DesactivarTipoMembresia(ctx context.Context, id uuid.UUID) error

	CrearTipoPago(ctx context.Context, descripcion string) (*dto.TipoPagoResponse, error)
	ListarTiposPago(ctx context.Context) ([]dto.TipoPagoResponse, error)
}

type tipoService struct {
	tiposMembresia repository.TipoMembresiaRepository
	tiposPago      repository.TipoPagoRepository
}

func NewTipoService(tiposMembresia repository.TipoMembresiaRepository, tiposPago repository.TipoPagoRepository) TipoService {
	return &tipoService{tiposMembresia: tiposMembresia, tiposPago: tiposPago}
}

func (s *tipoService) CrearTipoMembresia(ctx context.Context, req dto.TipoMembresiaRequest) (*dto.TipoMembresiaResponse, error) {
	t := &model.TipoMembresia{
		Nombre:       req.Nombre,
		PrecioBase:   req.PrecioBase,
		DuracionDias: req.DuracionDias,
		Activo:       true,
	}
	if err := s.tiposMembresia.Create(ctx, t); err != nil {
		return nil, err
	}
	return tipoMembresiaToResponse(t), nil
}

func (s *tipoService) ListarTiposMembresia(ctx context.Context) ([]dto.TipoMembresiaResponse, error) {
	ts, err := s.tiposMembresia.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TipoMembresiaResponse, len(ts))
	for i := range ts {
		resp[i] = *tipoMembresiaToResponse(&ts[i])
	}
	return resp, nil
}

func (s *tipoService) ActualizarTipoMembresia(ctx context.Context, id uuid.UUID, req dto.TipoMembresiaRequest) (*dto.TipoMembresiaResponse, error) {
	t, err := s.tiposMembresia.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTipoNoEncontrado
	}
	// Price changes only affect future purchases: existing memberships carry
	// their own Precio snapshot.
	t.Nombre = req.Nombre
	t.PrecioBase = req.PrecioBase
	t.DuracionDias = req.DuracionDias
	if err := s.tiposMembresia.Update(ctx, t); err != nil {
		return nil, err
	}
	return tipoMembresiaToResponse(t), nil
}

func (s *tipoService) DesactivarTipoMembresia(ctx context.Context, id uuid.UUID) error {
	return s.tiposMembresia.SoftDelete(ctx, id)
}

func (s *tipoService) CrearTipoPago(ctx context.Context, descripcion string) (*dto.TipoPagoResponse, error) {
	t := &model.TipoPago{Descripcion: descripcion, Activo: true}
	if err := s.tiposPago.Create(ctx, t); err != nil {
		return nil, err
	}
	return &dto.TipoPagoResponse{ID: t.ID.String(), Descripcion: t.Descripcion}, nil
}

func (s *tipoService) ListarTiposPago(ctx context.Context) ([]dto.TipoPagoResponse, error) {
	ts, err := s.tiposPago.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TipoPagoResponse, len(ts))
	for i := range ts {
		resp[i] = dto.TipoPagoResponse{ID: ts[i].ID.String(), Descripcion: ts[i].Descripcion}
	}
	return resp, nil
}

func tipoMembresiaToResponse(t *model.TipoMembresia) *dto.TipoMembresiaResponse {
	return &dto.TipoMembresiaResponse{
		ID:           t.ID.String(),
		Nombre:       t.Nombre,
		PrecioBase:   t.PrecioBase,
		DuracionDias: t.DuracionDias,
		Activo:       t.Activo,
	}
}
