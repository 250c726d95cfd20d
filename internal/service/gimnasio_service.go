package service

import (
	"context"
	"errors"

	"gymplus/internal/dto"
	"gymplus/internal/model"
	"gymplus/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrGimnasioNoEncontrado = errors.New("gimnasio no encontrado")
	ErrSucursalNoEncontrada = errors.New("sucursal no encontrada")
)

type GimnasioService interface {
	Crear(ctx context.Context, req dto.GimnasioRequest) (*dto.GimnasioResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.GimnasioResponse, error)
	Listar(ctx context.Context) ([]dto.GimnasioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.GimnasioRequest) (*dto.GimnasioResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error

	CrearSucursal(ctx context.Context, req dto.SucursalRequest) (*dto.SucursalResponse, error)
	ListarSucursales(ctx context.Context, gimnasioID *uuid.UUID) ([]dto.SucursalResponse, error)
	ActualizarSucursal(ctx context.Context, id uuid.UUID, req dto.SucursalRequest) (*dto.SucursalResponse, error)
	DesactivarSucursal(ctx context.Context, id uuid.UUID) error
}

type gimnasioService struct {
	gimnasios  repository.GimnasioRepository
	sucursales repository.SucursalRepository
}

func NewGimnasioService(gimnasios repository.GimnasioRepository, sucursales repository.SucursalRepository) GimnasioService {
	return &gimnasioService{gimnasios: gimnasios, sucursales: sucursales}
}

func (s *gimnasioService) Crear(ctx context.Context, req dto.GimnasioRequest) (*dto.GimnasioResponse, error) {
	g := &model.Gimnasio{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Activo:    true,
	}
	if err := s.gimnasios.Create(ctx, g); err != nil {
		return nil, err
	}
	return gimnasioToResponse(g), nil
}

func (s *gimnasioService) Obtener(ctx context.Context, id uuid.UUID) (*dto.GimnasioResponse, error) {
	g, err := s.gimnasios.FindByID(ctx, id)
	if err != nil {
		return nil, ErrGimnasioNoEncontrado
	}
	return gimnasioToResponse(g), nil
}

func (s *gimnasioService) Listar(ctx context.Context) ([]dto.GimnasioResponse, error) {
	gs, err := s.gimnasios.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.GimnasioResponse, len(gs))
	for i := range gs {
		resp[i] = *gimnasioToResponse(&gs[i])
	}
	return resp, nil
}

func (s *gimnasioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.GimnasioRequest) (*dto.GimnasioResponse, error) {
	g, err := s.gimnasios.FindByID(ctx, id)
	if err != nil {
		return nil, ErrGimnasioNoEncontrado
	}
	g.Nombre = req.Nombre
	g.Direccion = req.Direccion
	g.Telefono = req.Telefono
	if err := s.gimnasios.Update(ctx, g); err != nil {
		return nil, err
	}
	return gimnasioToResponse(g), nil
}

func (s *gimnasioService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.gimnasios.SoftDelete(ctx, id)
}

func (s *gimnasioService) CrearSucursal(ctx context.Context, req dto.SucursalRequest) (*dto.SucursalResponse, error) {
	gimnasioID, err := uuid.Parse(req.GimnasioID)
	if err != nil {
		return nil, ErrGimnasioNoEncontrado
	}
	if _, err := s.gimnasios.FindByID(ctx, gimnasioID); err != nil {
		return nil, ErrGimnasioNoEncontrado
	}
	suc := &model.Sucursal{
		GimnasioID: gimnasioID,
		Nombre:     req.Nombre,
		Direccion:  req.Direccion,
		Activa:     true,
	}
	if err := s.sucursales.Create(ctx, suc); err != nil {
		return nil, err
	}
	return sucursalToResponse(suc), nil
}

func (s *gimnasioService) ListarSucursales(ctx context.Context, gimnasioID *uuid.UUID) ([]dto.SucursalResponse, error) {
	var (
		ss  []model.Sucursal
		err error
	)
	if gimnasioID != nil {
		ss, err = s.sucursales.ListByGimnasio(ctx, *gimnasioID)
	} else {
		ss, err = s.sucursales.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SucursalResponse, len(ss))
	for i := range ss {
		resp[i] = *sucursalToResponse(&ss[i])
	}
	return resp, nil
}

func (s *gimnasioService) ActualizarSucursal(ctx context.Context, id uuid.UUID, req dto.SucursalRequest) (*dto.SucursalResponse, error) {
	suc, err := s.sucursales.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSucursalNoEncontrada
	}
	suc.Nombre = req.Nombre
	suc.Direccion = req.Direccion
	if err := s.sucursales.Update(ctx, suc); err != nil {
		return nil, err
	}
	return sucursalToResponse(suc), nil
}

func (s *gimnasioService) DesactivarSucursal(ctx context.Context, id uuid.UUID) error {
	return s.sucursales.SoftDelete(ctx, id)
}

func gimnasioToResponse(g *model.Gimnasio) *dto.GimnasioResponse {
	return &dto.GimnasioResponse{
		ID:        g.ID.String(),
		Nombre:    g.Nombre,
		Direccion: g.Direccion,
		Telefono:  g.Telefono,
		Activo:    g.Activo,
	}
}

func sucursalToResponse(s *model.Sucursal) *dto.SucursalResponse {
	resp := &dto.SucursalResponse{
		ID:         s.ID.String(),
		GimnasioID: s.GimnasioID.String(),
		Nombre:     s.Nombre,
		Direccion:  s.Direccion,
		Activa:     s.Activa,
	}
	if s.Gimnasio != nil {
		resp.Gimnasio = s.Gimnasio.Nombre
	}
	return resp
}
