package service_test

// In-memory repository stubs shared by the service tests. The services run
// their writes through runTx, which short-circuits to fn(nil) when DB() is
// nil, so every stub returns a nil *gorm.DB and ignores the tx argument.

import (
	"context"
	"errors"
	"time"

	"gymplus/internal/dto"
	"gymplus/internal/model"
	"gymplus/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

// ── Usuarios ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) FindByCedula(_ context.Context, cedula string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Cedula == cedula && u.Activo {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errNotFound
	}
	u.Activo = false
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errNotFound
	}
	u.Activo = true
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func seedCliente(r *stubUsuarioRepo, cedula string) *model.Usuario {
	email := cedula + "@test.local"
	u := &model.Usuario{
		ID:       uuid.New(),
		Username: cedula,
		Nombre:   "Cliente",
		Apellido: cedula,
		Cedula:   cedula,
		Email:    &email,
		Roles:    pq.StringArray{model.RolCliente},
		Activo:   true,
	}
	r.usuarios[u.ID] = u
	return u
}

// ── Membresias ────────────────────────────────────────────────────────────────

type stubMembresiaRepo struct {
	membresias map[uuid.UUID]*model.Membresia
	pagos      []model.Pago
	// listErr forces ListByCliente to fail, simulating a DB outage mid check-in.
	listErr error
}

func newStubMembresiaRepo() *stubMembresiaRepo {
	return &stubMembresiaRepo{membresias: make(map[uuid.UUID]*model.Membresia)}
}

func (r *stubMembresiaRepo) CreateTx(_ context.Context, _ *gorm.DB, m *model.Membresia) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.membresias[m.ID] = m
	return nil
}

func (r *stubMembresiaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Membresia, error) {
	m, ok := r.membresias[id]
	if !ok {
		return nil, errNotFound
	}
	return m, nil
}

func (r *stubMembresiaRepo) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.Membresia, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []model.Membresia
	for _, m := range r.membresias {
		if m.ClienteID == clienteID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMembresiaRepo) List(_ context.Context) ([]model.Membresia, error) {
	var out []model.Membresia
	for _, m := range r.membresias {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMembresiaRepo) ListActivasHasta(_ context.Context, hasta time.Time) ([]model.Membresia, error) {
	var out []model.Membresia
	for _, m := range r.membresias {
		if m.Estado == model.MembresiaActiva && m.FechaFin != nil && !m.FechaFin.After(hasta) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMembresiaRepo) Update(_ context.Context, m *model.Membresia) error {
	r.membresias[m.ID] = m
	return nil
}

func (r *stubMembresiaRepo) UpdateTx(_ context.Context, _ *gorm.DB, m *model.Membresia) error {
	r.membresias[m.ID] = m
	return nil
}

func (r *stubMembresiaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.membresias, id)
	return nil
}

func (r *stubMembresiaRepo) CreatePagoTx(_ context.Context, _ *gorm.DB, p *model.Pago) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagos = append(r.pagos, *p)
	return nil
}

func (r *stubMembresiaRepo) MarcarVencidas(_ context.Context, corte time.Time) (int64, error) {
	var n int64
	for _, m := range r.membresias {
		if (m.Estado == model.MembresiaActiva || m.Estado == model.MembresiaPendiente) &&
			m.FechaFin != nil && m.FechaFin.Before(corte) {
			m.Estado = model.MembresiaVencida
			n++
		}
	}
	return n, nil
}

func (r *stubMembresiaRepo) DB() *gorm.DB { return nil }

var _ repository.MembresiaRepository = (*stubMembresiaRepo)(nil)

func seedMembresia(r *stubMembresiaRepo, clienteID uuid.UUID, estado string, fin time.Time) *model.Membresia {
	m := &model.Membresia{
		ID:              uuid.New(),
		ClienteID:       clienteID,
		TipoMembresiaID: uuid.New(),
		FechaInicio:     fin.AddDate(0, 0, -30),
		FechaFin:        &fin,
		Estado:          estado,
		Precio:          decimal.NewFromInt(30),
		SaldoPendiente:  decimal.Zero,
	}
	r.membresias[m.ID] = m
	return m
}

// ── Sucursales ────────────────────────────────────────────────────────────────

type stubSucursalRepo struct {
	sucursales map[uuid.UUID]*model.Sucursal
}

func newStubSucursalRepo() *stubSucursalRepo {
	return &stubSucursalRepo{sucursales: make(map[uuid.UUID]*model.Sucursal)}
}

func (r *stubSucursalRepo) Create(_ context.Context, s *model.Sucursal) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sucursales[s.ID] = s
	return nil
}

func (r *stubSucursalRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sucursal, error) {
	s, ok := r.sucursales[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubSucursalRepo) List(_ context.Context) ([]model.Sucursal, error) {
	var out []model.Sucursal
	for _, s := range r.sucursales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSucursalRepo) ListByGimnasio(_ context.Context, gimnasioID uuid.UUID) ([]model.Sucursal, error) {
	var out []model.Sucursal
	for _, s := range r.sucursales {
		if s.GimnasioID == gimnasioID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSucursalRepo) Update(_ context.Context, s *model.Sucursal) error {
	r.sucursales[s.ID] = s
	return nil
}

func (r *stubSucursalRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	s, ok := r.sucursales[id]
	if !ok {
		return errNotFound
	}
	s.Activa = false
	return nil
}

var _ repository.SucursalRepository = (*stubSucursalRepo)(nil)

func seedSucursal(r *stubSucursalRepo) *model.Sucursal {
	s := &model.Sucursal{ID: uuid.New(), GimnasioID: uuid.New(), Nombre: "Sede Centro", Activa: true}
	r.sucursales[s.ID] = s
	return s
}

// ── Check-ins ─────────────────────────────────────────────────────────────────

type stubCheckInRepo struct {
	checkins []model.CheckIn
}

func (r *stubCheckInRepo) Create(_ context.Context, c *model.CheckIn) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.checkins = append(r.checkins, *c)
	return nil
}

func (r *stubCheckInRepo) List(_ context.Context, _ dto.CheckInFilter) ([]model.CheckIn, int64, error) {
	return r.checkins, int64(len(r.checkins)), nil
}

var _ repository.CheckInRepository = (*stubCheckInRepo)(nil)

// ── Catalogos ─────────────────────────────────────────────────────────────────

type stubTipoMembresiaRepo struct {
	tipos map[uuid.UUID]*model.TipoMembresia
}

func newStubTipoMembresiaRepo() *stubTipoMembresiaRepo {
	return &stubTipoMembresiaRepo{tipos: make(map[uuid.UUID]*model.TipoMembresia)}
}

func (r *stubTipoMembresiaRepo) Create(_ context.Context, t *model.TipoMembresia) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tipos[t.ID] = t
	return nil
}

func (r *stubTipoMembresiaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.TipoMembresia, error) {
	t, ok := r.tipos[id]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

func (r *stubTipoMembresiaRepo) List(_ context.Context) ([]model.TipoMembresia, error) {
	var out []model.TipoMembresia
	for _, t := range r.tipos {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTipoMembresiaRepo) Update(_ context.Context, t *model.TipoMembresia) error {
	r.tipos[t.ID] = t
	return nil
}

func (r *stubTipoMembresiaRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	t, ok := r.tipos[id]
	if !ok {
		return errNotFound
	}
	t.Activo = false
	return nil
}

var _ repository.TipoMembresiaRepository = (*stubTipoMembresiaRepo)(nil)

func seedPlan(r *stubTipoMembresiaRepo, nombre string, precio float64, dias int) *model.TipoMembresia {
	t := &model.TipoMembresia{
		ID:           uuid.New(),
		Nombre:       nombre,
		PrecioBase:   decimal.NewFromFloat(precio),
		DuracionDias: dias,
		Activo:       true,
	}
	r.tipos[t.ID] = t
	return t
}

type stubTipoPagoRepo struct {
	tipos map[uuid.UUID]*model.TipoPago
}

func newStubTipoPagoRepo() *stubTipoPagoRepo {
	return &stubTipoPagoRepo{tipos: make(map[uuid.UUID]*model.TipoPago)}
}

func (r *stubTipoPagoRepo) Create(_ context.Context, t *model.TipoPago) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tipos[t.ID] = t
	return nil
}

func (r *stubTipoPagoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.TipoPago, error) {
	t, ok := r.tipos[id]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

func (r *stubTipoPagoRepo) List(_ context.Context) ([]model.TipoPago, error) {
	var out []model.TipoPago
	for _, t := range r.tipos {
		out = append(out, *t)
	}
	return out, nil
}

var _ repository.TipoPagoRepository = (*stubTipoPagoRepo)(nil)

func seedTipoPago(r *stubTipoPagoRepo, descripcion string) *model.TipoPago {
	t := &model.TipoPago{ID: uuid.New(), Descripcion: descripcion, Activo: true}
	r.tipos[t.ID] = t
	return t
}

// ── Productos ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubProductoRepo) List(_ context.Context, incluirInactivos bool) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if incluirInactivos || p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return errNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) DescontarStockTx(_ context.Context, _ *gorm.DB, id uuid.UUID, cantidad int) error {
	p, ok := r.productos[id]
	if !ok || p.StockActual < cantidad {
		return repository.ErrStockInsuficiente
	}
	p.StockActual -= cantidad
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

func seedProducto(r *stubProductoRepo, nombre string, precio float64, stock int) *model.Producto {
	p := &model.Producto{
		ID:             uuid.New(),
		Codigo:         uuid.NewString()[:8],
		Nombre:         nombre,
		PrecioUnitario: decimal.NewFromFloat(precio),
		StockActual:    stock,
		Activo:         true,
	}
	r.productos[p.ID] = p
	return p
}

// ── Ventas ────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, errNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) UpdateEstadoTx(_ context.Context, _ *gorm.DB, id uuid.UUID, estado string) error {
	v, ok := r.ventas[id]
	if !ok {
		return errNotFound
	}
	v.Estado = estado
	return nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)
