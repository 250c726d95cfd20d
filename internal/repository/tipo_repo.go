package repository

import (
	"context"

	"gymplus/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Tipos de membresia ────────────────────────────────────────────────────────

type TipoMembresiaRepository interface {
	Create(ctx context.Context, t *model.TipoMembresia) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TipoMembresia, error)
	List(ctx context.Context) ([]model.TipoMembresia, error)
	Update(ctx context.Context, t *model.TipoMembresia) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type tipoMembresiaRepo struct{ db *gorm.DB }

func NewTipoMembresiaRepository(db *gorm.DB) TipoMembresiaRepository {
	return &tipoMembresiaRepo{db: db}
}

func (r *tipoMembresiaRepo) Create(ctx context.Context, t *model.TipoMembresia) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoMembresiaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.TipoMembresia, error) {
	var t model.TipoMembresia
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tipoMembresiaRepo) List(ctx context.Context) ([]model.TipoMembresia, error) {
	var ts []model.TipoMembresia
	err := r.db.WithContext(ctx).Where("activo").Order("precio_base").Find(&ts).Error
	return ts, err
}

func (r *tipoMembresiaRepo) Update(ctx context.Context, t *model.TipoMembresia) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tipoMembresiaRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.TipoMembresia{}).Where("id = ?", id).Update("activo", false).Error
}

// ── Tipos de pago ─────────────────────────────────────────────────────────────

type TipoPagoRepository interface {
	Create(ctx context.Context, t *model.TipoPago) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TipoPago, error)
	List(ctx context.Context) ([]model.TipoPago, error)
}

type tipoPagoRepo struct{ db *gorm.DB }

func NewTipoPagoRepository(db *gorm.DB) TipoPagoRepository { return &tipoPagoRepo{db: db} }

func (r *tipoPagoRepo) Create(ctx context.Context, t *model.TipoPago) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoPagoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.TipoPago, error) {
	var t model.TipoPago
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tipoPagoRepo) List(ctx context.Context) ([]model.TipoPago, error) {
	var ts []model.TipoPago
	err := r.db.WithContext(ctx).Where("activo").Order("descripcion").Find(&ts).Error
	return ts, err
}
