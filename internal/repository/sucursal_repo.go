package repository

import (
	"context"

	"gymplus/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SucursalRepository interface {
	Create(ctx context.Context, s *model.Sucursal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sucursal, error)
	List(ctx context.Context) ([]model.Sucursal, error)
	ListByGimnasio(ctx context.Context, gimnasioID uuid.UUID) ([]model.Sucursal, error)
	Update(ctx context.Context, s *model.Sucursal) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type sucursalRepo struct{ db *gorm.DB }

func NewSucursalRepository(db *gorm.DB) SucursalRepository { return &sucursalRepo{db: db} }

func (r *sucursalRepo) Create(ctx context.Context, s *model.Sucursal) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sucursalRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sucursal, error) {
	var s model.Sucursal
	err := r.db.WithContext(ctx).Preload("Gimnasio").First(&s, id).Error
	return &s, err
}

func (r *sucursalRepo) List(ctx context.Context) ([]model.Sucursal, error) {
	var ss []model.Sucursal
	err := r.db.WithContext(ctx).Where("activa").Order("nombre").Find(&ss).Error
	return ss, err
}

func (r *sucursalRepo) ListByGimnasio(ctx context.Context, gimnasioID uuid.UUID) ([]model.Sucursal, error) {
	var ss []model.Sucursal
	err := r.db.WithContext(ctx).Where("gimnasio_id = ? AND activa", gimnasioID).Order("nombre").Find(&ss).Error
	return ss, err
}

func (r *sucursalRepo) Update(ctx context.Context, s *model.Sucursal) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sucursalRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Sucursal{}).Where("id = ?", id).Update("activa", false).Error
}
