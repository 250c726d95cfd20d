package repository

import (
	"context"

	"gymplus/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GimnasioRepository interface {
	Create(ctx context.Context, g *model.Gimnasio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Gimnasio, error)
	List(ctx context.Context) ([]model.Gimnasio, error)
	Update(ctx context.Context, g *model.Gimnasio) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type gimnasioRepo struct{ db *gorm.DB }

func NewGimnasioRepository(db *gorm.DB) GimnasioRepository { return &gimnasioRepo{db: db} }

func (r *gimnasioRepo) Create(ctx context.Context, g *model.Gimnasio) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gimnasioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Gimnasio, error) {
	var g model.Gimnasio
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}

func (r *gimnasioRepo) List(ctx context.Context) ([]model.Gimnasio, error) {
	var gs []model.Gimnasio
	err := r.db.WithContext(ctx).Where("activo").Order("nombre").Find(&gs).Error
	return gs, err
}

func (r *gimnasioRepo) Update(ctx context.Context, g *model.Gimnasio) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *gimnasioRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Gimnasio{}).Where("id = ?", id).Update("activo", false).Error
}
