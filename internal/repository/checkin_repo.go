package repository

import (
	"context"

	"gymplus/internal/dto"
	"gymplus/internal/model"

	"gorm.io/gorm"
)

type CheckInRepository interface {
	Create(ctx context.Context, c *model.CheckIn) error
	List(ctx context.Context, filter dto.CheckInFilter) ([]model.CheckIn, int64, error)
}

type checkinRepo struct{ db *gorm.DB }

func NewCheckInRepository(db *gorm.DB) CheckInRepository { return &checkinRepo{db: db} }

func (r *checkinRepo) Create(ctx context.Context, c *model.CheckIn) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *checkinRepo) List(ctx context.Context, filter dto.CheckInFilter) ([]model.CheckIn, int64, error) {
	var checkins []model.CheckIn
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.CheckIn{})

	if filter.SucursalID != "" {
		q = q.Where("sucursal_id = ?", filter.SucursalID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Usuario").Preload("Sucursal").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&checkins).Error

	return checkins, total, err
}
