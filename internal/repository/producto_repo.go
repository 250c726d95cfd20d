package repository

import (
	"context"
	"errors"

	"gymplus/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrStockInsuficiente = errors.New("stock insuficiente")

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Producto, error)
	List(ctx context.Context, incluirInactivos bool) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// DescontarStockTx decrements stock atomically inside tx; fails with
	// ErrStockInsuficiente when the guard clause matches no row.
	DescontarStockTx(ctx context.Context, tx *gorm.DB, id uuid.UUID, cantidad int) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&p).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, incluirInactivos bool) ([]model.Producto, error) {
	var ps []model.Producto
	q := r.db.WithContext(ctx).Order("nombre")
	if !incluirInactivos {
		q = q.Where("activo")
	}
	err := q.Find(&ps).Error
	return ps, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *productoRepo) DescontarStockTx(ctx context.Context, tx *gorm.DB, id uuid.UUID, cantidad int) error {
	res := tx.WithContext(ctx).
		Model(&model.Producto{}).
		Where("id = ? AND stock_actual >= ?", id, cantidad).
		Update("stock_actual", gorm.Expr("stock_actual - ?", cantidad))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockInsuficiente
	}
	return nil
}
