package repository

import (
	"context"
	"time"

	"gymplus/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembresiaRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, m *model.Membresia) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Membresia, error)
	// ListByCliente returns every membership of a person, any estado, no
	// guaranteed order. Check-in verification scans the full list.
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Membresia, error)
	List(ctx context.Context) ([]model.Membresia, error)
	// ListActivasHasta returns ACTIVA memberships whose end date falls on or
	// before the cutoff — the reminder cron's working set.
	ListActivasHasta(ctx context.Context, hasta time.Time) ([]model.Membresia, error)
	Update(ctx context.Context, m *model.Membresia) error
	UpdateTx(ctx context.Context, tx *gorm.DB, m *model.Membresia) error
	Delete(ctx context.Context, id uuid.UUID) error
	CreatePagoTx(ctx context.Context, tx *gorm.DB, p *model.Pago) error
	// MarcarVencidas flips ACTIVA/PENDIENTE rows whose end date passed to
	// VENCIDA. Returns the number of rows touched.
	MarcarVencidas(ctx context.Context, corte time.Time) (int64, error)
	DB() *gorm.DB
}

type membresiaRepo struct{ db *gorm.DB }

func NewMembresiaRepository(db *gorm.DB) MembresiaRepository { return &membresiaRepo{db: db} }

func (r *membresiaRepo) DB() *gorm.DB { return r.db }

func (r *membresiaRepo) CreateTx(ctx context.Context, tx *gorm.DB, m *model.Membresia) error {
	return tx.WithContext(ctx).Create(m).Error
}

func (r *membresiaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Membresia, error) {
	var m model.Membresia
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("TipoMembresia").Preload("Pagos").
		First(&m, id).Error
	return &m, err
}

func (r *membresiaRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Membresia, error) {
	var ms []model.Membresia
	err := r.db.WithContext(ctx).
		Preload("TipoMembresia").
		Where("cliente_id = ?", clienteID).
		Find(&ms).Error
	return ms, err
}

func (r *membresiaRepo) List(ctx context.Context) ([]model.Membresia, error) {
	var ms []model.Membresia
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("TipoMembresia").
		Order("created_at DESC").
		Find(&ms).Error
	return ms, err
}

func (r *membresiaRepo) ListActivasHasta(ctx context.Context, hasta time.Time) ([]model.Membresia, error) {
	var ms []model.Membresia
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("TipoMembresia").
		Where("estado = ? AND fecha_fin <= ?", model.MembresiaActiva, hasta).
		Find(&ms).Error
	return ms, err
}

func (r *membresiaRepo) Update(ctx context.Context, m *model.Membresia) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *membresiaRepo) UpdateTx(ctx context.Context, tx *gorm.DB, m *model.Membresia) error {
	return tx.WithContext(ctx).Save(m).Error
}

func (r *membresiaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Pagos cascade via FK constraint.
	return r.db.WithContext(ctx).Delete(&model.Membresia{}, id).Error
}

func (r *membresiaRepo) CreatePagoTx(ctx context.Context, tx *gorm.DB, p *model.Pago) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *membresiaRepo) MarcarVencidas(ctx context.Context, corte time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Membresia{}).
		Where("estado IN ? AND fecha_fin < ?", []string{model.MembresiaActiva, model.MembresiaPendiente}, corte).
		Update("estado", model.MembresiaVencida)
	return res.RowsAffected, res.Error
}
