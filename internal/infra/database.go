package infra

import (
	"fmt"

	"gymplus/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies any idempotent SQL patches that GORM
// cannot express (partial indexes, extensions).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// gen_random_uuid() needs pgcrypto on Postgres < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return nil, fmt.Errorf("pgcrypto extension: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations applies AutoMigrate plus the SQL patches GORM cannot express.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Gimnasio{},
		&model.Sucursal{},
		&model.Usuario{},
		&model.TipoMembresia{},
		&model.TipoPago{},
		&model.Membresia{},
		&model.Pago{},
		&model.Producto{},
		&model.Venta{},
		&model.VentaItem{},
		&model.CheckIn{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate does not cover.
// Each statement is guarded so re-running on a patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Partial index backing the expiration sweep and the vencimientos list.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_membresias_activas_fecha_fin') THEN
		    CREATE INDEX idx_membresias_activas_fecha_fin
		        ON membresias (fecha_fin)
		        WHERE estado IN ('ACTIVA', 'PENDIENTE');
		  END IF;
		END $$`,
		// Check-in history is queried per branch per day.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_check_ins_sucursal_created') THEN
		    CREATE INDEX idx_check_ins_sucursal_created
		        ON check_ins (sucursal_id, created_at DESC);
		  END IF;
		END $$`,
		// A pago belongs to a membership or a sale, never both, never neither.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_pagos_un_destino') THEN
		    ALTER TABLE pagos ADD CONSTRAINT chk_pagos_un_destino
		        CHECK ((membresia_id IS NULL) <> (venta_id IS NULL));
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
