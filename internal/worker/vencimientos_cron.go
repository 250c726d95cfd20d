package worker

// vencimientos_cron.go
// Background goroutine that runs the daily expiration sweep: memberships whose
// end date already passed are flipped to VENCIDA, and clients whose membership
// expires within the warning window get a reminder email. A Redis SETNX lock
// keyed by date makes the sweep run once per day even across replicas.

import (
	"context"
	"fmt"
	"time"

	"gymplus/internal/metrics"
	"gymplus/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	vencimientosTickInterval = time.Hour
	vencimientosLockTTL      = 26 * time.Hour
)

// VencimientosCronConfig holds all dependencies for the sweep goroutine.
type VencimientosCronConfig struct {
	MembresiaRepo repository.MembresiaRepository
	Dispatcher    *Dispatcher
	RDB           *redis.Client
	// DiasAviso is the reminder window in days before the end date.
	DiasAviso int
}

// StartVencimientosCron launches a background goroutine that ticks hourly and
// runs the sweep at most once per calendar day. It respects the context for
// graceful shutdown.
func StartVencimientosCron(ctx context.Context, cfg VencimientosCronConfig) {
	go func() {
		ticker := time.NewTicker(vencimientosTickInterval)
		defer ticker.Stop()

		log.Info().Msg("vencimientos_cron: started")

		// First tick right away so a fresh deploy does not wait an hour.
		runSweep(ctx, cfg)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("vencimientos_cron: shutting down")
				return
			case <-ticker.C:
				runSweep(ctx, cfg)
			}
		}
	}()
}

func runSweep(ctx context.Context, cfg VencimientosCronConfig) {
	now := time.Now()
	lockKey := "cron:vencimientos:" + now.Format("2006-01-02")
	ok, err := cfg.RDB.SetNX(ctx, lockKey, "1", vencimientosLockTTL).Result()
	if err != nil {
		log.Error().Err(err).Msg("vencimientos_cron: failed to acquire daily lock")
		return
	}
	if !ok {
		return // already ran today (here or on another replica)
	}

	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// 1. Flip rows whose window already closed.
	flipped, err := cfg.MembresiaRepo.MarcarVencidas(ctx, hoy)
	if err != nil {
		log.Error().Err(err).Msg("vencimientos_cron: sweep failed")
		return
	}
	if flipped > 0 {
		metrics.MembresiasVencidasSweep.Add(float64(flipped))
		log.Info().Int64("count", flipped).Msg("vencimientos_cron: memberships marked VENCIDA")
	}

	// 2. Remind clients whose membership expires within the warning window.
	corte := hoy.AddDate(0, 0, cfg.DiasAviso)
	porVencer, err := cfg.MembresiaRepo.ListActivasHasta(ctx, corte)
	if err != nil {
		log.Error().Err(err).Msg("vencimientos_cron: failed to list expiring memberships")
		return
	}

	enqueued := 0
	for i := range porVencer {
		m := &porVencer[i]
		if m.Cliente == nil || m.Cliente.Email == nil || *m.Cliente.Email == "" {
			continue
		}
		if m.FechaFin == nil {
			continue
		}
		dias := int(m.FechaFin.Sub(hoy).Hours() / 24)
		cuerpo := fmt.Sprintf(
			"Hola %s,\n\nTu membresia vence el %s (en %d dias).\nAcercate a recepcion para renovarla y seguir entrenando sin cortes.",
			m.Cliente.Nombre, m.FechaFin.Format("02/01/2006"), dias)
		job := EmailJobPayload{
			Tipo:    "recordatorio",
			ToEmail: *m.Cliente.Email,
			Subject: "GymPlus — Tu membresia esta por vencer",
			Body:    cuerpo,
		}
		if err := cfg.Dispatcher.EnqueueEmail(ctx, job); err != nil {
			log.Warn().Err(err).Str("membresia_id", m.ID.String()).Msg("vencimientos_cron: failed to enqueue reminder")
			continue
		}
		enqueued++
	}
	if enqueued > 0 {
		log.Info().Int("count", enqueued).Msg("vencimientos_cron: reminder emails enqueued")
	}
}
