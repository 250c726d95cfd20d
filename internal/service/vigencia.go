package service

// vigencia.go
// Date-window classification of a membership, independent from its persisted
// Estado. The evaluator answers "is the date window still valid as of now";
// Estado answers "what administrative state was set at write time". Check-in
// gating consults both (see checkin_service.go).

import (
	"math"
	"time"

	"gymplus/internal/model"
)

// UmbralPorVencerDefault is the warning window in days: a membership ending
// within this many days classifies as por_vencer.
const UmbralPorVencerDefault = 7

type EstadoVigencia string

const (
	VigenciaSinMembresia EstadoVigencia = "sin_membresia"
	VigenciaVencida      EstadoVigencia = "vencida"
	VigenciaPorVencer    EstadoVigencia = "por_vencer"
	VigenciaVigente      EstadoVigencia = "vigente"
)

// Vigencia is the derived classification plus whole days remaining.
// DiasRestantes is nil when there is no date window to measure.
type Vigencia struct {
	Estado        EstadoVigencia `json:"estado"`
	DiasRestantes *int           `json:"dias_restantes"`
}

// EvaluarVigencia classifies m against ahora using the default 7-day warning
// window. It never mutates the membership.
func EvaluarVigencia(m *model.Membresia, ahora time.Time) Vigencia {
	return EvaluarVigenciaConUmbral(m, ahora, UmbralPorVencerDefault)
}

// EvaluarVigenciaConUmbral is EvaluarVigencia with an operator-supplied warning
// window, used by the vencimientos list filter.
//
// Both dates are truncated to midnight before subtracting so partial days never
// shift the count: a membership ending today is "por_vencer" (0 days left)
// regardless of the time of day, and only becomes "vencida" the day after.
func EvaluarVigenciaConUmbral(m *model.Membresia, ahora time.Time, umbralDias int) Vigencia {
	if m == nil || m.FechaFin == nil {
		return Vigencia{Estado: VigenciaSinMembresia}
	}

	dias := diasEntre(ahora, *m.FechaFin)
	switch {
	case dias < 0:
		return Vigencia{Estado: VigenciaVencida, DiasRestantes: &dias}
	case dias <= umbralDias:
		return Vigencia{Estado: VigenciaPorVencer, DiasRestantes: &dias}
	default:
		return Vigencia{Estado: VigenciaVigente, DiasRestantes: &dias}
	}
}

// diasEntre returns whole calendar days from desde to hasta, comparing
// date-only components in desde's location.
func diasEntre(desde, hasta time.Time) int {
	desde = medianoche(desde)
	hasta = medianoche(hasta.In(desde.Location()))
	return int(math.Round(hasta.Sub(desde).Hours() / 24))
}

func medianoche(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
