// Package metrics exposes Prometheus collectors for the API and the business
// flows. Everything registers through promauto so /metrics picks it up
// without explicit wiring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymplus_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymplus_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymplus_checkins_total",
			Help: "Total number of recorded check-ins",
		},
		[]string{"resultado"},
	)

	MembresiasCreadasTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymplus_membresias_creadas_total",
			Help: "Total number of memberships created",
		},
		[]string{"estado"},
	)

	VentasTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymplus_ventas_total",
			Help: "Total number of completed sales",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymplus_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	MembresiasVencidasSweep = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymplus_membresias_vencidas_sweep_total",
			Help: "Memberships flipped to VENCIDA by the nightly sweep",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordCheckIn(resultado string) {
	CheckInsTotal.WithLabelValues(resultado).Inc()
}

func RecordMembresia(estado string) {
	MembresiasCreadasTotal.WithLabelValues(estado).Inc()
}

func RecordVenta() {
	VentasTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
