// Package metrics expone los colectores Prometheus del servicio: tráfico HTTP y
// contadores de dominio (operaciones sobre facturas, exportaciones, sesiones activas).
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa los colectores registrados en un Registerer.
type Metrics struct {
	ReqTotal   *prometheus.CounterVec
	ReqDur     *prometheus.HistogramVec
	InFlight   prometheus.Gauge
	Operations *prometheus.CounterVec
	Exports    *prometheus.CounterVec
	Sessions   prometheus.Gauge
}

// New crea y registra los colectores. reg nil usa el registro global.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "Latencia de peticiones HTTP en milisegundos.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method", "route"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "Peticiones HTTP en curso.",
		}),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_operations_total",
			Help:      "Operaciones sobre facturas por tipo y resultado.",
		}, []string{"operation", "result"}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_exports_total",
			Help:      "Documentos exportados por formato y resultado.",
		}, []string{"format", "result"}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "invoice_sessions_active",
			Help:      "Formularios de factura abiertos en memoria.",
		}),
	}
	m.ReqTotal = registerOrExisting(reg, m.ReqTotal)
	m.ReqDur = registerOrExisting(reg, m.ReqDur)
	m.InFlight = registerOrExisting(reg, m.InFlight)
	m.Operations = registerOrExisting(reg, m.Operations)
	m.Exports = registerOrExisting(reg, m.Exports)
	m.Sessions = registerOrExisting(reg, m.Sessions)
	return m
}

// Operation cuenta una operación de dominio (add_item, set_header, upload_signature, ...).
func (m *Metrics) Operation(op, result string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, result).Inc()
}

// Export cuenta una exportación (pdf, xlsx).
func (m *Metrics) Export(format, result string) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(format, result).Inc()
}

// SessionsActive fija la cantidad de sesiones abiertas.
func (m *Metrics) SessionsActive(n int) {
	if m == nil {
		return
	}
	m.Sessions.Set(float64(n))
}

// DurationMillis convierte una duración a milisegundos para los histogramas.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Si el colector ya existe (p. ej. tests que crean varias apps sobre el registro global)
// se reutiliza el registrado.
func registerOrExisting[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(fmt.Errorf("metrics: registrar colector: %w", err))
	}
	return c
}
