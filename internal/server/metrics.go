package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// RendersTotal counts rendered palettes by method and output format.
	RendersTotal *prometheus.CounterVec

	// ErrorsTotal counts failures by kind (invalid_params, section, render).
	ErrorsTotal *prometheus.CounterVec

	// RenderDuration tracks how long building and rendering a palette takes.
	RenderDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "devpalette_renders_total",
			Help: "Total rendered palettes by method and format",
		}, []string{"method", "format"}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "devpalette_render_errors_total",
			Help: "Total render errors by kind",
		}, []string{"kind"}),
		RenderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "devpalette_render_duration_seconds",
			Help:    "Time spent building and rendering a palette",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"format"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
