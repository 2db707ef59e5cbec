package ui

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Renders      *prometheus.CounterVec
	RenderErrors *prometheus.CounterVec
}

// NewMetrics registers the render counters on reg, or on a private registry when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		Renders: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "comms_dashboard_renders_total",
			Help: "Total number of rendered view fragments.",
		}, []string{"view"}),

		RenderErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "comms_dashboard_render_errors_total",
			Help: "Total number of failed view renders.",
		}, []string{"view"}),
	}
}
