package observability

import (
	"context"

	"github.com/aretw0/dialsim/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records simulation counters on a private Prometheus registry.
type Metrics struct {
	Registry *prometheus.Registry

	turns        *prometheus.CounterVec
	ticks        *prometheus.CounterVec
	traversals   prometheus.Counter
	landings     prometheus.Counter
	dialPosition prometheus.Gauge
}

// NewMetrics creates and registers the dialsim collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dialsim_turns_total",
				Help: "Total number of turns applied",
			},
			[]string{"direction"},
		),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dialsim_ticks_total",
				Help: "Total number of ticks rotated",
			},
			[]string{"direction"},
		),
		traversals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dialsim_zero_traversals_total",
			Help: "Times the dial passed through or landed on zero",
		}),
		landings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dialsim_zero_landings_total",
			Help: "Turns that left the dial exactly on zero",
		}),
		dialPosition: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dialsim_dial_position",
			Help: "Current dial position",
		}),
	}
	m.dialPosition.Set(domain.StartPosition)
	m.Registry.MustRegister(m.turns, m.ticks, m.traversals, m.landings, m.dialPosition)
	return m
}

// Observe records a single turn.
func (m *Metrics) Observe(e *domain.TurnEvent) {
	dir := e.Turn.Direction.String()
	m.turns.WithLabelValues(dir).Inc()
	m.ticks.WithLabelValues(dir).Add(float64(e.Turn.Ticks))
	m.traversals.Add(float64(e.TraversalsThruZero))
	if e.To == 0 {
		m.landings.Inc()
	}
	m.dialPosition.Set(float64(e.To))
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurn: func(ctx context.Context, e *domain.TurnEvent) {
			m.Observe(e)
		},
	}
}

// WriteFile dumps the registry in the Prometheus text exposition format.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
