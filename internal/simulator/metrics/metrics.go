package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the simulator module.
type Metrics struct {
	// Simulations by chain status: "ready", "pending", "failed"
	Simulations *prometheus.CounterVec

	// Evaluated transitions by reachability
	Transitions *prometheus.CounterVec

	// Missing requirements by field, e.g. "min_level", "trade"
	MissingRequirements *prometheus.CounterVec

	// Sessions created over HTTP
	SessionsCreated prometheus.Counter

	// Time spent evaluating a chain once it is resident
	SimulateLatency prometheus.Histogram
}

// New registers the simulator metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the simulator metrics on reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Simulations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_simulations_total",
			Help: "Simulation requests by evolution chain status",
		}, []string{"status"}),

		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_simulated_transitions_total",
			Help: "Evaluated transitions by reachability",
		}, []string{"reachable"}),

		MissingRequirements: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_missing_requirements_total",
			Help: "Unmet requirements by requirement field",
		}, []string{"field"}),

		SessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "pokedex_sessions_created_total",
			Help: "Scenario sessions created",
		}),

		SimulateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pokedex_simulate_duration_seconds",
			Help:    "Duration of chain evaluation excluding upstream fetches",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementSimulation records a simulation request outcome.
func (m *Metrics) IncrementSimulation(status string) {
	if m != nil {
		m.Simulations.WithLabelValues(status).Inc()
	}
}

// ObserveTransitions records how many evaluated transitions were reachable.
func (m *Metrics) ObserveTransitions(reachable, unreachable int) {
	if m != nil {
		m.Transitions.WithLabelValues("true").Add(float64(reachable))
		m.Transitions.WithLabelValues("false").Add(float64(unreachable))
	}
}

// ObserveMissing records unmet requirements by field.
func (m *Metrics) ObserveMissing(failures map[string]int) {
	if m != nil {
		for field, n := range failures {
			m.MissingRequirements.WithLabelValues(field).Add(float64(n))
		}
	}
}

// ObserveSimulateLatency records the evaluation duration.
func (m *Metrics) ObserveSimulateLatency(d time.Duration) {
	if m != nil {
		m.SimulateLatency.Observe(d.Seconds())
	}
}

// IncrementSessionsCreated increments the sessions created counter by 1.
func (m *Metrics) IncrementSessionsCreated() {
	if m != nil {
		m.SessionsCreated.Inc()
	}
}
