package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the response cache.
type Metrics struct {
	// Lookups by family and result: "hit", "stale", "miss"
	Lookups *prometheus.CounterVec

	// Upstream loads by family and outcome: "ok", "error"
	Loads *prometheus.CounterVec
}

// New registers the cache metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the cache metrics on reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_cache_lookups_total",
			Help: "Cache lookups by resource family and result",
		}, []string{"family", "result"}),

		Loads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_cache_upstream_loads_total",
			Help: "Upstream loads triggered by the cache by family and outcome",
		}, []string{"family", "outcome"}),
	}
}

// IncrementLookup records a cache lookup result.
func (m *Metrics) IncrementLookup(family, result string) {
	if m != nil {
		m.Lookups.WithLabelValues(family, result).Inc()
	}
}

// IncrementLoad records an upstream load outcome.
func (m *Metrics) IncrementLoad(family, outcome string) {
	if m != nil {
		m.Loads.WithLabelValues(family, outcome).Inc()
	}
}
