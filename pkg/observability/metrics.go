package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/lattice"
)

// Metrics counts graph mutations on a Prometheus registry. One Metrics can
// serve any number of graphs; counters only ever go up, so sharing is safe
// as long as all mutation stays on one goroutine per graph.
type Metrics struct {
	nodesAdded *prometheus.CounterVec
	links      prometheus.Counter
	unlinks    prometheus.Counter
}

// New creates the mutation counters and registers them with reg. Pass
// prometheus.DefaultRegisterer to publish on the process-global registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		nodesAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_nodes_added_total",
				Help: "Total number of nodes added, by node kind",
			},
			[]string{"kind"},
		),
		links: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lattice_links_total",
				Help: "Total number of slot links established",
			},
		),
		unlinks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lattice_unlinks_total",
				Help: "Total number of slot links removed",
			},
		),
	}
	reg.MustRegister(m.nodesAdded, m.links, m.unlinks)
	return m
}

// Hooks returns graph hooks that feed these counters. Pass the result to
// lattice.WithHooks; callers that need their own hooks as well should wrap
// the returned functions.
func (m *Metrics) Hooks() lattice.Hooks {
	return lattice.Hooks{
		OnNodeAdded: func(e *lattice.NodeAddedEvent) {
			m.nodesAdded.WithLabelValues(e.Kind).Inc()
		},
		OnLink: func(*lattice.LinkEvent) {
			m.links.Inc()
		},
		OnUnlink: func(*lattice.LinkEvent) {
			m.unlinks.Inc()
		},
	}
}

// ObserveGraph registers size gauges for a single graph. The gauges read
// the graph at scrape time, so they must not outlive it; use one registry
// per graph when graphs come and go.
func ObserveGraph(reg prometheus.Registerer, g *lattice.Graph) {
	reg.MustRegister(
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "lattice_nodes",
				Help: "Current number of nodes in the graph",
			},
			func() float64 { return float64(g.NodeCount()) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "lattice_slots",
				Help: "Current number of slots in the graph",
			},
			func() float64 { return float64(g.SlotCount()) },
		),
	)
}
