package kraitchik

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for the runs counter.
const (
	outcomeFactored = "factored"
	outcomeNoFactor = "no_factor"
	outcomeError    = "error"
)

// Metrics collects Prometheus statistics about factorization runs.
// A nil *Metrics records nothing.
type Metrics struct {
	runs            *prometheus.CounterVec
	relations       prometheus.Counter
	discarded       prometheus.Counter
	badSubsets      prometheus.Counter
	relationsPerRun prometheus.Histogram
	collectors      []prometheus.Collector
}

// NewMetrics creates the collectors under the given namespace and registers
// them with reg. If reg is nil they are created but not registered; the
// returned Metrics is itself a prometheus.Collector and can be registered
// later.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kraitchik",
			Name:      "runs_total",
			Help:      "Factorization runs by outcome",
		}, []string{"outcome"}),
		relations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kraitchik",
			Name:      "relations_total",
			Help:      "Relations added to the subset search",
		}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kraitchik",
			Name:      "discarded_relations_total",
			Help:      "Relations dropped for not being smooth",
		}),
		badSubsets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kraitchik",
			Name:      "bad_subsets_total",
			Help:      "Square subsets that gave a trivial congruence",
		}),
		relationsPerRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "kraitchik",
			Name:      "relations_per_factorization",
			Help:      "Relations needed by successful runs",
			Buckets:   []float64{1, 2, 4, 8, 12, 16, 20, 24, 32, 48, 62},
		}),
	}
	m.collectors = []prometheus.Collector{m.runs, m.relations, m.discarded, m.badSubsets, m.relationsPerRun}
	if reg == nil {
		return m, nil
	}
	for _, c := range m.collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}
	return m, nil
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range m.collectors {
		c.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	for _, c := range m.collectors {
		c.Collect(ch)
	}
}

func (m *Metrics) relationAdded() {
	if m != nil {
		m.relations.Inc()
	}
}

func (m *Metrics) relationDiscarded() {
	if m != nil {
		m.discarded.Inc()
	}
}

func (m *Metrics) badSubset() {
	if m != nil {
		m.badSubsets.Inc()
	}
}

func (m *Metrics) finished(err error, relations int) {
	if m == nil {
		return
	}
	switch {
	case err == nil:
		m.runs.WithLabelValues(outcomeFactored).Inc()
		m.relationsPerRun.Observe(float64(relations))
	case errors.Is(err, ErrNoFactor):
		m.runs.WithLabelValues(outcomeNoFactor).Inc()
	default:
		m.runs.WithLabelValues(outcomeError).Inc()
	}
}
