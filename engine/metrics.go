package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics is a pure side-channel: the Round Engine reports through it but
// never reads anything back, so no metrics implementation can influence
// simulation outcomes (spec.md §9 "Determinism").
type Metrics interface {
	RobotsAlive(team string, count int)
	RoundsProcessed(count int)
	SignalsEmitted(count int)
}

// noopMetrics discards everything; it is the default when an Engine is
// built without an explicit Metrics.
type noopMetrics struct{}

func (noopMetrics) RobotsAlive(string, int) {}
func (noopMetrics) RoundsProcessed(int)     {}
func (noopMetrics) SignalsEmitted(int)      {}

// PrometheusMetrics registers a handful of gauges/counters against reg and
// implements Metrics over them.
type PrometheusMetrics struct {
	robotsAlive     *prometheus.GaugeVec
	roundsProcessed prometheus.Counter
	signalsEmitted  prometheus.Counter
}

// NewPrometheusMetrics registers its collectors with reg. Pass
// prometheus.DefaultRegisterer to use the global registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		robotsAlive: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "battlecore",
			Name:      "robots_alive",
			Help:      "Number of live robots per team.",
		}, []string{"team"}),
		roundsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "battlecore",
			Name:      "rounds_processed_total",
			Help:      "Number of rounds the engine has completed.",
		}),
		signalsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "battlecore",
			Name:      "signals_emitted_total",
			Help:      "Number of events appended to the round event log.",
		}),
	}
	reg.MustRegister(m.robotsAlive, m.roundsProcessed, m.signalsEmitted)
	return m
}

func (m *PrometheusMetrics) RobotsAlive(team string, count int) {
	m.robotsAlive.WithLabelValues(team).Set(float64(count))
}

func (m *PrometheusMetrics) RoundsProcessed(count int) {
	m.roundsProcessed.Add(float64(count))
}

func (m *PrometheusMetrics) SignalsEmitted(count int) {
	m.signalsEmitted.Add(float64(count))
}
