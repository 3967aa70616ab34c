package unresolver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the collectors the companion server exposes. A nil
// *Metrics is valid and records nothing, so library callers and tests do
// not have to touch the default registry.
type Metrics struct {
	probeDurations  *prometheus.SummaryVec
	probeCounter    *prometheus.CounterVec
	cacheHitCounter prometheus.Counter
	documentCounter prometheus.Counter
	brokenCounter   prometheus.Counter
}

func setupMetrics() *Metrics {
	const labelReachable = "reachable"

	m := &Metrics{
		probeDurations: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "unresolver_probe_durations_seconds",
				Help:       "external probe duration including body drain",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{labelReachable},
		),
		probeCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unresolver_probes_total",
				Help: "number of external probes issued",
			},
			[]string{labelReachable},
		),
		cacheHitCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unresolver_cache_hits_total",
			Help: "external cache lookups answered without a probe",
		}),
		documentCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unresolver_documents_scanned_total",
			Help: "documents scanned since start",
		}),
		brokenCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unresolver_broken_references_total",
			Help: "broken references found since start",
		}),
	}

	prometheus.MustRegister(
		m.probeDurations,
		m.probeCounter,
		m.cacheHitCounter,
		m.documentCounter,
		m.brokenCounter,
	)
	return m
}

func reachableLabel(reachable bool) string {
	if reachable {
		return "true"
	}
	return "false"
}

func (m *Metrics) ObserveProbe(d time.Duration, reachable bool) {
	if m == nil {
		return
	}
	m.probeDurations.WithLabelValues(reachableLabel(reachable)).Observe(d.Seconds())
	m.probeCounter.WithLabelValues(reachableLabel(reachable)).Inc()
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHitCounter.Inc()
}

func (m *Metrics) ObserveRun(documents, broken int) {
	if m == nil {
		return
	}
	m.documentCounter.Add(float64(documents))
	m.brokenCounter.Add(float64(broken))
}
