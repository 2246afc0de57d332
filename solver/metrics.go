// SPDX-License-Identifier: MIT
// Package: siroap/solver
//
// metrics.go - Prometheus instruments for Reference.Solve.

package solver

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "siroap"

// Metrics counts solves and times them. A nil *Metrics records nothing.
type Metrics struct {
	SolvesTotal      *prometheus.CounterVec // label result: ok | error | cancelled
	WavelengthsTotal prometheus.Counter
	SolveDuration    prometheus.Histogram
	TerminalPorts    prometheus.Gauge
}

// NewMetrics creates the instruments and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SolvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "solver",
			Name:      "solves_total",
			Help:      "Solve calls by result.",
		}, []string{"result"}),
		WavelengthsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "solver",
			Name:      "wavelengths_total",
			Help:      "Wavelength points reduced.",
		}),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "solver",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a Solve call.",
			Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 10),
		}),
		TerminalPorts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "solver",
			Name:      "terminal_ports",
			Help:      "Terminal ports of the last solved problem.",
		}),
	}
	reg.MustRegister(m.SolvesTotal, m.WavelengthsTotal, m.SolveDuration, m.TerminalPorts)
	return m
}

func (m *Metrics) observe(result string, points, ports int, seconds float64) {
	if m == nil {
		return
	}
	m.SolvesTotal.WithLabelValues(result).Inc()
	m.WavelengthsTotal.Add(float64(points))
	m.SolveDuration.Observe(seconds)
	m.TerminalPorts.Set(float64(ports))
}
