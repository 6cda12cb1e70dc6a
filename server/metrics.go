package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the prometheus collectors updated by a Server.
type Metrics struct {
	ticks        prometheus.Counter
	inputs       prometheus.Counter
	corrections  prometheus.Counter
	rejected     prometheus.Counter
	flags        *prometheus.CounterVec
	players      prometheus.Gauge
	tickDuration prometheus.Histogram
}

// NewMetrics creates the server collectors and registers them with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "strafe",
			Name:      "ticks_total",
			Help:      "Number of server ticks processed.",
		}),
		inputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "strafe",
			Name:      "inputs_total",
			Help:      "Number of input frames simulated.",
		}),
		corrections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "strafe",
			Name:      "corrections_total",
			Help:      "Number of corrections sent to clients.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "strafe",
			Name:      "inputs_rejected_total",
			Help:      "Number of input frames rejected as invalid.",
		}),
		flags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "strafe",
			Name:      "detection_flags_total",
			Help:      "Number of detection flags, by detection.",
		}, []string{"detection"}),
		players: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "strafe",
			Name:      "players",
			Help:      "Number of players currently simulated.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "strafe",
			Name:      "tick_duration_seconds",
			Help:      "Time spent simulating every player for one tick.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ticks, m.inputs, m.corrections, m.rejected, m.flags, m.players, m.tickDuration)
	}
	return m
}
