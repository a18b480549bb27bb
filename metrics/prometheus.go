package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/philipp01105/logify/core"
)

const namespace = "logify"

// Prometheus is a Recorder backed by Prometheus counters
type Prometheus struct {
	LinesWritten *prometheus.CounterVec
	WriteErrors  *prometheus.CounterVec
	Dispatches   *prometheus.CounterVec
}

// NewPrometheus registers the logify counters with reg. A nil reg means
// prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Prometheus{
		LinesWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_written_total",
			Help:      "Log lines written, by sink and level",
		}, []string{"sink", "level"}),
		WriteErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "write_errors_total",
			Help:      "Log lines that could not be written, by sink and level",
		}, []string{"sink", "level"}),
		Dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "error_dispatches_total",
			Help:      "Error registry log-and-handle calls, by error kind and outcome",
		}, []string{"kind", "outcome"}),
	}
}

// LineWritten implements Recorder
func (p *Prometheus) LineWritten(sink string, level core.Level) {
	p.LinesWritten.WithLabelValues(sink, level.Name()).Inc()
}

// WriteFailed implements Recorder
func (p *Prometheus) WriteFailed(sink string, level core.Level) {
	p.WriteErrors.WithLabelValues(sink, level.Name()).Inc()
}

// Dispatched implements Recorder
func (p *Prometheus) Dispatched(kind, outcome string) {
	p.Dispatches.WithLabelValues(kind, outcome).Inc()
}
