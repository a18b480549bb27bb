package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/philipp01105/logify/core"
)

func TestNop(t *testing.T) {
	r := Nop()

	// Should not panic
	r.LineWritten(SinkConsole, core.InfoLevel)
	r.WriteFailed(SinkFile, core.ErrorLevel)
	r.Dispatched("ValidationError", OutcomeHandled)
}

func TestPrometheus_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg)

	p.LineWritten(SinkConsole, core.InfoLevel)
	p.LineWritten(SinkConsole, core.InfoLevel)
	p.LineWritten(SinkFile, core.ErrorLevel)
	p.WriteFailed(SinkFile, core.WarnLevel)
	p.Dispatched("ParseError", OutcomeHandlerFailed)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.LinesWritten.WithLabelValues(SinkConsole, "info")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.LinesWritten.WithLabelValues(SinkFile, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.WriteErrors.WithLabelValues(SinkFile, "warn")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.Dispatches.WithLabelValues("ParseError", OutcomeHandlerFailed)))

	count, err := testutil.GatherAndCount(reg, "logify_lines_written_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPrometheus_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus(reg)

	assert.Panics(t, func() { NewPrometheus(reg) })
}
