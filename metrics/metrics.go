// Package metrics counts what loggers write and how error dispatch ends.
//
// Loggers and registries report to a Recorder. The default Recorder does
// nothing; NewPrometheus returns one backed by Prometheus counters.
package metrics

import (
	"github.com/philipp01105/logify/core"
)

// Sink names used as label values
const (
	SinkConsole = "console"
	SinkFile    = "file"
)

// Dispatch outcomes used as label values
const (
	OutcomeHandled       = "handled"
	OutcomeNoHandler     = "no_handler"
	OutcomeHandlerFailed = "handler_failed"
	OutcomeKindMismatch  = "kind_mismatch"
)

// Recorder receives logging and dispatch events
type Recorder interface {
	// LineWritten counts a line accepted by a sink
	LineWritten(sink string, level core.Level)
	// WriteFailed counts a line a sink could not write
	WriteFailed(sink string, level core.Level)
	// Dispatched counts one log-and-handle call for an error kind
	Dispatched(kind, outcome string)
}

// Nop returns a Recorder that discards every event
func Nop() Recorder {
	return nopRecorder{}
}

type nopRecorder struct{}

func (nopRecorder) LineWritten(string, core.Level) {}

func (nopRecorder) WriteFailed(string, core.Level) {}

func (nopRecorder) Dispatched(string, string) {}
