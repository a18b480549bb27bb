package handler

import (
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Output is a console destination. It serialises writes so that every
// handler sharing it emits whole lines.
type Output struct {
	ws       zapcore.WriteSyncer
	terminal bool
	syncable bool
}

// NewOutput wraps w for use by console handlers. A nil writer means stdout.
func NewOutput(w io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}

	o := &Output{
		ws:       zapcore.Lock(zapcore.AddSync(w)),
		syncable: true,
	}

	if f, ok := w.(*os.File); ok {
		o.terminal = term.IsTerminal(int(f.Fd()))
		// fsync is only meaningful for regular files; on pipes and
		// terminals it fails with EINVAL.
		if info, err := f.Stat(); err != nil || !info.Mode().IsRegular() {
			o.syncable = false
		}
	}

	return o
}

// Write implements io.Writer
func (o *Output) Write(p []byte) (int, error) {
	return o.ws.Write(p)
}

// Sync flushes the underlying writer when it supports it
func (o *Output) Sync() error {
	if !o.syncable {
		return nil
	}
	return o.ws.Sync()
}

// IsTerminal reports whether the output is attached to a terminal
func (o *Output) IsTerminal() bool {
	return o.terminal
}

// ColorMode selects when console lines are coloured
type ColorMode int

const (
	// ColorAuto colours output only when it is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways colours output regardless of destination
	ColorAlways
	// ColorNever writes plain lines
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// enabled reports whether lines written to o should be coloured
func (m ColorMode) enabled(o *Output) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return o.IsTerminal()
	}
}
