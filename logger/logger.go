package logger

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/philipp01105/logify/core"
	"github.com/philipp01105/logify/handler"
	"github.com/philipp01105/logify/metrics"
	"github.com/philipp01105/logify/pretty"
)

// sink is the output side shared by a logger and every logger derived
// from it. It is never modified after Build.
type sink struct {
	out          *handler.Output
	color        handler.ColorMode
	root         string
	consoleStats *handler.Stats
	fileStats    *handler.Stats
	now          func() time.Time
	metrics      metrics.Recorder
	fileSync     bool
}

// Logger writes leveled, context-decorated lines to the console and to
// per-level daily files.
//
// Setters change the logger in place and return it for chaining.
// Override methods return a new Logger and leave the receiver untouched.
// A Logger is not safe for concurrent mutation.
type Logger struct {
	opts    Options
	sink    *sink
	console handler.Handler
}

func newLogger(opts Options, s *sink) *Logger {
	l := &Logger{opts: opts, sink: s}
	l.rebuild()
	return l
}

// rebuild recreates the console handler after the options changed
func (l *Logger) rebuild() {
	l.console = handler.NewConsoleHandler(handler.ConsoleConfig{
		Output:  l.sink.out,
		Display: l.opts.display(),
		Color:   l.sink.color,
		Stats:   l.sink.consoleStats,
	})
}

// Options returns a copy of the current configuration
func (l *Logger) Options() Options {
	return l.opts
}

// Level returns the minimum level
func (l *Logger) Level() core.Level {
	return l.opts.Level
}

// Context returns the context label
func (l *Logger) Context() string {
	return l.opts.Context
}

// Root returns the resolved project root
func (l *Logger) Root() string {
	return l.sink.root
}

// LogDir returns the directory file output is written under
func (l *Logger) LogDir() string {
	return filepath.Join(l.sink.root, l.opts.LogDirName)
}

// Enabled reports whether a message at level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.opts.Level
}

// SetLevel sets the minimum level
func (l *Logger) SetLevel(level core.Level) *Logger {
	l.opts = l.opts.WithLevel(level)
	return l
}

// SetContext sets the context label
func (l *Logger) SetContext(ctx string) *Logger {
	l.opts = l.opts.WithContext(ctx)
	return l
}

// SetContextPrefix sets the context prefix
func (l *Logger) SetContextPrefix(prefix string) *Logger {
	l.opts = l.opts.WithContextPrefix(prefix)
	return l
}

// ToggleLevel shows or hides the level bracket
func (l *Logger) ToggleLevel() *Logger {
	l.opts = l.opts.WithShowLevel(!l.opts.ShowLevel)
	l.rebuild()
	return l
}

// ToggleContext shows or hides the context
func (l *Logger) ToggleContext() *Logger {
	l.opts = l.opts.WithShowContext(!l.opts.ShowContext)
	l.rebuild()
	return l
}

// ToggleTime shows or hides the timestamp
func (l *Logger) ToggleTime() *Logger {
	l.opts = l.opts.WithShowTime(!l.opts.ShowTime)
	l.rebuild()
	return l
}

// derive creates an independent logger with opts on the same sink
func (l *Logger) derive(opts Options) *Logger {
	return newLogger(opts, l.sink)
}

// OverrideLevel returns a new Logger that differs only in its level
func (l *Logger) OverrideLevel(level core.Level) *Logger {
	return l.derive(l.opts.WithLevel(level))
}

// OverrideContext returns a new Logger that differs only in its context
func (l *Logger) OverrideContext(ctx string) *Logger {
	return l.derive(l.opts.WithContext(ctx))
}

// OverrideContextPrefix returns a new Logger that differs only in its
// context prefix
func (l *Logger) OverrideContextPrefix(prefix string) *Logger {
	return l.derive(l.opts.WithContextPrefix(prefix))
}

// newEntry stamps a pooled entry with the logger's context
func (l *Logger) newEntry(level core.Level, msg string, args []any) *core.Entry {
	entry := core.GetEntry()
	entry.Time = l.sink.now()
	entry.Level = level
	entry.Message = msg
	entry.Context = l.opts.Context
	entry.ContextPrefix = l.opts.ContextPrefix
	if len(args) > 0 {
		entry.Args = append(entry.Args, args...)
	}
	return entry
}

// Log writes a console line at level. Messages below the minimum level
// are dropped without any side effect.
func (l *Logger) Log(level core.Level, msg string, args ...any) {
	// Level check before any allocation
	if level < l.opts.Level {
		return
	}
	l.log(level, msg, args)
}

// log is the internal console path that takes a pre-allocated slice
func (l *Logger) log(level core.Level, msg string, args []any) {
	entry := l.newEntry(level, msg, args)
	err := l.console.Handle(entry)
	core.PutEntry(entry)

	if err != nil {
		l.sink.metrics.WriteFailed(metrics.SinkConsole, level)
		return
	}
	l.sink.metrics.LineWritten(metrics.SinkConsole, level)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	if core.DebugLevel < l.opts.Level {
		return
	}
	l.log(core.DebugLevel, msg, args)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	if core.InfoLevel < l.opts.Level {
		return
	}
	l.log(core.InfoLevel, msg, args)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	if core.WarnLevel < l.opts.Level {
		return
	}
	l.log(core.WarnLevel, msg, args)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	if core.ErrorLevel < l.opts.Level {
		return
	}
	l.log(core.ErrorLevel, msg, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.opts.Level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.opts.Level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.opts.Level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.opts.Level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// LogToFile appends a line at level to
// <root>/<LogDirName>/<level>/<YYYYMMDD>.log. Filtered messages return
// nil; write failures return an *IOError.
func (l *Logger) LogToFile(level core.Level, msg string, args ...any) error {
	if level < l.opts.Level {
		return nil
	}

	h, err := handler.NewFileHandler(handler.FileConfig{
		Dir:     l.LogDir(),
		Display: l.opts.display(),
		Sync:    l.sink.fileSync,
		Stats:   l.sink.fileStats,
	})
	if err != nil {
		return &IOError{Path: l.LogDir(), Err: err}
	}

	entry := l.newEntry(level, msg, args)
	path := h.Path(level, entry.Time)
	err = h.Handle(entry)
	core.PutEntry(entry)

	if err != nil {
		l.sink.metrics.WriteFailed(metrics.SinkFile, level)
		return &IOError{Path: path, Err: err}
	}
	l.sink.metrics.LineWritten(metrics.SinkFile, level)
	return nil
}

// DebugToFile appends a debug line to the debug log file
func (l *Logger) DebugToFile(msg string, args ...any) error {
	return l.LogToFile(core.DebugLevel, msg, args...)
}

// InfoToFile appends an info line to the info log file
func (l *Logger) InfoToFile(msg string, args ...any) error {
	return l.LogToFile(core.InfoLevel, msg, args...)
}

// WarnToFile appends a warning line to the warn log file
func (l *Logger) WarnToFile(msg string, args ...any) error {
	return l.LogToFile(core.WarnLevel, msg, args...)
}

// ErrorToFile appends an error line to the error log file
func (l *Logger) ErrorToFile(msg string, args ...any) error {
	return l.LogToFile(core.ErrorLevel, msg, args...)
}

// LogOptions writes the current options to the console at debug level,
// whatever the logger's own minimum level is.
func (l *Logger) LogOptions() {
	l.OverrideLevel(core.DebugLevel).Debug("Logger options: " + pretty.Format(l.opts))
}

// Stats is a snapshot of the counters of both sinks
type Stats struct {
	Console handler.Snapshot
	File    handler.Snapshot
}

// Stats returns the counters shared by this logger and its derivatives
func (l *Logger) Stats() Stats {
	return Stats{
		Console: l.sink.consoleStats.GetSnapshot(),
		File:    l.sink.fileStats.GetSnapshot(),
	}
}

// Sync flushes the console output
func (l *Logger) Sync() error {
	return l.console.Close()
}

// Close flushes the console output. Handlers hold no open files between
// calls, so the logger stays usable afterwards.
func (l *Logger) Close() error {
	return l.Sync()
}

// Metrics returns the recorder shared by this logger and its derivatives
func (l *Logger) Metrics() metrics.Recorder {
	return l.sink.metrics
}
