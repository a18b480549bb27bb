package logger

import (
	"github.com/philipp01105/logify/core"
	"github.com/philipp01105/logify/formatter"
)

// DefaultLogDirName is the directory, relative to the project root, that
// file output goes to unless configured otherwise.
const DefaultLogDirName = "debug_logs"

// Options is a logger's configuration. It is a plain value: the With
// methods return modified copies and never touch the receiver.
type Options struct {
	// Level is the minimum level that is emitted
	Level core.Level
	// Context labels the subsystem emitting messages; empty means none
	Context string
	// ContextPrefix is shown before the context as "<prefix: context>"
	ContextPrefix string
	// ShowLevel adds the "[LEVEL]" bracket to each line
	ShowLevel bool
	// ShowContext adds the context to each line
	ShowContext bool
	// ShowTime adds the "[date time]" stamp to each line
	ShowTime bool
	// LogDirName is the log directory's name under the project root
	LogDirName string
}

// DefaultOptions returns info level with every segment shown and the
// default log directory.
func DefaultOptions() Options {
	return Options{
		Level:       core.InfoLevel,
		ShowLevel:   true,
		ShowContext: true,
		ShowTime:    true,
		LogDirName:  DefaultLogDirName,
	}
}

// WithLevel returns a copy with Level replaced
func (o Options) WithLevel(level core.Level) Options {
	o.Level = level
	return o
}

// WithContext returns a copy with Context replaced
func (o Options) WithContext(ctx string) Options {
	o.Context = ctx
	return o
}

// WithContextPrefix returns a copy with ContextPrefix replaced
func (o Options) WithContextPrefix(prefix string) Options {
	o.ContextPrefix = prefix
	return o
}

// WithShowLevel returns a copy with ShowLevel replaced
func (o Options) WithShowLevel(show bool) Options {
	o.ShowLevel = show
	return o
}

// WithShowContext returns a copy with ShowContext replaced
func (o Options) WithShowContext(show bool) Options {
	o.ShowContext = show
	return o
}

// WithShowTime returns a copy with ShowTime replaced
func (o Options) WithShowTime(show bool) Options {
	o.ShowTime = show
	return o
}

// WithLogDirName returns a copy with LogDirName replaced
func (o Options) WithLogDirName(name string) Options {
	o.LogDirName = name
	return o
}

func (o Options) display() formatter.Config {
	return formatter.Config{
		ShowTime:    o.ShowTime,
		ShowContext: o.ShowContext,
		ShowLevel:   o.ShowLevel,
	}
}
