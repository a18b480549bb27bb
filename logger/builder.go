package logger

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/philipp01105/logify/core"
	"github.com/philipp01105/logify/handler"
	"github.com/philipp01105/logify/metrics"
	"github.com/philipp01105/logify/pathutil"
)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	opts     Options
	writer   io.Writer
	color    handler.ColorMode
	rootDir  string
	startDir string
	marker   string
	now      func() time.Time
	metrics  metrics.Recorder
	fileSync bool
}

// NewBuilder creates a new logger builder with DefaultOptions
func NewBuilder() *Builder {
	return &Builder{
		opts:   DefaultOptions(),
		marker: pathutil.DefaultMarker,
	}
}

// Clone returns an independent copy of the builder
func (b *Builder) Clone() *Builder {
	c := *b
	return &c
}

// WithOptions replaces every logger option at once
func (b *Builder) WithOptions(opts Options) *Builder {
	b.opts = opts
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.opts = b.opts.WithLevel(level)
	return b
}

// WithContext sets the context label
func (b *Builder) WithContext(ctx string) *Builder {
	b.opts = b.opts.WithContext(ctx)
	return b
}

// WithContextPrefix sets the context prefix
func (b *Builder) WithContextPrefix(prefix string) *Builder {
	b.opts = b.opts.WithContextPrefix(prefix)
	return b
}

// WithShowLevel shows or hides the level bracket
func (b *Builder) WithShowLevel(show bool) *Builder {
	b.opts = b.opts.WithShowLevel(show)
	return b
}

// WithShowContext shows or hides the context
func (b *Builder) WithShowContext(show bool) *Builder {
	b.opts = b.opts.WithShowContext(show)
	return b
}

// WithShowTime shows or hides the timestamp
func (b *Builder) WithShowTime(show bool) *Builder {
	b.opts = b.opts.WithShowTime(show)
	return b
}

// WithLogDirName sets the log directory name under the project root
func (b *Builder) WithLogDirName(name string) *Builder {
	b.opts = b.opts.WithLogDirName(name)
	return b
}

// WithWriter sets the console destination (default: os.Stdout)
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithColor selects when console lines are coloured (default: ColorAuto)
func (b *Builder) WithColor(mode handler.ColorMode) *Builder {
	b.color = mode
	return b
}

// WithRootDir uses dir as the project root and skips root discovery
func (b *Builder) WithRootDir(dir string) *Builder {
	b.rootDir = dir
	return b
}

// WithStartDir sets where root discovery starts (default: working directory)
func (b *Builder) WithStartDir(dir string) *Builder {
	b.startDir = dir
	return b
}

// WithRootMarker sets the file that marks the project root (default: go.mod)
func (b *Builder) WithRootMarker(marker string) *Builder {
	b.marker = marker
	return b
}

// WithFileSync flushes every file line to stable storage before
// LogToFile returns (default: false)
func (b *Builder) WithFileSync(sync bool) *Builder {
	b.fileSync = sync
	return b
}

// WithClock sets the time source used to stamp entries
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WithMetrics sets the recorder that counts written lines
func (b *Builder) WithMetrics(r metrics.Recorder) *Builder {
	b.metrics = r
	return b
}

// Build creates the Logger instance. It fails with a *ConfigurationError
// when the level is invalid or the project root cannot be resolved.
func (b *Builder) Build() (*Logger, error) {
	opts := b.opts
	if !opts.Level.Valid() {
		return nil, &ConfigurationError{Op: "validate level", Err: fmt.Errorf("invalid level %d", opts.Level)}
	}
	if opts.LogDirName == "" {
		opts.LogDirName = DefaultLogDirName
	}

	root, err := b.resolveRoot()
	if err != nil {
		return nil, &ConfigurationError{Op: "find project root", Err: err}
	}

	s := &sink{
		out:          handler.NewOutput(b.writer),
		color:        b.color,
		root:         root,
		consoleStats: handler.NewStats(),
		fileStats:    handler.NewStats(),
		now:          b.now,
		metrics:      b.metrics,
		fileSync:     b.fileSync,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.metrics == nil {
		s.metrics = metrics.Nop()
	}

	return newLogger(opts, s), nil
}

func (b *Builder) resolveRoot() (string, error) {
	if b.rootDir != "" {
		return filepath.Abs(b.rootDir)
	}
	return pathutil.FindProjectRoot(b.startDir, b.marker)
}

// New creates a Logger from opts with the default console, root discovery
// and clock.
func New(opts Options) (*Logger, error) {
	return NewBuilder().WithOptions(opts).Build()
}
