package handler

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logify/core"
	"github.com/philipp01105/logify/formatter"
	"github.com/philipp01105/logify/pathutil"
	"github.com/philipp01105/logify/timefmt"
)

// ErrNoDirectory is returned by NewFileHandler when FileConfig.Dir is empty
var ErrNoDirectory = errors.New("file handler: directory is required")

// FileHandler appends log entries to per-level daily files
type FileHandler struct {
	dir       string
	formatter formatter.Formatter
	fileMode  os.FileMode
	sync      bool
	stats     *Stats
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Dir is the log directory; entries go to Dir/<level>/<YYYYMMDD>.log
	Dir string
	// Display selects the line segments (ignored when Formatter is set)
	Display formatter.Config
	// Formatter overrides the plain text formatter derived from Display
	Formatter formatter.Formatter
	// FileMode is used when a log file is created (default: 0644)
	FileMode os.FileMode
	// Sync flushes every appended line to stable storage before the
	// file is closed
	Sync bool
	// Stats receives the handler's counters (default: private instance)
	Stats *Stats
}

// NewFileHandler creates a new file handler. No file is opened until the
// first entry arrives.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Dir == "" {
		return nil, ErrNoDirectory
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(cfg.Display)
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0644
	}
	if cfg.Stats == nil {
		cfg.Stats = NewStats()
	}

	return &FileHandler{
		dir:       cfg.Dir,
		formatter: cfg.Formatter,
		fileMode:  cfg.FileMode,
		sync:      cfg.Sync,
		stats:     cfg.Stats,
	}, nil
}

// Dir returns the handler's log directory
func (h *FileHandler) Dir() string {
	return h.dir
}

// Path returns the file an entry at level and time t is appended to
func (h *FileHandler) Path(level core.Level, t time.Time) string {
	return filepath.Join(h.dir, level.Name(), timefmt.FileDate(t)+".log")
}

// Handle appends the formatted entry to its daily file
func (h *FileHandler) Handle(entry *core.Entry) error {
	err := h.write(entry)
	if err != nil {
		h.stats.IncrementFailed(entry.Level)
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// write opens the target file in append mode, writes one line and closes
// it again, so that a new day's file is picked up without any state.
func (h *FileHandler) write(entry *core.Entry) (err error) {
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	path := h.Path(entry.Level, entry.Time)
	if err := pathutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, h.fileMode)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	ws := zapcore.AddSync(file)
	if _, err = ws.Write(data); err != nil {
		return err
	}
	if h.sync {
		err = ws.Sync()
	}
	return err
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; files are closed after every write
func (h *FileHandler) Close() error {
	return nil
}
