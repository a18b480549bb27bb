package handler

import (
	"github.com/philipp01105/logify/core"
	"github.com/philipp01105/logify/formatter"
)

// ConsoleHandler writes log entries to a console Output
type ConsoleHandler struct {
	out             *Output
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	stats           *Stats
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Output to write to (default: stdout)
	Output *Output
	// Display selects the line segments (ignored when Formatter is set)
	Display formatter.Config
	// Color selects coloured or plain lines (ignored when Formatter is set)
	Color ColorMode
	// Formatter overrides the formatter derived from Display and Color
	Formatter formatter.Formatter
	// Stats receives the handler's counters (default: private instance)
	Stats *Stats
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Output == nil {
		cfg.Output = NewOutput(nil)
	}
	if cfg.Stats == nil {
		cfg.Stats = NewStats()
	}
	if cfg.Formatter == nil {
		if cfg.Color.enabled(cfg.Output) {
			cfg.Formatter = formatter.NewColorFormatter(cfg.Display)
		} else {
			cfg.Formatter = formatter.NewTextFormatter(cfg.Display)
		}
	}

	h := &ConsoleHandler{
		out:       cfg.Output,
		formatter: cfg.Formatter,
		stats:     cfg.Stats,
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle formats the entry and writes it to the output
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	err := h.write(entry)
	if err != nil {
		h.stats.IncrementFailed(entry.Level)
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// write formats and writes an entry
func (h *ConsoleHandler) write(entry *core.Entry) error {
	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(entry, h.out)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes the output
func (h *ConsoleHandler) Close() error {
	return h.out.Sync()
}
