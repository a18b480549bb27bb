package handler

import (
	"github.com/philipp01105/logify/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close flushes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track counters
type StatsProvider interface {
	Stats() Snapshot
}

var (
	_ Handler       = (*ConsoleHandler)(nil)
	_ Handler       = (*FileHandler)(nil)
	_ StatsProvider = (*ConsoleHandler)(nil)
	_ StatsProvider = (*FileHandler)(nil)
)
