package handler

import (
	"sync/atomic"

	"github.com/philipp01105/logify/core"
)

// Stats tracks handler statistics
type Stats struct {
	processed [len(core.Levels)]atomic.Uint64
	failed    [len(core.Levels)]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically counts a successfully written entry
func (s *Stats) IncrementProcessed(level core.Level) {
	if level.Valid() {
		s.processed[level].Add(1)
	}
}

// IncrementFailed atomically counts an entry whose write failed
func (s *Stats) IncrementFailed(level core.Level) {
	if level.Valid() {
		s.failed[level].Add(1)
	}
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.processed[level].Load()
}

// GetFailed returns the failed count for a level
func (s *Stats) GetFailed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.failed[level].Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
		s.failed[i].Store(0)
	}
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	Failed         map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: make(map[core.Level]uint64, len(core.Levels)),
		Failed:    make(map[core.Level]uint64, len(core.Levels)),
	}
	for _, level := range core.Levels {
		p, f := s.GetProcessed(level), s.GetFailed(level)
		snap.Processed[level] = p
		snap.Failed[level] = f
		snap.ProcessedTotal += p
		snap.FailedTotal += f
	}
	return snap
}
