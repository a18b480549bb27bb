package handler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logify/core"
	"github.com/philipp01105/logify/formatter"
)

var fixedTime = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newEntry(level core.Level, msg string) *core.Entry {
	entry := core.GetEntry()
	entry.Time = fixedTime
	entry.Level = level
	entry.Message = msg
	return entry
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestConsoleHandler_WritesLine(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Output:  NewOutput(&buf),
		Display: formatter.DefaultConfig(),
	})
	defer h.Close()

	entry := newEntry(core.InfoLevel, "test message")
	entry.Context = "api"
	require.NoError(t, h.Handle(entry))
	core.PutEntry(entry)

	assert.Equal(t, "[2026-10-18 09:30:00] <api> [INFO] test message\n", buf.String())
	assert.Equal(t, uint64(1), h.Stats().Processed[core.InfoLevel])
}

func TestConsoleHandler_AutoColorOffForBuffers(t *testing.T) {
	out := NewOutput(&bytes.Buffer{})
	assert.False(t, out.IsTerminal())
	assert.False(t, ColorAuto.enabled(out))
	assert.True(t, ColorAlways.enabled(out))
	assert.False(t, ColorNever.enabled(out))
}

func TestConsoleHandler_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Output:  NewOutput(&buf),
		Display: formatter.Config{ShowLevel: true},
		Color:   ColorAlways,
	})

	require.NoError(t, h.Handle(newEntry(core.WarnLevel, "careful")))
	assert.Equal(t, formatter.Colorize(core.WarnLevel, "[WARN] careful")+"\n", buf.String())
}

func TestConsoleHandler_WriteFailure(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Output: NewOutput(failingWriter{})})

	err := h.Handle(newEntry(core.ErrorLevel, "lost"))
	require.Error(t, err)

	snap := h.Stats()
	assert.Equal(t, uint64(1), snap.Failed[core.ErrorLevel])
	assert.Equal(t, uint64(0), snap.ProcessedTotal)
}

func TestConsoleHandler_SharedStats(t *testing.T) {
	stats := NewStats()
	out := NewOutput(&bytes.Buffer{})
	a := NewConsoleHandler(ConsoleConfig{Output: out, Stats: stats})
	b := NewConsoleHandler(ConsoleConfig{Output: out, Stats: stats})

	require.NoError(t, a.Handle(newEntry(core.DebugLevel, "one")))
	require.NoError(t, b.Handle(newEntry(core.DebugLevel, "two")))

	assert.Equal(t, uint64(2), stats.GetProcessed(core.DebugLevel))
}

func TestFileHandler_RequiresDir(t *testing.T) {
	_, err := NewFileHandler(FileConfig{})
	assert.ErrorIs(t, err, ErrNoDirectory)
}

func TestFileHandler_PerLevelDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "debug_logs")
	h, err := NewFileHandler(FileConfig{Dir: dir, Display: formatter.DefaultConfig()})
	require.NoError(t, err)
	defer h.Close()

	require.NoError(t, h.Handle(newEntry(core.WarnLevel, "first")))
	require.NoError(t, h.Handle(newEntry(core.WarnLevel, "second")))
	require.NoError(t, h.Handle(newEntry(core.ErrorLevel, "other level")))

	warnPath := filepath.Join(dir, "warn", "20261018.log")
	assert.Equal(t, warnPath, h.Path(core.WarnLevel, fixedTime))

	data, err := os.ReadFile(warnPath)
	require.NoError(t, err)
	assert.Equal(t,
		"[2026-10-18 09:30:00] [WARN] first\n[2026-10-18 09:30:00] [WARN] second\n",
		string(data))

	data, err = os.ReadFile(filepath.Join(dir, "error", "20261018.log"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))

	assert.Equal(t, uint64(3), h.Stats().ProcessedTotal)
}

func TestFileHandler_NewDayNewFile(t *testing.T) {
	dir := t.TempDir()
	h, err := NewFileHandler(FileConfig{Dir: dir})
	require.NoError(t, err)

	first := newEntry(core.InfoLevel, "today")
	second := newEntry(core.InfoLevel, "tomorrow")
	second.Time = fixedTime.Add(24 * time.Hour)

	require.NoError(t, h.Handle(first))
	require.NoError(t, h.Handle(second))

	_, err = os.Stat(filepath.Join(dir, "info", "20261018.log"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "info", "20261019.log"))
	assert.NoError(t, err)
}

func TestFileHandler_WriteFailurePropagates(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "logs")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	h, err := NewFileHandler(FileConfig{Dir: blocker})
	require.NoError(t, err)

	err = h.Handle(newEntry(core.ErrorLevel, "nowhere to go"))
	require.Error(t, err)
	assert.Equal(t, uint64(1), h.Stats().Failed[core.ErrorLevel])
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()
	s.IncrementProcessed(core.InfoLevel)
	s.IncrementFailed(core.ErrorLevel)
	s.IncrementProcessed(core.Level(99))

	snap := s.GetSnapshot()
	assert.Equal(t, uint64(1), snap.ProcessedTotal)
	assert.Equal(t, uint64(1), snap.FailedTotal)

	s.Reset()
	snap = s.GetSnapshot()
	assert.Zero(t, snap.ProcessedTotal)
	assert.Zero(t, snap.FailedTotal)
}

func TestColorMode_String(t *testing.T) {
	assert.Equal(t, "auto", ColorAuto.String())
	assert.Equal(t, "always", ColorAlways.String())
	assert.Equal(t, "never", ColorNever.String())
}

func TestFileHandler_SyncAfterAppend(t *testing.T) {
	dir := t.TempDir()
	h, err := NewFileHandler(FileConfig{Dir: dir, Sync: true})
	require.NoError(t, err)

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "durable")))
	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "again")))

	data, err := os.ReadFile(h.Path(core.InfoLevel, fixedTime))
	require.NoError(t, err)
	assert.Equal(t, "durable\nagain\n", string(data))
	assert.Equal(t, uint64(2), h.Stats().Processed[core.InfoLevel])
}
