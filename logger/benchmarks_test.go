package logger

import (
	"io"
	"testing"

	"github.com/philipp01105/logify/handler"
)

func newBenchLogger(b *testing.B, level Level) *Logger {
	b.Helper()
	l, err := NewBuilder().
		WithRootDir(b.TempDir()).
		WithWriter(io.Discard).
		WithColor(handler.ColorNever).
		WithLevel(level).
		WithContext("Bench").
		Build()
	if err != nil {
		b.Fatal(err)
	}
	return l
}

// BenchmarkInfoNoArgs benchmarks Info() with a discard writer.
func BenchmarkInfoNoArgs(b *testing.B) {
	logger := newBenchLogger(b, InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message")
	}
}

// BenchmarkInfoWith2Args benchmarks Info() with two extra args.
func BenchmarkInfoWith2Args(b *testing.B) {
	logger := newBenchLogger(b, InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message", "value", 42)
	}
}

// BenchmarkFilteredDebug benchmarks the level gate for a dropped message.
// Target: 0 allocs/op
func BenchmarkFilteredDebug(b *testing.B) {
	logger := newBenchLogger(b, InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Debug("test message")
	}
}

// BenchmarkInfoToFile benchmarks the open-append-close file path.
func BenchmarkInfoToFile(b *testing.B) {
	logger := newBenchLogger(b, InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := logger.InfoToFile("test message"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInfoParallel benchmarks concurrent Info() calls sharing one output.
func BenchmarkInfoParallel(b *testing.B) {
	logger := newBenchLogger(b, InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Info("test message")
		}
	})
}
