package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/logify/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into a newline-terminated line
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds the display toggles shared by all formatters
type Config struct {
	// ShowTime prefixes the line with "[<date> <time>]"
	ShowTime bool
	// ShowContext adds "<prefix: context>" when the entry has a context
	ShowContext bool
	// ShowLevel adds the "[LEVEL]" bracket
	ShowLevel bool
}

// DefaultConfig enables every segment
func DefaultConfig() Config {
	return Config{ShowTime: true, ShowContext: true, ShowLevel: true}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
