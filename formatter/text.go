package formatter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/philipp01105/logify/core"
	"github.com/philipp01105/logify/timefmt"
)

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)
	buf.WriteByte('\n')

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// Line returns the formatted line without the trailing newline
func (f *TextFormatter) Line(entry *core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)
	return buf.String()
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel: "[DEBUG]",
	core.InfoLevel:  "[INFO]",
	core.WarnLevel:  "[WARN]",
	core.ErrorLevel: "[ERROR]",
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	sep := func() {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
	}

	if f.ShowTime {
		buf.WriteByte('[')
		buf.WriteString(timefmt.Stamp(entry.Time))
		buf.WriteByte(']')
	}

	if f.ShowContext && entry.Context != "" {
		sep()
		buf.WriteByte('<')
		if entry.ContextPrefix != "" {
			buf.WriteString(entry.ContextPrefix)
			buf.WriteString(": ")
		}
		buf.WriteString(entry.Context)
		buf.WriteByte('>')
	}

	if f.ShowLevel {
		sep()
		if entry.Level.Valid() {
			buf.WriteString(levelBrackets[entry.Level])
		} else {
			buf.WriteString("[UNKNOWN]")
		}
	}

	sep()
	buf.WriteString(entry.Message)

	for _, arg := range entry.Args {
		buf.WriteByte(' ')
		fmt.Fprint(buf, arg)
	}
}
