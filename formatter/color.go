package formatter

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/philipp01105/logify/core"
)

// levelColors gives every level its own treatment on a terminal
var levelColors = map[core.Level]text.Colors{
	core.DebugLevel: {text.FgCyan},
	core.InfoLevel:  {text.FgGreen},
	core.WarnLevel:  {text.FgYellow},
	core.ErrorLevel: {text.FgRed},
}

// Colorize wraps s in the escape sequences for level
func Colorize(level core.Level, s string) string {
	colors, ok := levelColors[level]
	if !ok {
		return s
	}
	return colors.Sprint(s)
}

// ColorFormatter renders the same line as TextFormatter, coloured by level.
// The trailing newline is left outside the colour sequence.
type ColorFormatter struct {
	text *TextFormatter
}

// NewColorFormatter creates a colouring formatter
func NewColorFormatter(cfg Config) *ColorFormatter {
	return &ColorFormatter{text: NewTextFormatter(cfg)}
}

// Format formats an entry as a coloured line
func (f *ColorFormatter) Format(entry *core.Entry) ([]byte, error) {
	return []byte(Colorize(entry.Level, f.text.Line(entry)) + "\n"), nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *ColorFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	_, err := io.WriteString(w, Colorize(entry.Level, f.text.Line(entry))+"\n")
	return err
}
