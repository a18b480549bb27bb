// Package formatter defines how log entries are rendered into lines.
//
// A line is the space-joined sequence of the segments enabled in Config:
//
//	[2026-10-18 09:30:00] <db: migrations> [INFO] applied 3 files
//
// The timestamp, the context (with its optional prefix) and the level
// bracket can each be switched off; the message is always present.
// Extra arguments passed with the message are appended after it, one
// space apart, in their fmt.Sprint form.
//
// TextFormatter produces plain lines and is used for file output.
// ColorFormatter wraps it with one ANSI colour per level for terminals.
// Both use a pooled bytes.Buffer internally.
package formatter
