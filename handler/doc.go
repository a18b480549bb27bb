// Package handler provides the Handler interface and the two built-in
// sinks a Logger writes to.
//
//   - ConsoleHandler writes one line per entry to an Output (default:
//     stdout), coloured by level when the Output is a terminal or when
//     colour is forced.
//   - FileHandler appends one line per entry to
//     <dir>/<level>/<YYYYMMDD>.log, creating directories on demand. A new
//     file starts every calendar day; nothing is ever rotated or deleted.
//
// Handlers are synchronous: Handle returns once the bytes have been
// handed to the operating system, and any write error is returned to the
// caller. Both handlers count processed and failed entries per level via
// the Stats type, which can be shared between handlers.
package handler
