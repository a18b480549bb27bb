// Package logger is the public API of logify. Most users only need to
// import this package.
//
// A Logger writes one line per accepted call to the console and, on
// request, appends the same line to a per-level daily file under the
// project root:
//
//	<root>/<LogDirName>/<level>/<YYYYMMDD>.log
//
// A line is the space-joined sequence of the enabled segments:
//
//	[2024-12-31 00:00:00] <api: Orders> [INFO] created 42
//
// There is no package-level default logger. Build one with the Builder:
//
//	log, err := logger.NewBuilder().
//	    WithLevel(logger.DebugLevel).
//	    WithContext("Orders").
//	    Build()
//
// The project root is found by walking up from the working directory
// until a go.mod is found; WithRootDir skips the search.
//
// Set* and Toggle* methods change the logger in place and return it, so
// calls chain. Override* methods return an independent copy:
//
//	reqLog := log.OverrideContext("Request")
//
// Level checks happen before any allocation, so filtered-out messages
// cost a single integer comparison.
package logger
