// Package core defines the shared types used across logify.
//
// It provides the Level type for severity filtering and the Entry type
// that represents a single log event on its way from a Logger to a
// handler.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and must return it with PutEntry once the handler has
// consumed it. Every handler in this module is synchronous, so the
// entry can always be recycled as soon as Handle returns.
package core
