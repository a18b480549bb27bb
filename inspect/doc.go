// Package inspect calls functions and methods through reflection and logs
// each call with its argument and result types:
//
//	[FnInspection] add <int, int> => 3 <int>
//
// A call that panics, or whose last result is a non-nil error, is logged
// at error level with a stack trace and is not propagated to the caller.
package inspect
