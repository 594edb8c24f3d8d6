// Package fanout runs one task per input item concurrently and joins the
// results in input order.
//
// The join is all-or-nothing: the first failing task cancels the context
// shared by its siblings and the whole call returns that error with no
// partial results. Completion order never affects result order. Key features:
//   - Optional bound on in-flight tasks (0 = one goroutine per item)
//   - Progress tracking with callbacks for UI updates
//   - Context-aware cancellation
package fanout
