// SPDX-License-Identifier: MIT

// Package dispatch implements synchronous fork-join execution over row ranges.
//
// A Dispatcher splits the half-open row interval [0, rows) into contiguous,
// non-overlapping chunks whose sizes differ by at most one row, runs one
// goroutine per chunk and blocks until all of them return. Callers hand each
// chunk only the slice of the output it owns, so no locking is needed.
//
// Goroutines live for the duration of a single call; there is no persistent
// pool and no cancellation. A Dispatcher with one worker runs the range
// function inline on the calling goroutine.
//
// Quick example:
//
//	d := dispatch.New(0, zerolog.Nop()) // 0 => runtime.GOMAXPROCS(0)
//	err := d.Rows(rows, func(lo, hi int) error {
//		for i := lo; i < hi; i++ {
//			// write row i of the output
//		}
//		return nil
//	})
package dispatch
