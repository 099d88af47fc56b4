// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrWorkerFailed marks a worker that panicked while processing its range.
// The panic value is recovered and reported through the returned error.
var ErrWorkerFailed = errors.New("dispatch: worker failed")

// Range is a half-open interval of row indices [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of rows covered by r.
func (r Range) Len() int { return r.Hi - r.Lo }

// RangeFunc processes rows [lo, hi). It must only touch output owned by that range.
type RangeFunc func(lo, hi int) error

// DefaultWorkers returns the worker count used when a caller asks for
// parallel execution without naming a count: runtime.GOMAXPROCS(0).
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Partition splits [0, rows) into min(workers, rows) contiguous ranges.
// The first rows%w ranges receive one extra row, so any two range lengths
// differ by at most one. Returns nil when rows <= 0. workers < 1 is treated as 1.
// Complexity: O(min(workers, rows)).
func Partition(rows, workers int) []Range {
	if rows <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	w := min(workers, rows)
	base, rem := rows/w, rows%w

	out := make([]Range, w)
	lo := 0
	for i := 0; i < w; i++ {
		size := base
		if i < rem {
			size++ // spread the remainder over the leading chunks
		}
		out[i] = Range{Lo: lo, Hi: lo + size}
		lo += size
	}

	return out
}

// Dispatcher runs a RangeFunc over a partition of rows.
// The zero value is not usable; construct with New or Serial.
type Dispatcher struct {
	workers int
	log     zerolog.Logger
}

// New returns a Dispatcher with the given worker bound.
// workers <= 0 selects DefaultWorkers().
func New(workers int, log zerolog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	return &Dispatcher{workers: workers, log: log}
}

// Serial returns a single-worker Dispatcher that never spawns goroutines.
func Serial() *Dispatcher {
	return &Dispatcher{workers: 1, log: zerolog.Nop()}
}

// Workers reports the configured upper bound on concurrent workers.
func (d *Dispatcher) Workers() int { return d.workers }

// Rows executes fn over Partition(rows, d.Workers()) and waits for every
// range to finish. The first failure (returned error or recovered panic) is
// returned once all workers have stopped.
func (d *Dispatcher) Rows(rows int, fn RangeFunc) error {
	ranges := Partition(rows, d.workers)
	switch len(ranges) {
	case 0:
		return nil
	case 1:
		// Serial path: same arithmetic, no spawn.
		return guard(ranges[0], fn)
	}

	d.log.Debug().
		Int("rows", rows).
		Int("workers", len(ranges)).
		Int("chunk", ranges[0].Len()).
		Msg("dispatch: fork")

	var g errgroup.Group
	for _, r := range ranges {
		g.Go(func() error { return guard(r, fn) })
	}
	if err := g.Wait(); err != nil {
		d.log.Error().Err(err).Int("rows", rows).Msg("dispatch: join failed")
		return err
	}

	return nil
}

// guard runs fn on r and converts a panic into ErrWorkerFailed.
func guard(r Range, fn RangeFunc) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("rows [%d,%d): %v: %w", r.Lo, r.Hi, p, ErrWorkerFailed)
		}
	}()

	return fn(r.Lo, r.Hi)
}
