// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for arithmetic and analysis calls.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Every public operation takes ...Option and resolves it on each call, so
// there is no process-wide concurrency or tolerance setting.
package matrix

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/densela/dispatch"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the worker count when no execution option is given:
	// serial execution on the calling goroutine.
	DefaultWorkers = 1

	// DefaultPivotFactor scales the pivot tolerance used by Det and Inverse:
	// tol = MachineEpsilon * max|a_ij| * factor.
	DefaultPivotFactor = 8.0

	// MachineEpsilon is the spacing of float64 values around 1.0 (2^-52).
	MachineEpsilon = 0x1p-52
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid     = "matrix: WithWorkers: n must be >= 1"
	panicPivotFactorInvalid = "matrix: WithPivotFactor: factor must be finite and > 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective per-call configuration.
type Options struct {
	workers     int            // >= 1; 1 means no goroutines are spawned
	log         zerolog.Logger // debug events for dispatch decisions
	pivotFactor float64        // > 0; DefaultPivotFactor
}

// WithParallel requests the data-parallel path with one worker per
// available CPU (runtime.GOMAXPROCS(0)). Only elementwise ops and Mul use it.
func WithParallel() Option {
	return func(o *Options) {
		o.workers = dispatch.DefaultWorkers()
	}
}

// WithSerial forces single-goroutine execution.
func WithSerial() Option {
	return func(o *Options) {
		o.workers = 1
	}
}

// WithMultithreaded selects WithParallel when on is true, WithSerial otherwise.
// It mirrors a boolean "multithreaded" flag held by a caller's configuration.
func WithMultithreaded(on bool) Option {
	if on {
		return WithParallel()
	}
	return WithSerial()
}

// WithWorkers bounds the number of concurrent workers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) {
		o.workers = n
	}
}

// WithLogger attaches a logger for debug events (dispatch, singular pivots).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.log = l
	}
}

// WithPivotFactor overrides DefaultPivotFactor. Larger values classify more
// nearly-singular matrices as singular. Panics unless factor is finite and > 0.
func WithPivotFactor(factor float64) Option {
	if !(factor > 0) || math.IsInf(factor, 0) {
		panic(panicPivotFactorInvalid)
	}
	return func(o *Options) {
		o.pivotFactor = factor
	}
}

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Workers reports the resolved worker bound.
func (o Options) Workers() int { return o.workers }

// PivotFactor reports the resolved pivot tolerance factor.
func (o Options) PivotFactor() float64 { return o.pivotFactor }

// gatherOptions applies user setters on top of defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:     DefaultWorkers,
		log:         zerolog.Nop(),
		pivotFactor: DefaultPivotFactor,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// dispatcher builds the fork-join executor for this call.
func (o Options) dispatcher() *dispatch.Dispatcher {
	if o.workers <= 1 {
		return dispatch.Serial()
	}
	return dispatch.New(o.workers, o.log)
}
