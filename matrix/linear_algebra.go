// SPDX-License-Identifier: MIT
// Package matrix: shared declarations for the arithmetic and analysis kernels.
//
// Purpose:
//   - Define operation tags used in error wrapping and log events.
//   - Provide the row-partitioned execution helper used by the parallel-capable ops.
//
// Notes:
//   - Kernels live in elementwise.go, mul.go, lu.go, det.go and inverse.go.
//   - Only elementwise ops and Mul use the parallel path. Det and Inverse
//     are sequential: each pivot step depends on the previous elimination.

package matrix

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Operation name constants for unified error wrapping and log fields.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opDet       = "Det"
	opInverse   = "Inverse"
	opAllClose  = "AllClose"
	opLU        = "LU"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Only call it with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowKernel fills rows [lo, hi) of the output. dst is exactly that slice of the
// output buffer; inputs are read-only.
type rowKernel func(lo, hi int, dst []float64)

// runRows executes k over the rows of out, serially or fork-join according to o.
// Each invocation receives a disjoint dst window, so workers never share writes.
func runRows(o Options, op string, out *Dense, k rowKernel) error {
	c := out.c
	if o.workers > 1 {
		o.log.Debug().
			Str("op", op).
			Int("rows", out.r).
			Int("cols", c).
			Int("workers", min(o.workers, out.r)).
			Msg("matrix: parallel kernel")
	}

	return o.dispatcher().Rows(out.r, func(lo, hi int) error {
		k(lo, hi, out.data[lo*c:hi*c])
		return nil
	})
}

// logSingular records a rejected pivot at debug level.
func logSingular(l zerolog.Logger, op string, step int, pivot, tol float64) {
	l.Debug().
		Str("op", op).
		Int("step", step).
		Float64("pivot", pivot).
		Float64("tol", tol).
		Msg("matrix: pivot below tolerance")
}
