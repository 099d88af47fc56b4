// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped with an operation
// tag and the offending shape) and tests match them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Context (operation tag, shapes, pivot index) is added by matrixErrorf at the
// operation boundary; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil/released handle -> shape -> numeric (singular).

var (
	// ErrInvalidDimensions is returned when requested dimensions are non-positive,
	// or when a random fill receives bounds with low > high.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes, Mul where a.Cols != b.Rows, or a flat buffer whose
	// length differs from rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when a pivot magnitude falls at or
	// below the numerical tolerance. Det never returns it; it reports 0 instead.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAllocation indicates that a buffer of the requested size cannot be
	// allocated (element count overflows or exceeds MaxElements).
	ErrAllocation = errors.New("matrix: allocation failure")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates use of a matrix after Release.
	ErrReleased = errors.New("matrix: matrix has been released")

	// ErrNilSource indicates that FillRandomUniform received a nil random source.
	ErrNilSource = errors.New("matrix: nil random source")
)
