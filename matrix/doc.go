// SPDX-License-Identifier: MIT

// Package matrix implements a dense, row-major float64 matrix kernel.
//
// The package provides:
//
//   - Dense: a flat row-major buffer with immutable dimensions, bounds-checked
//     At/Set, explicit Release, and random fill for fixtures.
//   - Element-wise arithmetic: Add, Sub, Hadamard, Scale (and Transpose).
//   - Mul: matrix product with a fixed k-order accumulation.
//   - Det: determinant via partial-pivot elimination (0 for singular input).
//   - Inverse: Gauss-Jordan with partial pivoting (ErrSingular for singular input).
//
// Execution is configured per call with functional options. The default is
// serial; WithParallel or WithWorkers(n) split the output rows across
// goroutines (package dispatch) for the element-wise ops and Mul. Both paths
// return bit-identical buffers. Det and Inverse are always sequential.
//
// Operations never mutate their operands and always return a freshly
// allocated result, or an error wrapping one of the package sentinels
// (see errors.go) with no partial output.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matrix.Mul(a, b, matrix.WithParallel()) // [[19 22] [43 50]]
//	d, _ := matrix.Det(a)                           // -2
package matrix
