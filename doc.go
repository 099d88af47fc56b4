// Package densela is a small dense linear-algebra kernel: row-major float64
// matrices with elementwise arithmetic, matrix multiplication, determinant
// and inverse, optionally spread across goroutines.
//
// 🚀 What is inside?
//
//   - Storage: an exclusively owned row-major buffer with explicit Release
//   - Elementwise: Add, Sub, Hadamard, Scale, Transpose
//   - Products: Mul with a fixed k-order reduction
//   - Factorizations: Det (partial-pivot LU) and Inverse (Gauss-Jordan)
//   - Parallelism: row-range fork/join that never changes a single bit of output
//
// ✨ Why densela?
//
//   - Deterministic - serial and parallel results are bit-identical
//   - Explicit - sentinel errors for every failure, no silent NaNs from singular input
//   - Observable - zerolog events for dispatch and pivot decisions
//
// Packages:
//
//	dispatch/     row partitioning and errgroup fork/join
//	matrix/       Dense, constructors and all kernels
//	render/       aligned, bracketed, optionally colored terminal output
//	cmd/matbench/ serial vs parallel benchmark, demo and environment report
//
// Quick example:
//
//	A = ⎡ 1 2 ⎤   det(A) = -2   A⁻¹ = ⎡ -2.0  1.0 ⎤
//	    ⎣ 3 4 ⎦                       ⎣  1.5 -0.5 ⎦
//
//	go get github.com/katalvlaran/densela
package densela
