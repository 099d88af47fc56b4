// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels: Add, Sub, Hadamard, Scale, plus Transpose.
//
// Determinism:
//   - Every output element depends on exactly one element of each operand,
//     so serial and parallel execution produce bit-identical buffers.
//   - Inputs are never mutated; each call allocates one result.

package matrix

// binaryOp validates equal shapes, allocates the result and runs f over row windows.
func binaryOp(a, b *Dense, tag string, f func(dst, x, y []float64), opts []Option) (*Dense, error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	o := gatherOptions(opts...)
	out := newDenseLike(a.r, a.c)
	c := a.c

	err := runRows(o, tag, out, func(lo, hi int, dst []float64) {
		f(dst, a.data[lo*c:hi*c], b.data[lo*c:hi*c])
	})
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	return out, nil
}

// Add computes the element-wise sum C = A + B as a fresh matrix.
//
// Errors:
//   - ErrNilMatrix / ErrReleased (bad handle), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense, opts ...Option) (*Dense, error) {
	return binaryOp(a, b, opAdd, func(dst, x, y []float64) {
		for i := range dst {
			dst[i] = x[i] + y[i]
		}
	}, opts)
}

// Sub computes the element-wise difference C = A - B as a fresh matrix.
// Same errors and complexity as Add.
func Sub(a, b *Dense, opts ...Option) (*Dense, error) {
	return binaryOp(a, b, opSub, func(dst, x, y []float64) {
		for i := range dst {
			dst[i] = x[i] - y[i]
		}
	}, opts)
}

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// Same errors and complexity as Add.
func Hadamard(a, b *Dense, opts ...Option) (*Dense, error) {
	return binaryOp(a, b, opHadamard, func(dst, x, y []float64) {
		for i := range dst {
			dst[i] = x[i] * y[i]
		}
	}, opts)
}

// Scale computes C = k * A. Any k is accepted; NaN and ±Inf propagate per IEEE-754.
func Scale(a *Dense, k float64, opts ...Option) (*Dense, error) {
	if err := validateLive(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	o := gatherOptions(opts...)
	out := newDenseLike(a.r, a.c)
	c := a.c

	err := runRows(o, opScale, out, func(lo, hi int, dst []float64) {
		src := a.data[lo*c : hi*c]
		for i := range dst {
			dst[i] = k * src[i]
		}
	})
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	return out, nil
}

// Transpose returns a new c×r matrix with out[j,i] = a[i,j].
func Transpose(a *Dense) (*Dense, error) {
	if err := validateLive(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := a.r, a.c
	out := newDenseLike(c, r)
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			out.data[j*r+i] = a.data[base+j]
		}
	}
	return out, nil
}
