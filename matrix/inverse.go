// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Inverse returns A⁻¹ for a square, numerically non-singular matrix.
//
// Implementation:
//   - n=1: 1/a.
//   - n=2: adjugate divided by the determinant.
//   - n≥3: Gauss-Jordan elimination on the augmented matrix [A | I] with
//     partial pivoting; the left block is reduced to I while the right block
//     becomes A⁻¹.
//
// Behavior highlights:
//   - Tolerance: tol = MachineEpsilon·max|a_ij|·factor (DefaultPivotFactor = 8,
//     see WithPivotFactor). Any pivot with |p| <= tol fails with ErrSingular.
//     The 2×2 closed form scales the entries by 1/max|a_ij| first and compares
//     the normalized determinant with MachineEpsilon·factor.
//   - ±Inf entries do not contribute to max|a_ij|.
//     A NaN pivot has no usable magnitude and is rejected the same way.
//   - Always sequential; the input is never mutated and no partial result escapes.
//
// Errors:
//   - ErrNilMatrix / ErrReleased, ErrNonSquare, ErrSingular.
//
// Complexity: Time O(n³), Space O(n²) for the augmented buffer.
func Inverse(a *Dense, opts ...Option) (*Dense, error) {
	if err := validateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	n := a.r
	scale := maxAbs(a.data)

	switch n {
	case 1:
		return inverse1(a, o, scale)
	case 2:
		return inverse2(a, o, scale)
	}

	// Augmented buffer [A | I], n rows of width 2n.
	w := 2 * n
	aug := make([]float64, n*w)
	for i := 0; i < n; i++ {
		copy(aug[i*w:i*w+n], a.data[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}
	tol := pivotTolerance(scale, o.pivotFactor)

	for k := 0; k < n; k++ {
		p := pivotRow(aug, w, n, k)
		if pv := aug[p*w+k]; !(math.Abs(pv) > tol) {
			logSingular(o.log, opInverse, k, pv, tol)
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot %d: |%g| <= %g: %w", k, pv, tol, ErrSingular))
		}
		if p != k {
			swapRows(aug, w, p, k)
		}

		// Normalize the pivot row; columns < k are already zero.
		rowK := aug[k*w : (k+1)*w]
		pivot := rowK[k]
		for j := k; j < w; j++ {
			rowK[j] /= pivot
		}

		// Eliminate column k from every other row.
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			rowI := aug[i*w : (i+1)*w]
			f := rowI[k]
			if f == 0 {
				continue
			}
			for j := k; j < w; j++ {
				rowI[j] -= f * rowK[j]
			}
		}
	}

	out := newDenseLike(n, n)
	for i := 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}
	return out, nil
}

// inverse1 handles the 1×1 closed form.
func inverse1(a *Dense, o Options, scale float64) (*Dense, error) {
	v := a.data[0]
	if tol := pivotTolerance(scale, o.pivotFactor); !(math.Abs(v) > tol) {
		logSingular(o.log, opInverse, 0, v, tol)
		return nil, matrixErrorf(opInverse, fmt.Errorf("1x1 entry %g: %w", v, ErrSingular))
	}
	out := newDenseLike(1, 1)
	out.data[0] = 1 / v
	return out, nil
}

// inverse2 handles the 2×2 closed form [[d, -b], [-c, a]] / det.
// The determinant is formed from entries divided by scale, so it neither
// overflows nor underflows where Gauss-Jordan would still succeed.
func inverse2(a *Dense, o Options, scale float64) (*Dense, error) {
	if scale == 0 {
		scale = 1
	}
	x := a.data
	p, q, r, s := x[0]/scale, x[1]/scale, x[2]/scale, x[3]/scale
	det := float64(p*s) - float64(q*r)
	if tol := pivotTolerance(1, o.pivotFactor); !(math.Abs(det) > tol) {
		logSingular(o.log, opInverse, 0, det, tol)
		return nil, matrixErrorf(opInverse, fmt.Errorf("2x2 normalized determinant %g: %w", det, ErrSingular))
	}
	out := newDenseLike(2, 2)
	out.data[0] = s / det / scale
	out.data[1] = -q / det / scale
	out.data[2] = -r / det / scale
	out.data[3] = p / det / scale
	return out, nil
}
