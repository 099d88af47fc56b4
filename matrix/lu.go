// SPDX-License-Identifier: MIT

package matrix

import "math"

// LU factors a square matrix as P·A = L·U using partial pivoting.
//
// Implementation:
//   - Stage 1: Validate a is square and live, copy it into a scratch buffer.
//   - Stage 2: Doolittle elimination in place (luFactor). L is unit lower
//     triangular, U is upper triangular.
//   - Stage 3: Unpack the packed factors into two fresh matrices.
//
// perm describes P: row i of P·A is row perm[i] of a.
//
// Errors:
//   - ErrNilMatrix / ErrReleased, ErrNonSquare.
//   - ErrSingular when a pivot falls below the tolerance (see WithPivotFactor).
//
// Complexity: Time O(n³), Space O(n²).
func LU(a *Dense, opts ...Option) (L, U *Dense, perm []int, err error) {
	if err = validateSquare(a); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	n := a.r

	buf := make([]float64, len(a.data))
	copy(buf, a.data)
	perm = make([]int, n)
	tol := pivotTolerance(maxAbs(buf), o.pivotFactor)
	if _, step, ok := luFactor(buf, n, tol, perm); !ok {
		logSingular(o.log, opLU, step, rejectedPivot(buf, n, step), tol)
		return nil, nil, nil, matrixErrorf(opLU, ErrSingular)
	}

	L, U = newDenseLike(n, n), newDenseLike(n, n)
	for i := 0; i < n; i++ {
		row := buf[i*n : (i+1)*n]
		copy(L.data[i*n:i*n+i], row[:i])
		L.data[i*n+i] = 1
		copy(U.data[i*n+i:(i+1)*n], row[i:])
	}
	return L, U, perm, nil
}

// luFactor overwrites the n×n buffer buf with its packed LU factors: the
// multipliers of L below the diagonal, U on and above it. perm receives the
// final row order. It returns the sign of the permutation, or stops at the
// first pivot with |p| <= tol (or NaN) and reports that step with ok=false.
func luFactor(buf []float64, n int, tol float64, perm []int) (sign float64, step int, ok bool) {
	for i := range perm {
		perm[i] = i
	}
	sign = 1
	for k := 0; k < n; k++ {
		p := pivotRow(buf, n, n, k)
		if !(math.Abs(buf[p*n+k]) > tol) {
			return sign, k, false
		}
		if p != k {
			swapRows(buf, n, p, k)
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}

		pivot := buf[k*n+k]
		pivotTail := buf[k*n+k+1 : (k+1)*n]
		for i := k + 1; i < n; i++ {
			f := buf[i*n+k] / pivot
			buf[i*n+k] = f
			rowTail := buf[i*n+k+1 : (i+1)*n]
			for j, v := range pivotTail {
				rowTail[j] -= f * v
			}
		}
	}
	return sign, n, true
}

// rejectedPivot returns the best available pivot at the step where luFactor stopped.
func rejectedPivot(buf []float64, n, step int) float64 {
	return buf[pivotRow(buf, n, n, step)*n+step]
}
