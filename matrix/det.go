// SPDX-License-Identifier: MIT

package matrix

import "math"

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - n=1: the single entry. n=2: a·d − b·c.
//   - n≥3: partial-pivot LU on a scratch copy (shared with LU). Each row
//     swap flips the sign; the determinant is sign × Π diag(U).
//
// Behavior highlights:
//   - A pivot with |p| <= MachineEpsilon·max|a_ij|·factor (see WithPivotFactor)
//     marks the matrix as singular and Det returns 0. This is a normal result,
//     not an error; Inverse reports ErrSingular for the same condition.
//   - Always sequential; execution options other than the logger and pivot
//     factor are ignored.
//   - Any NaN entry makes the result NaN.
//   - The input is never mutated.
//
// Errors:
//   - ErrNilMatrix / ErrReleased, ErrNonSquare.
//
// Complexity: Time O(n³), Space O(n²) for the scratch copy.
func Det(a *Dense, opts ...Option) (float64, error) {
	if err := validateSquare(a); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := a.r
	d := a.data
	switch n {
	case 1:
		return d[0], nil
	case 2:
		return float64(d[0]*d[3]) - float64(d[1]*d[2]), nil
	}

	if hasNaN(d) {
		return math.NaN(), nil
	}

	o := gatherOptions(opts...)
	lu := make([]float64, len(d))
	copy(lu, d)
	tol := pivotTolerance(maxAbs(lu), o.pivotFactor)

	sign, step, ok := luFactor(lu, n, tol, make([]int, n))
	if !ok {
		logSingular(o.log, opDet, step, rejectedPivot(lu, n, step), tol)
		return 0, nil
	}
	det := sign
	for k := 0; k < n; k++ {
		det *= lu[k*n+k]
	}

	return det, nil
}
