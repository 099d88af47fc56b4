// SPDX-License-Identifier: MIT

package matrix

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate handles and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: partition output rows across workers (WithParallel/WithWorkers);
//     each worker computes whole rows of C with an i→k→j loop, reading all of
//     A and B and writing only its own rows.
//
// Determinism:
//   - Every C[i,j] is accumulated from 0 in k order 0..n-1, identical in the
//     serial and parallel paths, so both produce the same bits.
//   - Each product is rounded before it is added (no fused multiply-add),
//     keeping results stable across architectures.
//   - No zero-skipping: 0*Inf and 0*NaN contribute NaN as IEEE-754 requires.
//
// Errors:
//   - ErrNilMatrix / ErrReleased, ErrDimensionMismatch.
//
// Complexity: Time O(m*n*p), Space O(m*p).
func Mul(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateShape(a.r, b.c); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	n, p := a.c, b.c
	out := newDenseLike(a.r, p)
	err := runRows(o, opMul, out, func(lo, hi int, dst []float64) {
		for i := lo; i < hi; i++ {
			row := dst[(i-lo)*p : (i-lo+1)*p] // C[i,:], zero on entry
			aRow := a.data[i*n : (i+1)*n]
			for k, av := range aRow {
				bRow := b.data[k*p : (k+1)*p]
				for j := range row {
					row[j] += float64(av * bRow[j]) // explicit conversion prevents FMA fusion
				}
			}
		}
	})
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	return out, nil
}
