// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// permuteRows returns the matrix whose row i is row perm[i] of a.
func permuteRows(t *testing.T, a *matrix.Dense, perm []int) *matrix.Dense {
	t.Helper()
	src := rowsOf(t, a)
	out := make([][]float64, len(perm))
	for i, p := range perm {
		out[i] = src[p]
	}
	return mustRows(t, out)
}

func TestLU_Reconstructs(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 8, 33} {
		a := mustRandom(t, n, n, uint64(n))
		L, U, perm, err := matrix.LU(a)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, perm, n)

		lu, err := matrix.Mul(L, U)
		require.NoError(t, err)
		ok, err := matrix.AllClose(lu, permuteRows(t, a, perm), 1e-12, 1e-12)
		require.NoError(t, err)
		assert.True(t, ok, "n=%d: P·A != L·U", n)
	}
}

func TestLU_TriangularShape(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}})
	L, U, perm, err := matrix.LU(a)
	require.NoError(t, err)

	// Column 0 has its largest entry in row 1.
	assert.Equal(t, 1, perm[0])
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, mustAt(t, L, i, i))
		for j := i + 1; j < 3; j++ {
			assert.Zero(t, mustAt(t, L, i, j), "L[%d][%d]", i, j)
			assert.Zero(t, mustAt(t, U, j, i), "U[%d][%d]", j, i)
		}
	}
	assert.Equal(t, 4.0, mustAt(t, U, 0, 0))
}

func TestLU_Errors(t *testing.T) {
	t.Parallel()

	_, _, _, err := matrix.LU(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, _, _, err = matrix.LU(mustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, _, err = matrix.LU(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
