// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densela/matrix"
)

func TestInverse_Scenario2x2(t *testing.T) {
	t.Parallel()

	inv, err := matrix.Inverse(mustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-2, 1}, {1.5, -0.5}}, rowsOf(t, inv))
}

func TestInverse_1x1(t *testing.T) {
	t.Parallel()

	inv, err := matrix.Inverse(mustRows(t, [][]float64{{4}}))
	require.NoError(t, err)
	assert.Equal(t, 0.25, mustAt(t, inv, 0, 0))

	_, err = matrix.Inverse(mustRows(t, [][]float64{{0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	for name, rows := range map[string][][]float64{
		"1..9":       {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		"dup rows":   {{1, 2, 3}, {1, 2, 3}, {4, 5, 6}},
		"dup rows 4": {{3, 1, 4, 1}, {5, 9, 2, 6}, {5, 3, 5, 8}, {3, 1, 4, 1}},
		"2x2":        {{1, 2}, {2, 4}},
		"zeros":      {{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	} {
		a := mustRows(t, rows)
		before := a.RawCopy()
		_, err := matrix.Inverse(a)
		require.ErrorIs(t, err, matrix.ErrSingular, name)
		assert.Equal(t, before, a.RawCopy(), "%s: input mutated", name)
	}
}

func TestInverse_Identity(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		id, err := matrix.NewIdentity(n)
		require.NoError(t, err)
		inv, err := matrix.Inverse(id)
		require.NoError(t, err)
		assert.True(t, matrix.Equal(id, inv), "n=%d", n)
	}
}

func TestInverse_ProductIsIdentity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 5, 8, 20, 64} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := mustDiagDominant(t, n, 700+uint64(n))
			inv, err := matrix.Inverse(a)
			require.NoError(t, err)

			id, err := matrix.NewIdentity(n)
			require.NoError(t, err)
			for _, prod := range []func() (*matrix.Dense, error){
				func() (*matrix.Dense, error) { return matrix.Mul(a, inv) },
				func() (*matrix.Dense, error) { return matrix.Mul(inv, a, matrix.WithParallel()) },
			} {
				p, err := prod()
				require.NoError(t, err)
				ok, err := matrix.AllClose(p, id, 1e-9, 1e-9)
				require.NoError(t, err)
				assert.True(t, ok)
			}
		})
	}
}

func TestInverse_NeedsPivoting(t *testing.T) {
	t.Parallel()

	// Zero on the leading diagonal: only solvable with row exchanges.
	a := mustRows(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {4, -3, 8}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-4.5, 7, -1.5}, {-2, 4, -1}, {1.5, -2, 0.5}}, roundRows(t, inv, 1e-12))
}

func TestInverse_MatchesGonum(t *testing.T) {
	t.Parallel()

	a := mustRandom(t, 7, 7, 31337)
	var want mat.Dense
	require.NoError(t, want.Inverse(toGonum(a)))

	got, err := matrix.Inverse(a)
	require.NoError(t, err)
	requireMatchesGonum(t, &want, got, 1e-8)
}

func TestInverse_PivotFactor(t *testing.T) {
	t.Parallel()

	// Nearly singular: third row is row1+row2 perturbed by 1e-10.
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {5, 7, 9 + 1e-10}})
	_, err := matrix.Inverse(a)
	require.NoError(t, err, "default factor accepts a tiny but real pivot")

	_, err = matrix.Inverse(a, matrix.WithPivotFactor(1e8))
	require.ErrorIs(t, err, matrix.ErrSingular)

	d, err := matrix.Det(a, matrix.WithPivotFactor(1e8))
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestInverse_NonSquare(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse(mustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// roundRows snaps values within eps of an integer multiple of 0.5 to that value.
func roundRows(tb testing.TB, m *matrix.Dense, eps float64) [][]float64 {
	tb.Helper()
	rows := rowsOf(tb, m)
	for _, row := range rows {
		for j, v := range row {
			if r := float64(int64(v*2+copysignHalf(v))) / 2; r-v < eps && v-r < eps {
				row[j] = r
			}
		}
	}
	return rows
}

func copysignHalf(v float64) float64 {
	if v < 0 {
		return -0.5
	}
	return 0.5
}

func TestInverse_ExtremeScale2x2(t *testing.T) {
	t.Parallel()

	for _, s := range []float64{1e160, 1e-170} {
		for _, n := range []int{2, 3} {
			a := mustRows(t, diag(n, s))
			inv, err := matrix.Inverse(a)
			require.NoError(t, err, "s=%g n=%d", s, n)
			for i := 0; i < n; i++ {
				assert.InDelta(t, 1, mustAt(t, inv, i, i)*s, 1e-15, "s=%g n=%d", s, n)
			}
		}
	}

	// Scaling a general matrix scales its inverse by the reciprocal.
	inv, err := matrix.Inverse(mustRows(t, [][]float64{{1e200, 2e200}, {3e200, 4e200}}))
	require.NoError(t, err)
	assert.InDelta(t, -2, mustAt(t, inv, 0, 0)*1e200, 1e-12)
	assert.InDelta(t, -0.5, mustAt(t, inv, 1, 1)*1e200, 1e-12)
}

func TestInverse_InfiniteEntry(t *testing.T) {
	t.Parallel()

	inv, err := matrix.Inverse(mustRows(t, [][]float64{{math.Inf(1), 0, 0}, {0, 2, 0}, {0, 0, 4}}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, mustAt(t, inv, 0, 0))
	assert.Equal(t, 0.5, mustAt(t, inv, 1, 1))
	assert.Equal(t, 0.25, mustAt(t, inv, 2, 2))
}

// diag returns s·I as rows.
func diag(n int, s float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = s
	}
	return rows
}
