// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures (seeded random, diagonally dominant)
//     and fatal-on-error constructors to keep test bodies short.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densela/matrix"
)

// parallelSizes spans below, at and above typical worker counts.
var parallelSizes = []int{1, 2, 7, 8, 33, 257}

// newRNG returns a deterministic source for the given seed.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// mustDense allocates an r×c zero matrix or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)
	return m
}

// mustRows builds a matrix from nested rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)
	return m
}

// mustRandom builds an r×c matrix with entries in [-1, 1] from a fixed seed.
func mustRandom(tb testing.TB, r, c int, seed uint64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewRandom(r, c, -1, 1, newRNG(seed))
	require.NoError(tb, err)
	return m
}

// mustDiagDominant builds a well-conditioned n×n matrix: random in [-1,1]
// with n added to the diagonal.
func mustDiagDominant(tb testing.TB, n int, seed uint64) *matrix.Dense {
	tb.Helper()
	m := mustRandom(tb, n, n, seed)
	for i := 0; i < n; i++ {
		v := mustAt(tb, m, i, i)
		require.NoError(tb, m.Set(i, i, v+float64(n)))
	}
	return m
}

// mustAt reads m[i,j] or fails the test.
func mustAt(tb testing.TB, m *matrix.Dense, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)
	return v
}

// rowsOf converts m into nested rows for readable assertions.
func rowsOf(tb testing.TB, m *matrix.Dense) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(tb, err)
		out[i] = row
	}
	return out
}

// toGonum copies m into a gonum Dense used as a numeric oracle.
func toGonum(m *matrix.Dense) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.RawCopy())
}

// requireMatchesGonum compares m with g element-wise within delta.
func requireMatchesGonum(tb testing.TB, g mat.Matrix, m *matrix.Dense, delta float64) {
	tb.Helper()
	r, c := g.Dims()
	require.Equal(tb, r, m.Rows())
	require.Equal(tb, c, m.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(tb, g.At(i, j), mustAt(tb, m, i, j), delta, "element [%d,%d]", i, j)
		}
	}
}
