// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Constructor tags for error wrapping.
const (
	ctxFromValues = "NewFromValues"
	ctxFromRows   = "NewFromRows"
	ctxIdentity   = "NewIdentity"
	ctxFilled     = "NewFilled"
	ctxRandom     = "NewRandom"
)

// NewZeros is an alias of NewDense that reads better at call sites building fixtures.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewFromValues copies flat (row-major, length rows*cols) into a new matrix.
// The caller keeps ownership of flat; later writes to it do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch if len(flat) != rows*cols.
func NewFromValues(flat []float64, rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxFromValues, err)
	}
	if len(flat) != rows*cols {
		return nil, matrixErrorf(ctxFromValues,
			fmt.Errorf("len %d for %dx%d: %w", len(flat), rows, cols, ErrDimensionMismatch))
	}
	copy(m.data, flat)
	return m, nil
}

// NewFromRows builds a matrix from nested rows of equal length.
// Returns ErrInvalidDimensions for no rows or empty rows and
// ErrDimensionMismatch for ragged input.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(ctxFromRows,
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch))
		}
		copy(m.data[i*cols:], row)
	}
	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// NewFilled returns a rows×cols matrix with every element equal to v.
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxFilled, err)
	}
	_ = m.Fill(v) // m is live
	return m, nil
}

// NewRandom returns a rows×cols matrix filled by FillRandomUniform(src, low, high).
func NewRandom(rows, cols int, low, high float64, src Float64Source) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxRandom, err)
	}
	if err = m.FillRandomUniform(src, low, high); err != nil {
		return nil, matrixErrorf(ctxRandom, err)
	}
	return m, nil
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := validateLive(m); err != nil {
		return nil, err
	}
	return newDenseLike(m.r, m.c), nil
}

// IdentityLike returns the identity with the size of square m.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	return NewIdentity(m.r)
}
