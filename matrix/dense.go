// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep dimensions immutable for the lifetime of a buffer; Release ends that lifetime.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Rows/Cols: O(1); Clone/RawCopy/Fill: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// MaxElements bounds rows*cols for any allocation made by this package.
// Requests above it fail with ErrAllocation instead of exhausting memory.
const MaxElements = math.MaxInt32

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxRow  = "Row"
	ctxSet  = "Set"
	ctxFill = "FillRandomUniform"
	ctxMax  = "Max"
	ctxMin  = "Min"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtReleased = "[]"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols), both > 0 while the buffer is live.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense is owned by whoever created it. Operations in this package never
// mutate their operands; they allocate a fresh Dense for every result.
type Dense struct {
	r, c int       // row and column counts; 0 after Release
	data []float64 // contiguous row-major storage (len == r*c); nil after Release
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//   - ErrAllocation if rows*cols exceeds MaxElements.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// newDenseLike allocates a zero matrix with the shape of a live m.
// The shape was validated when m was built, so it cannot fail.
func newDenseLike(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows (0 for nil or released matrices).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}
	return m.r
}

// Cols returns the number of columns (0 for nil or released matrices).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}
	return m.c
}

// Dims returns (Rows(), Cols()).
func (m *Dense) Dims() (int, int) { return m.Rows(), m.Cols() }

// indexOf computes the flat index for (row, col) after liveness and bounds checks.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if err := validateLive(m); err != nil {
		return 0, denseErrorf(method, row, col, err)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange if the indices are outside [0,Rows())×[0,Cols()).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col). Any float64 is accepted, NaN and ±Inf included.
// Returns ErrOutOfRange if the indices are invalid.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Release drops the backing buffer. Afterwards Rows/Cols report 0 and every
// operation on m fails with ErrReleased. Releasing twice is a no-op.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.r, m.c, m.data = 0, 0, nil
}

// Released reports whether Release has been called on m.
func (m *Dense) Released() bool {
	return m != nil && m.data == nil
}

// Clone returns an independent deep copy of m (nil for nil or released m).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if validateLive(m) != nil {
		return nil
	}
	return &Dense{r: m.r, c: m.c, data: m.RawCopy()}
}

// RawCopy returns a copy of the row-major buffer (nil for nil or released m).
func (m *Dense) RawCopy() []float64 {
	if validateLive(m) != nil {
		return nil
	}
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if _, err := m.indexOf(ctxRow, i, 0); err != nil {
		return nil, err
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Fill sets every element to v in place.
func (m *Dense) Fill(v float64) error {
	if err := validateLive(m); err != nil {
		return err
	}
	for i := range m.data {
		m.data[i] = v
	}
	return nil
}

// Float64Source is the subset of *math/rand.Rand and *math/rand/v2.Rand
// used by FillRandomUniform.
type Float64Source interface {
	Float64() float64
}

// FillRandomUniform overwrites m in place with i.i.d. samples from [low, high],
// drawn from src in row-major order. A fixed seed therefore yields a fixed matrix.
//
// Errors:
//   - ErrInvalidDimensions if low > high or either bound is NaN or infinite.
//   - ErrNilSource if src is nil.
//
// This is the only bulk mutating operation; it exists for test and benchmark data.
func (m *Dense) FillRandomUniform(src Float64Source, low, high float64) error {
	if err := validateLive(m); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxFill, err)
	}
	if !(low <= high) || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return fmt.Errorf("Dense.%s: bounds [%g, %g]: %w", ctxFill, low, high, ErrInvalidDimensions)
	}
	if src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxFill, ErrNilSource)
	}

	// Convex combination: high-low may overflow for finite bounds.
	for i := range m.data {
		u := src.Float64()
		m.data[i] = math.Min(math.Max(low*(1-u)+high*u, low), high)
	}
	return nil
}

// Max returns the largest element. NaN entries are ignored unless every entry is NaN.
func (m *Dense) Max() (float64, error) {
	if err := validateLive(m); err != nil {
		return 0, fmt.Errorf("Dense.%s: %w", ctxMax, err)
	}
	best := math.Inf(-1)
	seen := false
	for _, v := range m.data {
		if math.IsNaN(v) {
			continue
		}
		if !seen || v > best {
			best, seen = v, true
		}
	}
	if !seen {
		return math.NaN(), nil
	}
	return best, nil
}

// Min returns the smallest element. NaN entries are ignored unless every entry is NaN.
func (m *Dense) Min() (float64, error) {
	if err := validateLive(m); err != nil {
		return 0, fmt.Errorf("Dense.%s: %w", ctxMin, err)
	}
	best := math.Inf(1)
	seen := false
	for _, v := range m.data {
		if math.IsNaN(v) {
			continue
		}
		if !seen || v < best {
			best, seen = v, true
		}
	}
	if !seen {
		return math.NaN(), nil
	}
	return best, nil
}

// String implements fmt.Stringer for easy debugging: one "[a, b, c]" line per row.
// For human-oriented output see package render.
func (m *Dense) String() string {
	if validateLive(m) != nil {
		return _fmtReleased
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[base+j])
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}
