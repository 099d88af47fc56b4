// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for handle, shape and index checks.
//   - Return sentinels wrapped with the offending shape so call sites only add
//     their operation tag.
//
// All checks are O(1) and allocate only on failure.

package matrix

import "fmt"

// validateLive ensures m is non-nil and has not been released.
func validateLive(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.data == nil {
		return ErrReleased
	}
	return nil
}

// validateBinarySameShape: Live(a) -> Live(b) -> equal shapes.
func validateBinarySameShape(a, b *Dense) error {
	if err := validateLive(a); err != nil {
		return err
	}
	if err := validateLive(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	return nil
}

// validateMulCompatible: Live(a) -> Live(b) -> a.Cols == b.Rows.
func validateMulCompatible(a, b *Dense) error {
	if err := validateLive(a); err != nil {
		return err
	}
	if err := validateLive(b); err != nil {
		return err
	}
	if a.c != b.r {
		return fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	return nil
}

// validateSquare: Live(m) -> Rows == Cols.
func validateSquare(m *Dense) error {
	if err := validateLive(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	return nil
}

// validateShape checks rows, cols > 0 and that rows*cols fits MaxElements.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	if rows > MaxElements/cols {
		return fmt.Errorf("%dx%d exceeds %d elements: %w", rows, cols, MaxElements, ErrAllocation)
	}
	return nil
}
