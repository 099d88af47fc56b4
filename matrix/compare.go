// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= atol + rtol*|b|. NaN is never close to anything.
// Returns ErrDimensionMismatch for different shapes.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i, x := range a.data {
		y := b.data[i]
		if x == y { // covers equal infinities
			continue
		}
		if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
			return false, nil
		}
	}
	return true, nil
}

// Equal reports whether a and b are live, share a shape and hold identical
// values. NaN compares equal to NaN so that parallel and serial results
// carrying NaN can be matched.
func Equal(a, b *Dense) bool {
	if validateBinarySameShape(a, b) != nil {
		return false
	}
	for i, x := range a.data {
		y := b.data[i]
		if x != y && !(math.IsNaN(x) && math.IsNaN(y)) {
			return false
		}
	}
	return true
}
