// SPDX-License-Identifier: MIT

package matrix

import "math"

// maxAbs returns max|x| over the finite entries of data. NaN and ±Inf do not
// set the scale, so one infinite entry cannot push the pivot tolerance to Inf.
func maxAbs(data []float64) float64 {
	var best float64
	for _, v := range data {
		if a := math.Abs(v); a > best && !math.IsInf(a, 0) {
			best = a
		}
	}
	return best
}

func hasNaN(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// pivotTolerance is MachineEpsilon * scale * factor. A pivot p with
// |p| <= tolerance is treated as zero, which also catches exact zeros of an
// all-zero matrix where the tolerance itself is 0.
func pivotTolerance(scale, factor float64) float64 {
	return MachineEpsilon * scale * factor
}

// pivotRow selects, among rows k..n-1 of the row-major buffer buf with stride
// `stride`, the row whose entry in column k has the largest magnitude.
// Ties keep the lowest row index, so no swap happens when the diagonal already wins.
func pivotRow(buf []float64, stride, n, k int) int {
	best, bestAbs := k, math.Abs(buf[k*stride+k])
	for i := k + 1; i < n; i++ {
		if a := math.Abs(buf[i*stride+k]); a > bestAbs {
			best, bestAbs = i, a
		}
	}
	return best
}

// swapRows exchanges rows i and j (each `stride` wide) in place.
func swapRows(buf []float64, stride, i, j int) {
	ri := buf[i*stride : (i+1)*stride]
	rj := buf[j*stride : (j+1)*stride]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
