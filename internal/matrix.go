package internal

import "math"

// Solve the 2x2 system
//
//	| a b | |x|   |f|
//	| c d | |y| = |s|
//
// by Cramer's rule.
//
// **returns**
// + x, y
// + false when the determinant is below Tolerance relative to the matrix scale
func Mat2Solve(a, b, c, d, f, s float64) (x, y float64, ok bool) {
	det := a*d - b*c
	scale := math.Max(math.Max(math.Abs(a), math.Abs(b)), math.Max(math.Abs(c), math.Abs(d)))
	if scale == 0 || math.Abs(det) <= Tolerance*scale*scale {
		return 0, 0, false
	}

	x = (f*d - b*s) / det
	y = (a*s - f*c) / det
	return x, y, true
}
