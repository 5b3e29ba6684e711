package internal

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Build an orthonormal tangent basis for the plane with the given normal
//
// **params**
// + unit normal of the plane
//
// **returns**
// + u, w such that (u, w, n) is right-handed
func PlaneBasis(n vec3.T) (u, w vec3.T) {
	// cross with the axis least aligned with n
	axis := vec3.UnitX
	if math.Abs(n[1]) < math.Abs(n[0]) && math.Abs(n[1]) <= math.Abs(n[2]) {
		axis = vec3.UnitY
	} else if math.Abs(n[2]) < math.Abs(n[0]) {
		axis = vec3.UnitZ
	}

	u = vec3.Cross(&axis, &n)
	u.Normalize()
	w = vec3.Cross(&n, &u)

	return u, w
}

// Coordinates of a vector in a 2d basis
func Project2(v, u, w *vec3.T) (x, y float64) {
	return vec3.Dot(v, u), vec3.Dot(v, w)
}
