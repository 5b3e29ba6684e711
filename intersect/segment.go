package intersect

import (
	"math"

	"github.com/alexozer/asymtrace/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Intersect the lines a(t) = aOrig + t*aDir and b(u) = bOrig + u*bDir after
// projecting both onto the plane with the given normal.
//
// **params**
// + origin and direction of line A
// + origin and direction of line B
// + unit normal of the plane both lines lie in
// + tolerance on the sine of the angle between the directions
//
// **returns**
// + the parameters on A and B, only meaningful for Crossing
// + Collinear when the projected directions are parallel or degenerate
func Segments(aOrig, aDir, bOrig, bDir, normal vec3.T, eps float64) (SegmentIntersection, Event) {
	u, w := internal.PlaneBasis(normal)

	ax, ay := internal.Project2(&aDir, &u, &w)
	bx, by := internal.Project2(&bDir, &u, &w)

	aLen, bLen := math.Hypot(ax, ay), math.Hypot(bx, by)
	if aLen < internal.Tolerance || bLen < internal.Tolerance {
		return SegmentIntersection{}, Collinear
	}
	if math.Abs(ax*by-ay*bx) < eps*aLen*bLen {
		return SegmentIntersection{}, Collinear
	}

	d := vec3.Sub(&bOrig, &aOrig)
	dx, dy := internal.Project2(&d, &u, &w)

	// t*aDir - u*bDir = bOrig - aOrig
	t, s, ok := internal.Mat2Solve(ax, -bx, ay, -by, dx, dy)
	if !ok {
		return SegmentIntersection{}, Collinear
	}

	return SegmentIntersection{T: t, U: s}, Crossing
}
