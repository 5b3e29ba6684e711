package intersect

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Tri holds the three vertex indices of a face in counter-clockwise order.
type Tri [3]int

//
// Get min coordinate on an axis
//
// **params**
// + array of length 3 arrays of numbers representing the points
// + length 3 array of point indices for the triangle
// + index of the axis to test - 0 for x, 1 for y, 2 for z
//
// **returns**
// + the minimum coordinate
//
func minCoordOnAxis(points []vec3.T, tri *Tri, axis int) float64 {
	min := math.Inf(1)

	for _, iPt := range tri {
		if coord := points[iPt][axis]; coord < min {
			min = coord
		}
	}

	return min
}

//
// Get triangle normal
//
// **params**
// + array of length 3 arrays of numbers representing the points
// + length 3 array of point indices for the triangle
//
// **returns**
// + a normal vector represented by an array of length 3, zero for a degenerate triangle
//
func TriangleNormal(points []vec3.T, tri *Tri) vec3.T {
	n := triangleCross(points, tri)

	return *n.Normalize()
}

// Twice the area of a triangle
func TriangleDoubleArea(points []vec3.T, tri *Tri) float64 {
	n := triangleCross(points, tri)

	return n.Length()
}

func triangleCross(points []vec3.T, tri *Tri) vec3.T {
	v0 := points[tri[0]]
	v1 := points[tri[1]]
	v2 := points[tri[2]]

	v1.Sub(&v0)
	v2.Sub(&v0)
	return vec3.Cross(&v1, &v2)
}

// Closest point to p on the triangle abc, following the Voronoi region
// classification from Ericson, Real-Time Collision Detection 5.1.5.
// Vertices are returned exactly when p lies in their region.
func ClosestPointOnTriangle(p, a, b, c *vec3.T) vec3.T {
	ab := vec3.Sub(b, a)
	ac := vec3.Sub(c, a)
	ap := vec3.Sub(p, a)

	d1 := vec3.Dot(&ab, &ap)
	d2 := vec3.Dot(&ac, &ap)
	if d1 <= 0 && d2 <= 0 {
		return *a
	}

	bp := vec3.Sub(p, b)
	d3 := vec3.Dot(&ab, &bp)
	d4 := vec3.Dot(&ac, &bp)
	if d3 >= 0 && d4 <= d3 {
		return *b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return alongEdge(a, &ab, d1/(d1-d3))
	}

	cp := vec3.Sub(p, c)
	d5 := vec3.Dot(&ab, &cp)
	d6 := vec3.Dot(&ac, &cp)
	if d6 >= 0 && d5 <= d6 {
		return *c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return alongEdge(a, &ac, d2/(d2-d6))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		bc := vec3.Sub(c, b)
		return alongEdge(b, &bc, (d4-d3)/((d4-d3)+(d5-d6)))
	}

	sum := va + vb + vc
	if sum == 0 {
		// degenerate triangle, every region test above failed
		return *a
	}

	v, w := vb/sum, vc/sum
	abv := ab.Scaled(v)
	acw := ac.Scaled(w)
	pt := vec3.Add(a, &abv)
	return vec3.Add(&pt, &acw)
}

func alongEdge(origin, dir *vec3.T, t float64) vec3.T {
	scaled := dir.Scaled(t)
	return vec3.Add(origin, &scaled)
}
