package make

import (
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/alexozer/asymtrace/mesh"
)

// Generate the bilinear surface spanned by 4 points. Non-planar corners give a
// hyperbolic paraboloid whose grid lines are its asymptotic rulings.
//
// **params**
// + first point in counter-clockwise form
// + second point in counter-clockwise form
// + third point in counter-clockwise form
// + forth point in counter-clockwise form
// + number of cells along p1-p2 and along p1-p4
//
// **returns**
// + the mesh with curvature estimated from the sampled points
func FourPointSurface(p1, p2, p3, p4 *vec3.T, nu, nv int) (*mesh.Mesh, error) {
	points, faces, err := gridPoints(nu, nv, func(i, j int) vec3.T {
		s := float64(i) / float64(nu)
		t := float64(j) / float64(nv)

		p1p2 := vec3.Interpolate(p1, p2, s)
		p4p3 := vec3.Interpolate(p4, p3, s)
		return vec3.Interpolate(&p1p2, &p4p3, t)
	})
	if err != nil {
		return nil, err
	}

	return mesh.New(points, faces)
}
