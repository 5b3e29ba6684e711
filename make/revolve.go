package make

import (
	"math"

	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/alexozer/asymtrace/internal"
	"github.com/alexozer/asymtrace/intersect"
	"github.com/alexozer/asymtrace/mesh"
)

// Generate a spherical cap by revolving a meridian arc about the z axis
//
// **params**
// + sphere radius
// + polar angle of the cap rim, in (0, π)
// + number of rings from pole to rim
// + number of segments around the axis
//
// **returns**
// + the mesh with exact frames: both principal curvatures are −1/radius with
// outward normals, so every point is elliptic. Vertex 0 is the pole.
func SphereCap(radius, maxPolar float64, rings, segments int) (*mesh.Mesh, error) {
	if radius <= 0 || maxPolar <= 0 || maxPolar >= math.Pi {
		return nil, errors.Errorf("invalid cap radius %v, polar angle %v", radius, maxPolar)
	}
	if rings < 1 || segments < 3 {
		return nil, errors.Errorf("cap needs at least 1 ring and 3 segments, got %d, %d", rings, segments)
	}

	points := []vec3.T{{0, 0, radius}}
	for r := 1; r <= rings; r++ {
		polar := maxPolar * float64(r) / float64(rings)
		sinP, cosP := math.Sincos(polar)

		for s := 0; s < segments; s++ {
			sinA, cosA := math.Sincos(2 * math.Pi * float64(s) / float64(segments))
			points = append(points, vec3.T{radius * sinP * cosA, radius * sinP * sinA, radius * cosP})
		}
	}

	idx := func(r, s int) int { return 1 + (r-1)*segments + s%segments }

	var faces []intersect.Tri
	for s := 0; s < segments; s++ {
		faces = append(faces, intersect.Tri{0, idx(1, s), idx(1, s+1)})
	}
	for r := 1; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a, b, c, d := idx(r, s), idx(r+1, s), idx(r+1, s+1), idx(r, s+1)
			faces = append(faces, intersect.Tri{a, b, c}, intersect.Tri{a, c, d})
		}
	}

	k := -1 / radius
	frames := make([]mesh.CurvatureFrame, len(points))
	for i, p := range points {
		n := p.Scaled(1 / radius)
		u, w := internal.PlaneBasis(n)
		frames[i] = mesh.CurvatureFrame{K1: k, K2: k, V1: u, V2: w, N: n}
	}

	return mesh.NewWithCurvature(points, faces, frames)
}
