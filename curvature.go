package asymtrace

import (
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/alexozer/asymtrace/mesh"
)

// EstimateCurvature averages the curvature frames of the numNeighbors vertices
// closest to pt, weighting each by its inverse distance. A point within eps of
// a vertex takes that vertex's frame unchanged. When the averaged basis
// collapses the nearest vertex's frame is returned instead.
func EstimateCurvature(m Mesh, pt vec3.T, numNeighbors int, eps float64) mesh.CurvatureFrame {
	dists, neighbors := m.ClosestVertices(pt, numNeighbors)
	if len(neighbors) == 0 {
		return mesh.CurvatureFrame{}
	}

	nearest := m.Frame(neighbors[0])
	if dists[0] < eps || len(neighbors) == 1 {
		return nearest
	}

	var wsum float64
	weights := make([]float64, len(dists))
	for i, d := range dists {
		weights[i] = 1 / d
		wsum += weights[i]
	}

	var avg mesh.CurvatureFrame
	for i, j := range neighbors {
		f := m.Frame(j)
		w := weights[i] / wsum

		avg.K1 += w * f.K1
		avg.K2 += w * f.K2

		v1 := alignSign(f.V1, nearest.V1)
		v2 := alignSign(f.V2, nearest.V2)
		n := alignSign(f.N, nearest.N)
		avg.V1.Add(ptr(v1.Scaled(w)))
		avg.V2.Add(ptr(v2.Scaled(w)))
		avg.N.Add(ptr(n.Scaled(w)))
	}

	frame, ok := orthonormalize(avg)
	if !ok {
		return nearest
	}
	return frame
}

// alignSign flips v when it points away from ref. Principal directions are
// only defined up to sign; ref is the direction every other is compared with.
func alignSign(v, ref vec3.T) vec3.T {
	if vec3.Dot(&v, &ref) < 0 {
		return v.Scaled(-1)
	}
	return v
}

// orthonormalize applies Gram-Schmidt in the order N, V1, V2.
func orthonormalize(f mesh.CurvatureFrame) (mesh.CurvatureFrame, bool) {
	n, ok := unit(f.N)
	if !ok {
		return f, false
	}

	v1 := reject(f.V1, n)
	if v1, ok = unit(v1); !ok {
		return f, false
	}

	v2 := reject(reject(f.V2, n), v1)
	if v2, ok = unit(v2); !ok {
		return f, false
	}

	f.N, f.V1, f.V2 = n, v1, v2
	return f, true
}

// reject removes the component of v along the unit vector axis.
func reject(v, axis vec3.T) vec3.T {
	along := axis.Scaled(vec3.Dot(&v, &axis))
	return vec3.Sub(&v, &along)
}

func unit(v vec3.T) (vec3.T, bool) {
	l := v.Length()
	if l < zeroLength {
		return v, false
	}
	return v.Scaled(1 / l), true
}

func ptr(v vec3.T) *vec3.T {
	return &v
}
