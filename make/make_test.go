package make

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestGrid(t *testing.T) {
	points, faces, err := HeightFieldPoints(3, 2, 0, 3, 0, 2, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	require.Len(t, points, 12)
	require.Len(t, faces, 12)
	require.Equal(t, vec3.T{2, 1, 3}, points[GridIndex(3, 2, 1)])

	_, _, err = HeightFieldPoints(0, 2, 0, 1, 0, 1, func(x, y float64) float64 { return 0 })
	require.Error(t, err)
}

func TestSaddleFrames(t *testing.T) {
	m, err := Saddle(8, 8, 1)
	require.NoError(t, err)

	center := m.Frame(GridIndex(8, 4, 4))
	require.InDelta(t, -1, center.K1, 1e-12)
	require.InDelta(t, 1, center.K2, 1e-12)

	for i := 0; i < m.NumVertices(); i++ {
		f := m.Frame(i)
		require.Less(t, f.K1*f.K2, 0.0, "vertex %d is not hyperbolic", i)
		require.Greater(t, f.N[2], 0.0)
	}
}

func TestPlane(t *testing.T) {
	m, err := Plane(4, 4, 2)
	require.NoError(t, err)
	require.Equal(t, 25, m.NumVertices())
	require.Len(t, m.BoundaryEdges(), 16)

	f := m.Frame(0)
	require.Zero(t, f.K1)
	require.Zero(t, f.K2)
}

func TestFourPointSurface(t *testing.T) {
	// z = xy over the unit square
	m, err := FourPointSurface(&vec3.T{0, 0, 0}, &vec3.T{1, 0, 0}, &vec3.T{1, 1, 1}, &vec3.T{0, 1, 0}, 10, 10)
	require.NoError(t, err)

	for _, ij := range [][2]int{{5, 5}, {3, 6}, {7, 2}} {
		idx := GridIndex(10, ij[0], ij[1])
		p := m.Vertex(idx)
		require.InDelta(t, p[0]*p[1], p[2], 1e-12)

		f := m.Frame(idx)
		require.Less(t, f.K1, 0.0)
		require.Greater(t, f.K2, 0.0)
	}

	// at the centre the Gaussian curvature of z = xy is -1/(1+x²+y²)² = -1/2.25
	f := m.Frame(GridIndex(10, 5, 5))
	require.InDelta(t, -1/2.25, f.K1*f.K2, 0.05)
}

func TestSphereCap(t *testing.T) {
	m, err := SphereCap(2, math.Pi/3, 4, 12)
	require.NoError(t, err)
	require.Equal(t, 1+4*12, m.NumVertices())
	require.Equal(t, 12+2*3*12, m.NumFaces())
	require.Len(t, m.BoundaryEdges(), 12)

	for i := 0; i < m.NumVertices(); i++ {
		p, f := m.Vertex(i), m.Frame(i)
		require.InDelta(t, 2, p.Length(), 1e-12)
		require.InDelta(t, -0.5, f.K1, 1e-12)
		require.Greater(t, f.K1*f.K2, 0.0)
		require.InDelta(t, 1, vec3.Dot(&p, &f.N)/2, 1e-12)
	}

	_, err = SphereCap(1, math.Pi, 4, 12)
	require.Error(t, err)
	_, err = SphereCap(1, 1, 4, 2)
	require.Error(t, err)
}
