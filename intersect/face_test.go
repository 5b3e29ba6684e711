package intersect_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/alexozer/asymtrace/intersect"
	makemesh "github.com/alexozer/asymtrace/make"
)

func TestFaceExitInterior(t *testing.T) {
	// cells are 0.25 wide
	m, err := makemesh.Plane(8, 8, 1)
	require.NoError(t, err)

	origin := m.Vertex(makemesh.GridIndex(8, 4, 4))
	exit, boundary := intersect.FaceExit(m, origin, vec3.T{0.01, 0, 0})

	require.False(t, boundary)
	require.InDelta(t, 0.25, exit[0], 1e-12)
	require.InDelta(t, 0, exit[1], 1e-12)
}

func TestFaceExitDiagonal(t *testing.T) {
	m, err := makemesh.Plane(8, 8, 1)
	require.NoError(t, err)

	// from the middle of a cell towards its upper right corner
	origin := vec3.T{0.1, 0.05, 0}
	exit, boundary := intersect.FaceExit(m, origin, vec3.T{0.01, 0.01, 0})

	require.False(t, boundary)
	require.InDelta(t, 0.25, exit[0], 1e-9)
	require.InDelta(t, 0.2, exit[1], 1e-9)
}

func TestFaceExitBoundary(t *testing.T) {
	m, err := makemesh.Plane(8, 8, 1)
	require.NoError(t, err)

	origin := vec3.T{0.9, 0.1, 0}
	exit, boundary := intersect.FaceExit(m, origin, vec3.T{0.05, 0, 0})

	require.True(t, boundary)
	require.InDelta(t, 1, exit[0], 1e-9)
	require.InDelta(t, 0.1, exit[1], 1e-9)
}

func TestFaceExitOffMesh(t *testing.T) {
	m, err := makemesh.Plane(8, 8, 1)
	require.NoError(t, err)

	// stepping off a boundary vertex projects back onto it
	origin := m.Vertex(makemesh.GridIndex(8, 8, 4))
	exit, boundary := intersect.FaceExit(m, origin, vec3.T{0.1, 0, 0})

	require.True(t, boundary)
	require.Equal(t, origin, exit)
}

func TestBoundaryEdges(t *testing.T) {
	m, err := makemesh.Plane(2, 2, 1)
	require.NoError(t, err)

	edges := m.BoundaryEdges()
	require.Len(t, edges, 8)
	for _, e := range edges {
		require.True(t, intersect.IsBoundaryEdge(m, e))
	}
	require.Equal(t, 16, m.NumEdges())

	n := intersect.FaceNormal(m, 0)
	require.InDelta(t, 1, n[2], 1e-12)
}

func TestFaceExitCornerTie(t *testing.T) {
	m, err := makemesh.Plane(8, 8, 1)
	require.NoError(t, err)

	// heading for the vertex (1, 0), shared by the interior edge y = 0 and the
	// boundary edge x = 1
	dir := vec3.T{0.1, -0.05, 0}
	dir.Normalize().Scale(0.01)
	exit, boundary := intersect.FaceExit(m, vec3.T{0.9, 0.05, 0}, dir)

	require.True(t, boundary)
	require.InDelta(t, 1, exit[0], 1e-9)
	require.InDelta(t, 0, exit[1], 1e-9)

	// the same tie at an interior vertex keeps walking
	dir = vec3.T{0.1, -0.05, 0}
	dir.Normalize().Scale(0.01)
	exit, boundary = intersect.FaceExit(m, vec3.T{0.15, 0.05, 0}, dir)

	require.False(t, boundary)
	require.InDelta(t, 0.25, exit[0], 1e-9)
	require.InDelta(t, 0, exit[1], 1e-9)
}

func TestFaceExitDriftedCorner(t *testing.T) {
	m, err := makemesh.Plane(8, 8, 1)
	require.NoError(t, err)

	// a boundary vertex reached through edge interpolation, off by rounding
	origin := vec3.T{-0.9999999999999998, 1.66e-16, 0}
	exit, boundary := intersect.FaceExit(m, origin, vec3.T{-0.01, 0, 0})

	require.True(t, boundary)
	require.InDelta(t, -1, exit[0], 1e-9)
	require.InDelta(t, 0, exit[1], 1e-9)

	// approaching the same corner along the edge y = 0
	_, boundary = intersect.FaceExit(m, vec3.T{-0.875, 0, 0}, vec3.T{-0.01, 0, 0})
	require.True(t, boundary)
}
