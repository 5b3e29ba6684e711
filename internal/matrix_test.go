package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestMat2Solve(t *testing.T) {
	// 2x + y = 5, x - y = 1
	x, y, ok := Mat2Solve(2, 1, 1, -1, 5, 1)
	require.True(t, ok)
	require.InDelta(t, 2, x, 1e-12)
	require.InDelta(t, 1, y, 1e-12)
}

func TestMat2SolveSingular(t *testing.T) {
	_, _, ok := Mat2Solve(1, 2, 2, 4, 1, 1)
	require.False(t, ok)

	_, _, ok = Mat2Solve(0, 0, 0, 0, 1, 1)
	require.False(t, ok)
}

func TestPlaneBasis(t *testing.T) {
	normals := []vec3.T{
		vec3.UnitX, vec3.UnitY, vec3.UnitZ,
		{0, 0, -1},
		{1 / math.Sqrt(3), 1 / math.Sqrt(3), 1 / math.Sqrt(3)},
	}

	for _, n := range normals {
		u, w := PlaneBasis(n)
		require.InDelta(t, 1, u.Length(), 1e-12)
		require.InDelta(t, 1, w.Length(), 1e-12)
		require.InDelta(t, 0, vec3.Dot(&u, &n), 1e-12)
		require.InDelta(t, 0, vec3.Dot(&w, &n), 1e-12)
		require.InDelta(t, 0, vec3.Dot(&u, &w), 1e-12)

		cross := vec3.Cross(&u, &w)
		require.InDelta(t, 1, vec3.Dot(&cross, &n), 1e-12, "basis of %v is not right-handed", n)
	}
}
