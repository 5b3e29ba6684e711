package asymtrace

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/alexozer/asymtrace/mesh"
)

func diff(t *testing.T, want, got interface{}, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestDeviationAngle(t *testing.T) {
	require.InDelta(t, math.Pi/4, DeviationAngle(-1, 1), 1e-12)
	require.Equal(t, 0.0, DeviationAngle(0, 1))
	require.Equal(t, 0.0, DeviationAngle(0, 0))
	require.InDelta(t, math.Pi/2, DeviationAngle(-1, 0), 1e-12)

	// the normal curvature k1·cos²θ + k2·sin²θ vanishes on hyperbolic points
	for _, k := range [][2]float64{{-1, 1}, {-2, 0.5}, {-0.01, 3}, {-5, 1e-3}, {-1e-9, 1}} {
		theta := DeviationAngle(k[0], k[1])
		sin, cos := math.Sincos(theta)
		require.InDelta(t, 0, k[0]*cos*cos+k[1]*sin*sin, 1e-9, "k1=%v k2=%v", k[0], k[1])
	}
}

func TestDeviationAngleClosedForm(t *testing.T) {
	for _, k := range [][2]float64{{-1, 1}, {-2, 0.5}, {-0.5, 2}} {
		k1, k2 := k[0], k[1]
		want := 2 * math.Atan(math.Sqrt((2*math.Sqrt(k2*(k2-k1))+k1-2*k2)/k1))
		require.InDelta(t, want, DeviationAngle(k1, k2), 1e-12)
	}
}

func TestDeviationAngleElliptic(t *testing.T) {
	for _, k := range [][2]float64{{-1, -1}, {1, 2}, {-3, -0.5}} {
		theta := DeviationAngle(k[0], k[1])
		require.False(t, math.IsNaN(theta) || math.IsInf(theta, 0), "k1=%v k2=%v", k[0], k[1])
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(vec3.UnitX, math.Pi/2, vec3.UnitX, vec3.UnitY, vec3.UnitZ)
	diff(t, vec3.UnitY, got, approx)

	// a left-handed basis still turns counter-clockwise about the normal
	got = Rotate(vec3.UnitX, math.Pi/2, vec3.UnitX, vec3.T{0, -1, 0}, vec3.UnitZ)
	diff(t, vec3.UnitY, got, approx)

	got = Rotate(vec3.T{0, 2, 0}, math.Pi, vec3.UnitX, vec3.UnitY, vec3.UnitZ)
	diff(t, vec3.T{0, -2, 0}, got, approx)
}

func TestAsymptoticDirection(t *testing.T) {
	frame := mesh.CurvatureFrame{K1: -1, K2: 1, V1: vec3.UnitX, V2: vec3.UnitY, N: vec3.UnitZ}
	theta := DeviationAngle(frame.K1, frame.K2)
	s := 1 / math.Sqrt2

	diff(t, vec3.T{s, s, 0}, AsymptoticDirection(frame, theta, true, false), approx)
	diff(t, vec3.T{s, -s, 0}, AsymptoticDirection(frame, theta, false, false), approx)
	diff(t, vec3.T{-s, -s, 0}, AsymptoticDirection(frame, theta, true, true), approx)
	diff(t, vec3.T{-s, s, 0}, AsymptoticDirection(frame, theta, false, true), approx)
}

func TestPathHelpers(t *testing.T) {
	p := Path{{0, 0, 0}, {3, 4, 0}, {3, 4, 1}}
	require.InDelta(t, 6, p.Length(), 1e-12)
	diff(t, Path{{3, 4, 1}, {3, 4, 0}, {0, 0, 0}}, p.Reversed())
	require.Zero(t, Path(nil).Length())

	a := AngleTrace{0, math.Pi / 2, math.Pi}
	diff(t, []float64{0, 90, 180}, a.Degrees(), approx)
	diff(t, AngleTrace{math.Pi, math.Pi / 2, 0}, a.Reversed())

	require.Equal(t, "boundary reached", BoundaryReached.String())
	require.Equal(t, "elliptic region", EllipticRegion.String())
}
