package asymtrace

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/alexozer/asymtrace/mesh"
)

// Angle between the first principal direction and an asymptotic direction
//
//	θ = 2·atan( sqrt( (2·sqrt(k2·(k2−k1)) + k1 − 2·k2) / k1 ) )
//
// evaluated as 2·atan(sqrt(−k1·k2 / (s + k2)²)), s = sqrt(k2·(k2−k1)), which
// is the same quantity without the cancellation near k1 = 0. Negative
// radicands clamp to zero, so elliptic input yields a finite angle.
//
// **params**
// + the principal curvatures, k1 <= k2
//
// **returns**
// + the angle in radians; 0 when k1 is zero since the first principal
// direction is then asymptotic itself
func DeviationAngle(k1, k2 float64) float64 {
	if k1 == 0 {
		return 0
	}

	inner := k2 * (k2 - k1)
	s := math.Sqrt(math.Max(0, inner))

	var ratio float64
	if d := s + k2; inner >= 0 && d > 0 {
		ratio = -k1 * k2 / (d * d)
	} else {
		ratio = (2*s + k1 - 2*k2) / k1
	}

	return 2 * math.Atan(math.Sqrt(math.Max(0, ratio)))
}

// Rotate a tangent vector about the normal
//
// **params**
// + the vector, expressed through its components along v1 and v2
// + signed angle in radians, counter-clockwise seen from the tip of normal
// + orthonormal tangent basis
// + the normal orienting the rotation
//
// **returns**
// + the rotated vector in the span of v1 and v2
func Rotate(dir vec3.T, angle float64, v1, v2, normal vec3.T) vec3.T {
	// a left-handed basis turns the other way round the normal
	if cross := vec3.Cross(&v1, &v2); vec3.Dot(&cross, &normal) < 0 {
		angle = -angle
	}

	x, y := vec3.Dot(&dir, &v1), vec3.Dot(&dir, &v2)
	sin, cos := math.Sincos(angle)

	rx := v1.Scaled(x*cos - y*sin)
	ry := v2.Scaled(x*sin + y*cos)
	return vec3.Add(&rx, &ry)
}

// AsymptoticDirection turns the first principal direction of a frame by the
// deviation angle: counter-clockwise for the first family, clockwise for the
// other. Backward walks add π to the angle before the turn.
func AsymptoticDirection(frame mesh.CurvatureFrame, theta float64, first, backwards bool) vec3.T {
	if backwards {
		theta += math.Pi
	}
	if !first {
		theta = -theta
	}

	return Rotate(frame.V1, theta, frame.V1, frame.V2, frame.N)
}
