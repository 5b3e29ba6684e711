package asymtrace

import (
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/alexozer/asymtrace/internal"
	"github.com/alexozer/asymtrace/intersect"
)

const zeroLength = internal.Tolerance

// Trace walks from a seed vertex along one asymptotic direction.
//
// Each iteration records the current point and its deviation angle, then stops
// on the first of: step budget exhausted, elliptic point (k1·k2 > 0), zero
// direction, boundary edge reached, or no progress. A boundary edge point is
// recorded only when the walk already holds more than its seed, so on that exit
// Path is one longer than Angles; otherwise both have the same length.
//
// backwards mirrors the walk by turning the direction a further π; the angles
// recorded are not mirrored.
func Trace(m Mesh, seed int, opts Options, backwards bool) (*Walk, error) {
	if err := checkTrace(m, seed, opts); err != nil {
		return nil, err
	}

	walk := &Walk{Termination: StepBudget}
	pt := m.Vertex(seed)
	var partialDist float64

	for len(walk.Path) < opts.NumSteps {
		walk.Path = append(walk.Path, pt)

		frame := EstimateCurvature(m, pt, opts.NumNeighbors, internal.Epsilon)
		theta := DeviationAngle(frame.K1, frame.K2)
		walk.Angles = append(walk.Angles, theta)

		if frame.K1*frame.K2 > 0 {
			walk.Termination = EllipticRegion
			break
		}

		dir := AsymptoticDirection(frame, theta, opts.FirstPrincipalDirection, backwards)
		length := dir.Length()
		if length < zeroLength || math.IsNaN(length) {
			walk.Termination = DegenerateDirection
			break
		}
		dir.Scale(1 / length)

		// keep heading the way the path already goes
		n := len(walk.Path)
		if n > 1 {
			prev := vec3.Sub(&walk.Path[n-1], &walk.Path[n-2])
			dir = alignSign(dir, prev)
		}

		dir.Scale(opts.StepSize)
		if dir.LengthSqr() == 0 {
			walk.Termination = DegenerateDirection
			break
		}

		next, boundary := intersect.FaceExit(m, pt, dir)
		if boundary {
			if n > 1 && vec3.Distance(&next, &pt) >= internal.Epsilon {
				walk.Path = append(walk.Path, next)
			}
			walk.Termination = BoundaryReached
			break
		}

		dist := vec3.Distance(&next, &pt)
		if dist < internal.Epsilon {
			walk.Termination = DuplicatePoint
			break
		}

		if opts.SamplingDist > 0 {
			partialDist += dist
			if partialDist >= opts.SamplingDist {
				partialDist = 0
				walk.Samples = append(walk.Samples, next)
			}
		}

		pt = next
	}

	glog.V(2).Infof("Trace from vertex %d (backwards=%v) stopped on %v with %d points",
		seed, backwards, walk.Termination, len(walk.Path))

	return walk, nil
}

func checkTrace(m Mesh, seed int, opts Options) error {
	if m == nil {
		return errors.New("nil mesh")
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if seed < 0 || seed >= m.NumVertices() {
		return errors.Errorf("seed vertex %d out of range [0, %d)", seed, m.NumVertices())
	}
	return errors.Wrap(m.Validate(), "invalid mesh")
}

// Validate rejects options no trace can run with.
func (o Options) Validate() error {
	switch {
	case o.NumSteps < 0:
		return errors.Errorf("negative step count %d", o.NumSteps)
	case o.StepSize < 0 || math.IsNaN(o.StepSize) || math.IsInf(o.StepSize, 0):
		return errors.Errorf("invalid step size %v", o.StepSize)
	case o.NumNeighbors < 1:
		return errors.Errorf("need at least one neighbour, got %d", o.NumNeighbors)
	case o.SamplingDist < 0 || math.IsNaN(o.SamplingDist):
		return errors.Errorf("invalid sampling distance %v", o.SamplingDist)
	}
	return nil
}
