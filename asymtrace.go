// Package asymtrace traces asymptotic paths on triangle meshes: polylines whose
// tangent follows a direction of zero normal curvature at every hyperbolic
// point they visit.
//
// A trace walks from a seed vertex face by face. At each point it averages the
// principal curvature frames of the nearest vertices, turns the first principal
// direction by the deviation angle of the asymptotic direction, and advances to
// the edge where that direction leaves the current face. AsymptoticPath runs
// the walk in both directions and joins the halves at the seed.
package asymtrace

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/alexozer/asymtrace/intersect"
	"github.com/alexozer/asymtrace/mesh"
)

// Mesh is the read-only surface a trace walks on. *mesh.Mesh implements it.
type Mesh interface {
	intersect.Topology

	NumVertices() int

	// ClosestVertices returns up to k vertices nearest to pt and their
	// distances, nearest first.
	ClosestVertices(pt vec3.T, k int) ([]float64, []int)

	// Frame returns the principal curvature frame of a vertex.
	Frame(i int) mesh.CurvatureFrame

	// Validate reports malformed adjacency.
	Validate() error
}

type Options struct {
	// NumSteps bounds the number of points one direction of a trace records.
	NumSteps int

	// StepSize is the length of the projected step taken from each point.
	StepSize float64

	// FirstPrincipalDirection selects the asymptotic family reached by turning
	// the first principal direction counter-clockwise; otherwise the other.
	FirstPrincipalDirection bool

	// NumNeighbors is the number of vertices averaged for the curvature frame.
	NumNeighbors int

	// SamplingDist spaces the sampled points by arc length. Zero disables
	// sampling.
	SamplingDist float64
}

var DefaultOptions = Options{
	NumSteps:                1000,
	StepSize:                0.01,
	FirstPrincipalDirection: true,
	NumNeighbors:            2,
}

// Path is an ordered polyline without consecutive duplicates.
type Path []vec3.T

// Length is the arc length of the polyline.
func (p Path) Length() float64 {
	var l float64
	for i := 1; i < len(p); i++ {
		l += vec3.Distance(&p[i-1], &p[i])
	}
	return l
}

func (p Path) Reversed() Path {
	r := make(Path, len(p))
	for i, pt := range p {
		r[len(p)-1-i] = pt
	}
	return r
}

// AngleTrace holds deviation angles in radians, one per traced point.
type AngleTrace []float64

func (a AngleTrace) Reversed() AngleTrace {
	r := make(AngleTrace, len(a))
	for i, v := range a {
		r[len(a)-1-i] = v
	}
	return r
}

func (a AngleTrace) Degrees() []float64 {
	d := make([]float64, len(a))
	for i, v := range a {
		d[i] = v * 180 / math.Pi
	}
	return d
}

// Termination tells why a walk stopped.
type Termination int

const (
	StepBudget Termination = iota
	EllipticRegion
	DegenerateDirection
	BoundaryReached
	DuplicatePoint
)

func (t Termination) String() string {
	switch t {
	case StepBudget:
		return "step budget"
	case EllipticRegion:
		return "elliptic region"
	case DegenerateDirection:
		return "degenerate direction"
	case BoundaryReached:
		return "boundary reached"
	case DuplicatePoint:
		return "duplicate point"
	}
	return "unknown"
}

// Walk is the result of tracing in one direction.
type Walk struct {
	Path        Path
	Angles      AngleTrace
	Samples     Path
	Termination Termination
}

// Curve is a full asymptotic path: the forward walk reversed, joined at the
// seed with the backward walk.
type Curve struct {
	Path    Path
	Angles  AngleTrace
	Samples Path

	Forward, Backward Termination
}
