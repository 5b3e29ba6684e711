package intersect

import "github.com/ungerik/go3d/float64/vec3"

// Event classifies the outcome of a line/line intersection test.
type Event int

const (
	// Crossing means the lines meet at a unique point.
	Crossing Event = iota
	// Collinear means the directions are parallel; no parameters exist.
	Collinear
)

func (e Event) String() string {
	switch e {
	case Crossing:
		return "crossing"
	case Collinear:
		return "collinear"
	}
	return "unknown"
}

type (
	SegmentIntersection struct {
		T float64 // the parameter along the first segment
		U float64 // the parameter along the second segment
	}

	MeshPoint struct {
		Point     vec3.T
		FaceIndex int
		Dist2     float64 // squared distance from the query point
	}
)
