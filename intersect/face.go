package intersect

import (
	"math"

	"github.com/alexozer/asymtrace/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Topology is the read-only mesh view the face walk needs.
// EdgeFaces reports -1 for a side without a face.
type Topology interface {
	Vertex(i int) vec3.T
	FaceEdges(f int) [3]int
	EdgeVertices(e int) [2]int
	EdgeFaces(e int) [2]int
	ClosestMeshPoint(pt vec3.T) (int, vec3.T)
}

// IsBoundaryEdge reports whether an edge lacks a face on one side.
func IsBoundaryEdge(m Topology, e int) bool {
	faces := m.EdgeFaces(e)
	return faces[0] == -1 || faces[1] == -1
}

// FaceNormal computes the unit normal of a face from its edge loop. It is zero
// for a degenerate face.
func FaceNormal(m Topology, f int) vec3.T {
	edges := m.FaceEdges(f)
	e0, e1 := m.EdgeVertices(edges[0]), m.EdgeVertices(edges[1])

	p0, p1 := m.Vertex(e0[0]), m.Vertex(e0[1])
	q0, q1 := m.Vertex(e1[0]), m.Vertex(e1[1])
	a := vec3.Sub(&p1, &p0)
	b := vec3.Sub(&q1, &q0)
	n := vec3.Cross(&a, &b)

	return *n.Normalize()
}

// Walk from origin along dir across the face that contains the projection of
// origin+dir onto the mesh, and find where the walk leaves that face.
//
// **params**
// + the mesh
// + start of the step, on the mesh
// + step vector, scaled to the step size
//
// **returns**
// + the point on the exit edge, or the projected mesh point when no edge qualifies
// + true when the exit edge, or an edge tied with it at a shared vertex, lies
// on the mesh boundary, or when the projection stays within Epsilon of origin
func FaceExit(m Topology, origin, dir vec3.T) (vec3.T, bool) {
	target := vec3.Add(&origin, &dir)
	face, meshPoint := m.ClosestMeshPoint(target)
	eps := internal.Epsilon

	// no travel across the surface: the step points off the mesh
	proj := vec3.Sub(&meshPoint, &origin)
	length := proj.Length()
	if length < eps {
		return meshPoint, true
	}
	proj.Scale(1 / length)

	normal := FaceNormal(m, face)
	if normal.LengthSqr() == 0 {
		return meshPoint, false
	}

	// edges tied with the best one report a boundary if any of them is one
	bestEdge, bestU, bestT, boundary := -1, math.Inf(1), 0.0, false
	for _, e := range m.FaceEdges(face) {
		ev := m.EdgeVertices(e)
		eOrig, eEnd := m.Vertex(ev[0]), m.Vertex(ev[1])
		eDir := vec3.Sub(&eEnd, &eOrig)

		hit, event := Segments(eOrig, eDir, origin, proj, normal, eps)
		if event == Collinear {
			continue
		}

		// the edge must be crossed within its extent, ahead of origin and
		// no earlier than the projected point, which lies inside the face
		if hit.T < -eps || hit.T > 1+eps {
			continue
		}
		if hit.U <= eps || hit.U < length-eps {
			continue
		}

		switch {
		case bestEdge == -1, hit.U < bestU-eps:
			bestEdge, bestU, bestT = e, hit.U, hit.T
			boundary = IsBoundaryEdge(m, e)
		case math.Abs(hit.U-bestU) <= eps:
			boundary = boundary || IsBoundaryEdge(m, e)
			if e < bestEdge {
				bestEdge, bestU, bestT = e, math.Min(hit.U, bestU), hit.T
			}
		}
	}

	if bestEdge == -1 {
		return meshPoint, false
	}

	ev := m.EdgeVertices(bestEdge)
	eOrig, eEnd := m.Vertex(ev[0]), m.Vertex(ev[1])
	eDir := vec3.Sub(&eEnd, &eOrig)
	exit := alongEdge(&eOrig, &eDir, math.Max(0, math.Min(1, bestT)))

	return exit, boundary
}
