// Package mesh implements a read-only triangle mesh with the queries the
// asymptotic tracer needs: edge adjacency, nearest vertices, closest points on
// the surface and per-vertex principal curvature frames.
package mesh

import (
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/alexozer/asymtrace/intersect"
)

type Tri = intersect.Tri

// CurvatureFrame holds the principal curvatures at a point with K1 <= K2,
// their unit directions V1 and V2 and the unit outward normal N.
// A curvature is positive where the surface bends toward N.
type CurvatureFrame struct {
	K1, K2    float64
	V1, V2, N vec3.T
}

// Mesh is immutable after construction and safe for concurrent use.
type Mesh struct {
	Points    []vec3.T
	Faces     []Tri
	Normals   []vec3.T
	Curvature []CurvatureFrame

	faceEdges    [][3]int
	edgeVertices [][2]int
	edgeFaces    [][2]int

	faceTree   *intersect.FaceTree
	vertexTree *kdtree.Tree

	validateOnce sync.Once
	validateErr  error
}

// Build a mesh and estimate its per-vertex curvature
//
// **params**
// + vertex positions
// + counter-clockwise triangles
//
// **returns**
// + the mesh, or an error for empty input, out of range indices or
// non-manifold edges
func New(points []vec3.T, faces []Tri) (*Mesh, error) {
	this, err := newTopology(points, faces)
	if err != nil {
		return nil, err
	}

	this.Normals = vertexNormals(points, faces)
	this.Curvature = this.fitCurvature()

	glog.V(1).Infof("Built mesh with %d vertices, %d faces, %d edges",
		len(points), len(faces), len(this.edgeVertices))

	return this, nil
}

// Build a mesh using curvature frames supplied by the caller, one per vertex.
func NewWithCurvature(points []vec3.T, faces []Tri, frames []CurvatureFrame) (*Mesh, error) {
	if len(frames) != len(points) {
		return nil, errors.Errorf("got %d curvature frames for %d vertices", len(frames), len(points))
	}

	this, err := newTopology(points, faces)
	if err != nil {
		return nil, err
	}

	this.Normals = make([]vec3.T, len(frames))
	for i := range frames {
		this.Normals[i] = frames[i].N
	}
	this.Curvature = append([]CurvatureFrame(nil), frames...)

	return this, nil
}

func newTopology(points []vec3.T, faces []Tri) (*Mesh, error) {
	if len(points) == 0 || len(faces) == 0 {
		return nil, errors.New("mesh needs at least one vertex and one face")
	}

	this := &Mesh{
		Points: append([]vec3.T(nil), points...),
		Faces:  append([]Tri(nil), faces...),
	}

	if err := this.buildEdges(); err != nil {
		return nil, err
	}
	if err := this.Validate(); err != nil {
		return nil, err
	}

	this.faceTree = intersect.NewFaceTree(this.Points, this.Faces)
	this.vertexTree = newVertexTree(this.Points)

	return this, nil
}

// Edges are numbered in order of first appearance; edge k of a face joins its
// vertices k and k+1.
func (this *Mesh) buildEdges() error {
	index := make(map[[2]int]int, len(this.Faces)*3/2+1)
	this.faceEdges = make([][3]int, len(this.Faces))

	for f, tri := range this.Faces {
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a < 0 || a >= len(this.Points) || b < 0 || b >= len(this.Points) {
				return errors.Errorf("face %d references vertex out of range", f)
			}
			if a == b {
				return errors.Errorf("face %d repeats vertex %d", f, a)
			}

			key := [2]int{a, b}
			if b < a {
				key = [2]int{b, a}
			}

			e, ok := index[key]
			if !ok {
				e = len(this.edgeVertices)
				index[key] = e
				this.edgeVertices = append(this.edgeVertices, [2]int{a, b})
				this.edgeFaces = append(this.edgeFaces, [2]int{f, -1})
			} else {
				if this.edgeFaces[e][1] != -1 {
					return errors.Errorf("edge %d-%d is shared by more than two faces", key[0], key[1])
				}
				this.edgeFaces[e][1] = f
			}

			this.faceEdges[f][k] = e
		}
	}

	return nil
}

func (this *Mesh) NumVertices() int {
	return len(this.Points)
}

func (this *Mesh) NumFaces() int {
	return len(this.Faces)
}

func (this *Mesh) NumEdges() int {
	return len(this.edgeVertices)
}

func (this *Mesh) Vertex(i int) vec3.T {
	return this.Points[i]
}

func (this *Mesh) FaceEdges(f int) [3]int {
	return this.faceEdges[f]
}

func (this *Mesh) EdgeVertices(e int) [2]int {
	return this.edgeVertices[e]
}

// EdgeFaces returns the faces on both sides of an edge, -1 for a boundary side.
func (this *Mesh) EdgeFaces(e int) [2]int {
	return this.edgeFaces[e]
}

func (this *Mesh) Frame(i int) CurvatureFrame {
	return this.Curvature[i]
}

// ClosestMeshPoint returns the face holding the point of the surface closest
// to pt, and that point.
func (this *Mesh) ClosestMeshPoint(pt vec3.T) (int, vec3.T) {
	mp := this.faceTree.ClosestPoint(pt)
	return mp.FaceIndex, mp.Point
}

// BoundaryEdges lists the edges with a single incident face.
func (this *Mesh) BoundaryEdges() []int {
	var edges []int
	for e, faces := range this.edgeFaces {
		if faces[1] == -1 {
			edges = append(edges, e)
		}
	}
	return edges
}
