package intersect

import (
	"math"
	"sort"

	"github.com/ungerik/go3d/float64/vec3"
)

type BoundingBoxNode interface {
	BoundingBox() BoundingBox
}

type BoundingBoxInnerNode struct {
	bbox     BoundingBox
	children [2]BoundingBoxNode
}

func NewBoundingBoxInnerNode(bbox BoundingBox, children [2]BoundingBoxNode) *BoundingBoxInnerNode {
	return &BoundingBoxInnerNode{bbox, children}
}

func (this *BoundingBoxInnerNode) BoundingBox() BoundingBox {
	return this.bbox
}

type BoundingBoxLeaf struct {
	bbox      BoundingBox
	faceIndex int
}

func NewBoundingBoxLeaf(bbox BoundingBox, faceIndex int) *BoundingBoxLeaf {
	return &BoundingBoxLeaf{bbox, faceIndex}
}

func (this *BoundingBoxLeaf) BoundingBox() BoundingBox {
	return this.bbox
}

// FaceTree is a tree of axis aligned bounding boxes over the faces of a
// triangle mesh. It is immutable once built and safe for concurrent queries.
type FaceTree struct {
	points []vec3.T
	faces  []Tri
	root   BoundingBoxNode
}

// Build a face tree over all faces
//
// **params**
// + vertex positions
// + triangles indexing into the positions
//
// **returns**
// + the tree, with a nil root for an empty mesh
func NewFaceTree(points []vec3.T, faces []Tri) *FaceTree {
	this := &FaceTree{points: points, faces: faces}
	if len(faces) == 0 {
		return this
	}

	faceIndices := make([]int, len(faces))
	for i := range faceIndices {
		faceIndices[i] = i
	}
	this.root = this.build(faceIndices)

	return this
}

// Form axis-aligned bounding box from triangles of mesh
//
// **params**
// + face indices of the mesh to include in the bounding box
//
// **returns**
// + a BoundingBox containing the faces
//
func (this *FaceTree) BoundingBox(faceIndices []int) BoundingBox {
	bb := BoundingBox{}

	for _, iFace := range faceIndices {
		for _, iPt := range this.faces[iFace] {
			bb.Add(&this.points[iPt])
		}
	}

	return bb
}

func (this *FaceTree) build(faceIndices []int) BoundingBoxNode {
	bbox := this.BoundingBox(faceIndices)

	if len(faceIndices) == 1 {
		return NewBoundingBoxLeaf(bbox, faceIndices[0])
	}

	sortedIndices := this.SortedTrianglesOnLongestAxis(bbox, faceIndices)

	halfLen := len(sortedIndices) / 2
	leftIndices := sortedIndices[:halfLen]
	rightIndices := sortedIndices[halfLen:]

	return NewBoundingBoxInnerNode(bbox, [2]BoundingBoxNode{
		this.build(leftIndices),
		this.build(rightIndices),
	})
}

type faceCoord struct {
	FaceIndex int
	Coord     float64
}

//
// Sort particular faces of a mesh on the longest axis
//
// **params**
// + bounding box containing the faces
// + the indices of the mesh faces to inspect
//
// **returns**
// + the face indices ordered by their minimum coordinate on the axis
//
func (this *FaceTree) SortedTrianglesOnLongestAxis(bbox BoundingBox, faceIndices []int) (sortedFaceIndices []int) {
	longAxis := bbox.LongestAxis()

	minCoords := make([]faceCoord, len(faceIndices))
	for i, faceIndex := range faceIndices {
		triMin := minCoordOnAxis(this.points, &this.faces[faceIndex], longAxis)
		minCoords[i] = faceCoord{faceIndex, triMin}
	}

	sort.SliceStable(minCoords, func(i, j int) bool {
		return minCoords[i].Coord < minCoords[j].Coord
	})

	sortedFaceIndices = make([]int, len(minCoords))
	for i, faceCoord := range minCoords {
		sortedFaceIndices[i] = faceCoord.FaceIndex
	}

	return
}

// Find the point on the mesh closest to a query point
//
// **params**
// + the query point
//
// **returns**
// + a MeshPoint; FaceIndex is -1 for an empty tree. Equidistant faces resolve
// to the smallest face index.
func (this *FaceTree) ClosestPoint(pt vec3.T) MeshPoint {
	best := MeshPoint{FaceIndex: -1, Dist2: math.Inf(1)}
	if this.root != nil {
		this.closest(this.root, &pt, &best)
	}

	return best
}

func (this *FaceTree) closest(node BoundingBoxNode, pt *vec3.T, best *MeshPoint) {
	bbox := node.BoundingBox()
	if bbox.DistanceSquared(pt) > best.Dist2 {
		return
	}

	switch node := node.(type) {
	case *BoundingBoxLeaf:
		tri := this.faces[node.faceIndex]
		cp := ClosestPointOnTriangle(pt,
			&this.points[tri[0]], &this.points[tri[1]], &this.points[tri[2]])
		d2 := vec3.SquareDistance(&cp, pt)

		if d2 < best.Dist2 || (d2 == best.Dist2 && node.faceIndex < best.FaceIndex) {
			*best = MeshPoint{Point: cp, FaceIndex: node.faceIndex, Dist2: d2}
		}

	case *BoundingBoxInnerNode:
		first, second := node.children[0], node.children[1]
		bb0, bb1 := first.BoundingBox(), second.BoundingBox()
		if bb1.DistanceSquared(pt) < bb0.DistanceSquared(pt) {
			first, second = second, first
		}

		this.closest(first, pt, best)
		this.closest(second, pt, best)
	}
}
