package mesh

import (
	"math"
	"sort"

	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// vertex is a kdtree.Comparable carrying its mesh index.
type vertex struct {
	index int
	pos   vec3.T
}

func (p vertex) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(vertex)
	return p.pos[d] - q.pos[d]
}

func (p vertex) Dims() int { return 3 }

func (p vertex) Distance(c kdtree.Comparable) float64 {
	q := c.(vertex)
	return vec3.SquareDistance(&p.pos, &q.pos)
}

type vertices []vertex

func (p vertices) Index(i int) kdtree.Comparable         { return p[i] }
func (p vertices) Len() int                              { return len(p) }
func (p vertices) Pivot(d kdtree.Dim) int                { return plane{vertices: p, Dim: d}.Pivot() }
func (p vertices) Slice(start, end int) kdtree.Interface { return p[start:end] }

type plane struct {
	kdtree.Dim
	vertices
}

func (p plane) Less(i, j int) bool { return p.vertices[i].pos[p.Dim] < p.vertices[j].pos[p.Dim] }
func (p plane) Pivot() int         { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.vertices = p.vertices[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
}

func newVertexTree(points []vec3.T) *kdtree.Tree {
	vs := make(vertices, len(points))
	for i, pt := range points {
		vs[i] = vertex{index: i, pos: pt}
	}
	return kdtree.New(vs, false)
}

// ClosestVertices returns the k vertices nearest to pt with their Euclidean
// distances, nearest first. Equidistant vertices are ordered by index.
func (this *Mesh) ClosestVertices(pt vec3.T, k int) ([]float64, []int) {
	if k > len(this.Points) {
		k = len(this.Points)
	}
	if k <= 0 {
		return nil, nil
	}

	query := vertex{index: -1, pos: pt}

	// the k nearest fix the cutoff distance; every vertex at that distance is
	// then gathered so that ties at the cutoff are settled by index
	keep := kdtree.NewNKeeper(k)
	this.vertexTree.NearestSet(keep, query)

	cutoff := math.Inf(-1)
	for _, c := range keep.Heap {
		if c.Comparable != nil && c.Dist > cutoff {
			cutoff = c.Dist
		}
	}

	within := kdtree.NewDistKeeper(cutoff)
	this.vertexTree.NearestSet(within, query)

	found := make([]kdtree.ComparableDist, 0, len(within.Heap))
	for _, c := range within.Heap {
		if c.Comparable != nil {
			found = append(found, c)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Dist != found[j].Dist {
			return found[i].Dist < found[j].Dist
		}
		return found[i].Comparable.(vertex).index < found[j].Comparable.(vertex).index
	})

	if len(found) > k {
		found = found[:k]
	}

	dists := make([]float64, len(found))
	indices := make([]int, len(found))
	for i, c := range found {
		dists[i] = math.Sqrt(c.Dist)
		indices[i] = c.Comparable.(vertex).index
	}

	return dists, indices
}
