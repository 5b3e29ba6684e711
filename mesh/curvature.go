package mesh

import (
	"math"
	"sort"

	"github.com/golang/glog"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"

	"github.com/alexozer/asymtrace/internal"
	"github.com/alexozer/asymtrace/intersect"
)

// Area weighted vertex normals, oriented by the face winding.
func vertexNormals(points []vec3.T, faces []Tri) []vec3.T {
	normals := make([]vec3.T, len(points))

	for f := range faces {
		tri := &faces[f]
		n := intersect.TriangleNormal(points, tri)
		n.Scale(intersect.TriangleDoubleArea(points, tri))

		for _, i := range tri {
			normals[i].Add(&n)
		}
	}

	for i := range normals {
		normals[i].Normalize()
	}

	return normals
}

// Vertices sharing an edge with each vertex, ascending.
func (this *Mesh) vertexRings() [][]int {
	rings := make([][]int, len(this.Points))
	for _, ev := range this.edgeVertices {
		rings[ev[0]] = append(rings[ev[0]], ev[1])
		rings[ev[1]] = append(rings[ev[1]], ev[0])
	}
	for _, ring := range rings {
		sort.Ints(ring)
	}
	return rings
}

func twoRing(rings [][]int, i int) []int {
	seen := map[int]bool{i: true}
	var out []int

	for _, j := range rings[i] {
		if !seen[j] {
			seen[j] = true
			out = append(out, j)
		}
		for _, k := range rings[j] {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}

	sort.Ints(out)
	return out
}

func (this *Mesh) fitCurvature() []CurvatureFrame {
	rings := this.vertexRings()
	frames := make([]CurvatureFrame, len(this.Points))

	for i := range this.Points {
		frames[i] = fitQuadric(this.Points[i], this.Normals[i], this.Points, twoRing(rings, i))
	}

	return frames
}

// Fit the height function h(x, y) = a x² + b xy + c y² + d x + e y over the
// neighbours in the tangent frame of n, then read the principal curvatures off
// the shape operator of the fitted graph at the origin.
//
// **params**
// + the vertex position
// + the vertex normal
// + all mesh points
// + indices of the neighbourhood
//
// **returns**
// + the frame; a flat frame in the tangent basis when the fit is impossible
func fitQuadric(p, n vec3.T, points []vec3.T, neighbors []int) CurvatureFrame {
	u, w := internal.PlaneBasis(n)
	flat := CurvatureFrame{V1: u, V2: w, N: n}

	cols := 5
	if len(neighbors) < cols {
		cols = 3
	}
	if len(neighbors) < cols || n.LengthSqr() == 0 {
		glog.Warningf("Too few neighbours (%d) to fit curvature, assuming a flat vertex", len(neighbors))
		return flat
	}

	design := mat.NewDense(len(neighbors), cols, nil)
	heights := mat.NewVecDense(len(neighbors), nil)
	for r, j := range neighbors {
		d := vec3.Sub(&points[j], &p)
		x, y := internal.Project2(&d, &u, &w)

		design.Set(r, 0, x*x)
		design.Set(r, 1, x*y)
		design.Set(r, 2, y*y)
		if cols == 5 {
			design.Set(r, 3, x)
			design.Set(r, 4, y)
		}
		heights.SetVec(r, vec3.Dot(&d, &n))
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, heights); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			glog.Warningf("Curvature fit failed, assuming a flat vertex: %v", err)
			return flat
		}
	}

	a, b, c := coef.AtVec(0), coef.AtVec(1), coef.AtVec(2)
	var gx, gy float64
	if cols == 5 {
		gx, gy = coef.AtVec(3), coef.AtVec(4)
	}

	return QuadricFrame(a, b, c, gx, gy, u, w, n)
}

// QuadricFrame computes the principal curvature frame at the origin of the
// graph h = a x² + b xy + c y² + gx x + gy y, where x, y run along the
// orthonormal u, w and h along n = u × w.
//
// The shape operator I⁻¹·II is symmetrized with the Cholesky factor of the
// first fundamental form I = L·Lᵀ before the eigen-decomposition.
func QuadricFrame(a, b, c, gx, gy float64, u, w, n vec3.T) CurvatureFrame {
	scale := math.Sqrt(1 + gx*gx + gy*gy)

	// first fundamental form
	e11, e12, e22 := 1+gx*gx, gx*gy, 1+gy*gy
	// second fundamental form
	l, m, nn := 2*a/scale, b/scale, 2*c/scale

	l11 := math.Sqrt(e11)
	l21 := e12 / l11
	l22 := math.Sqrt(e22 - l21*l21)

	// L⁻¹
	i11, i21, i22 := 1/l11, -l21/(l11*l22), 1/l22

	// L⁻¹ · II · L⁻ᵀ
	s11 := i11 * i11 * l
	s12 := i11 * (i21*l + i22*m)
	s22 := i21*i21*l + 2*i21*i22*m + i22*i22*nn

	var eig mat.EigenSym
	if !eig.Factorize(mat.NewSymDense(2, []float64{s11, s12, s12, s22}), true) {
		glog.Warningf("Shape operator eigen-decomposition failed, assuming a flat vertex")
		return CurvatureFrame{V1: u, V2: w, N: n}
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// tangent coordinates x = L⁻ᵀ y of the first eigenvector
	y1, y2 := vectors.At(0, 0), vectors.At(1, 0)
	x1 := i11*y1 + i21*y2
	x2 := i22 * y2

	// surface tangents x_u = u + gx n, x_v = w + gy n
	tu := vec3.Add(&u, ptr(n.Scaled(gx)))
	tv := vec3.Add(&w, ptr(n.Scaled(gy)))
	v1 := vec3.Add(ptr(tu.Scaled(x1)), ptr(tv.Scaled(x2)))
	v1.Normalize()

	normal := vec3.Cross(&tu, &tv)
	normal.Normalize()
	v2 := vec3.Cross(&normal, &v1)
	v2.Normalize()

	return CurvatureFrame{
		K1: values[0],
		K2: values[1],
		V1: v1,
		V2: v2,
		N:  normal,
	}
}

func ptr(v vec3.T) *vec3.T {
	return &v
}
