// Package make generates triangle meshes of simple surfaces for tracing
// experiments and tests.
package make

import (
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/alexozer/asymtrace/intersect"
	"github.com/alexozer/asymtrace/mesh"
)

// Generate the points and faces of a regular grid
//
// **params**
// + number of cells along x and y
// + function mapping a cell corner (i, j) to its position
//
// **returns**
// + (nu+1)*(nv+1) points, row by row along x, and 2*nu*nv counter-clockwise
// triangles; every cell is split along its (i, j)-(i+1, j+1) diagonal
func gridPoints(nu, nv int, at func(i, j int) vec3.T) ([]vec3.T, []intersect.Tri, error) {
	if nu < 1 || nv < 1 {
		return nil, nil, errors.Errorf("grid needs at least one cell per side, got %dx%d", nu, nv)
	}

	points := make([]vec3.T, 0, (nu+1)*(nv+1))
	for j := 0; j <= nv; j++ {
		for i := 0; i <= nu; i++ {
			points = append(points, at(i, j))
		}
	}

	idx := func(i, j int) int { return j*(nu+1) + i }

	faces := make([]intersect.Tri, 0, 2*nu*nv)
	for j := 0; j < nv; j++ {
		for i := 0; i < nu; i++ {
			a, b, c, d := idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1)
			faces = append(faces, intersect.Tri{a, b, c}, intersect.Tri{a, c, d})
		}
	}

	return points, faces, nil
}

// GridIndex is the vertex index of grid corner (i, j) in a mesh with nu cells
// along x.
func GridIndex(nu, i, j int) int {
	return j*(nu+1) + i
}

// HeightFieldPoints samples z = height(x, y) over [x0, x1]×[y0, y1].
func HeightFieldPoints(nu, nv int, x0, x1, y0, y1 float64, height func(x, y float64) float64) ([]vec3.T, []intersect.Tri, error) {
	return gridPoints(nu, nv, func(i, j int) vec3.T {
		x := x0 + (x1-x0)*float64(i)/float64(nu)
		y := y0 + (y1-y0)*float64(j)/float64(nv)
		return vec3.T{x, y, height(x, y)}
	})
}

// HeightField meshes z = height(x, y) and estimates its curvature from the
// sampled points.
func HeightField(nu, nv int, x0, x1, y0, y1 float64, height func(x, y float64) float64) (*mesh.Mesh, error) {
	points, faces, err := HeightFieldPoints(nu, nv, x0, x1, y0, y1, height)
	if err != nil {
		return nil, err
	}
	return mesh.New(points, faces)
}

// Saddle meshes z = (x² − y²)/2 over [−half, half]² with exact curvature
// frames. Its principal curvatures at the origin are −1 and 1 and its
// asymptotic lines are the straight rulings x ± y = const.
func Saddle(nu, nv int, half float64) (*mesh.Mesh, error) {
	points, faces, err := HeightFieldPoints(nu, nv, -half, half, -half, half, func(x, y float64) float64 {
		return (x*x - y*y) / 2
	})
	if err != nil {
		return nil, err
	}

	frames := make([]mesh.CurvatureFrame, len(points))
	for i, p := range points {
		frames[i] = mesh.QuadricFrame(0.5, 0, -0.5, p[0], -p[1], vec3.UnitX, vec3.UnitY, vec3.UnitZ)
	}

	return mesh.NewWithCurvature(points, faces, frames)
}

// Plane meshes the square [−half, half]² at z = 0 with zero curvature.
func Plane(nu, nv int, half float64) (*mesh.Mesh, error) {
	points, faces, err := HeightFieldPoints(nu, nv, -half, half, -half, half, func(x, y float64) float64 {
		return 0
	})
	if err != nil {
		return nil, err
	}

	frames := make([]mesh.CurvatureFrame, len(points))
	for i := range frames {
		frames[i] = mesh.CurvatureFrame{V1: vec3.UnitX, V2: vec3.UnitY, N: vec3.UnitZ}
	}

	return mesh.NewWithCurvature(points, faces, frames)
}
