package mesh

import "github.com/pkg/errors"

// Validate checks that the edges of every face close into a loop over the
// face's three vertices and that every edge names its incident faces
// consistently. The result is computed once.
func (this *Mesh) Validate() error {
	this.validateOnce.Do(func() {
		this.validateErr = this.validate()
	})
	return this.validateErr
}

func (this *Mesh) validate() error {
	if len(this.faceEdges) != len(this.Faces) {
		return errors.Errorf("%d faces but %d face edge loops", len(this.Faces), len(this.faceEdges))
	}
	if len(this.edgeFaces) != len(this.edgeVertices) {
		return errors.Errorf("%d edges but %d edge face pairs", len(this.edgeVertices), len(this.edgeFaces))
	}

	for f, edges := range this.faceEdges {
		tri := this.Faces[f]

		for k, e := range edges {
			if e < 0 || e >= len(this.edgeVertices) {
				return errors.Errorf("face %d: edge %d out of range", f, e)
			}

			// consecutive edges share exactly the vertex between them
			next := edges[(k+1)%3]
			if next < 0 || next >= len(this.edgeVertices) {
				return errors.Errorf("face %d: edge %d out of range", f, next)
			}
			if shared, ok := sharedVertex(this.edgeVertices[e], this.edgeVertices[next]); !ok || shared != tri[(k+1)%3] {
				return errors.Errorf("face %d: edges %d and %d do not close a loop", f, e, next)
			}

			faces := this.edgeFaces[e]
			if faces[0] != f && faces[1] != f {
				return errors.Errorf("face %d: edge %d does not list it as incident", f, e)
			}
		}
	}

	for e, faces := range this.edgeFaces {
		if faces[0] < 0 {
			return errors.Errorf("edge %d has no incident face", e)
		}
		for _, f := range faces {
			if f >= len(this.Faces) {
				return errors.Errorf("edge %d references face %d out of range", e, f)
			}
		}
	}

	return nil
}

func sharedVertex(a, b [2]int) (int, bool) {
	switch {
	case a == b || a == [2]int{b[1], b[0]}:
		return 0, false
	case a[0] == b[0] || a[0] == b[1]:
		return a[0], true
	case a[1] == b[0] || a[1] == b[1]:
		return a[1], true
	}
	return 0, false
}
