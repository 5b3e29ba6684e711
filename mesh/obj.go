package mesh

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// ParseOBJ reads the vertex and face records of a Wavefront OBJ stream.
// Polygons are split into fans around their first vertex. Texture and normal
// references (v/vt/vn) are ignored; negative indices count from the end.
func ParseOBJ(r io.Reader) ([]vec3.T, []Tri, error) {
	var (
		points []vec3.T
		faces  []Tri
	)

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, errors.Errorf("line %d: vertex needs three coordinates", lineNo)
			}
			var pt vec3.T
			for i := range pt {
				val, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, nil, errors.Wrapf(err, "line %d", lineNo)
				}
				pt[i] = val
			}
			points = append(points, pt)

		case "f":
			if len(fields) < 4 {
				return nil, nil, errors.Errorf("line %d: face needs at least three vertices", lineNo)
			}
			poly := make([]int, len(fields)-1)
			for i, field := range fields[1:] {
				idx, err := objIndex(field, len(points))
				if err != nil {
					return nil, nil, errors.Wrapf(err, "line %d", lineNo)
				}
				poly[i] = idx
			}
			for i := 1; i+1 < len(poly); i++ {
				faces = append(faces, Tri{poly[0], poly[i], poly[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading obj")
	}

	return points, faces, nil
}

func objIndex(field string, numPoints int) (int, error) {
	if slash := strings.IndexByte(field, '/'); slash >= 0 {
		field = field[:slash]
	}

	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, errors.Wrapf(err, "bad face index %q", field)
	}

	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx += numPoints
	default:
		return 0, errors.New("face index 0 is invalid")
	}

	if idx < 0 || idx >= numPoints {
		return 0, errors.Errorf("face index %s out of range", field)
	}
	return idx, nil
}

// ReadOBJ parses an OBJ stream and builds a mesh from it.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	points, faces, err := ParseOBJ(r)
	if err != nil {
		return nil, err
	}
	return New(points, faces)
}

func ReadOBJFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening mesh %s", path)
	}
	defer f.Close()

	m, err := ReadOBJ(f)
	return m, errors.Wrapf(err, "loading mesh %s", path)
}
