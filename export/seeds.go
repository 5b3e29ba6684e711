package export

import (
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// ReadSeedPoints collects the Point and MultiPoint positions of a GeoJSON
// FeatureCollection in document order. Other geometry types are skipped.
func ReadSeedPoints(r io.Reader) ([]vec3.T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "while reading seed points")
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "while decoding seed points")
	}

	var seeds []vec3.T
	for i, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}

		var positions [][]float64
		switch f.Geometry.Type {
		case geojson.GeometryPoint:
			positions = [][]float64{f.Geometry.Point}
		case geojson.GeometryMultiPoint:
			positions = f.Geometry.MultiPoint
		default:
			continue
		}

		for _, pos := range positions {
			p, err := point(pos)
			if err != nil {
				return nil, errors.Wrapf(err, "feature %d", i)
			}
			seeds = append(seeds, p)
		}
	}

	return seeds, nil
}
