// Package export writes asymptotic paths as GeoJSON and reads seed points back
// from GeoJSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/alexozer/asymtrace"
)

func coords(path asymtrace.Path) []geom.Coord {
	out := make([]geom.Coord, len(path))
	for i, p := range path {
		out[i] = geom.Coord{p[0], p[1], p[2]}
	}
	return out
}

// Features encodes a curve traced from a seed vertex: an XYZ LineString for the
// path and, when sampling produced points, a MultiPoint for the samples.
func Features(seed int, curve *asymtrace.Curve) []*geojson.Feature {
	props := map[string]interface{}{
		"seed":     seed,
		"angles":   curve.Angles.Degrees(),
		"length":   curve.Path.Length(),
		"forward":  curve.Forward.String(),
		"backward": curve.Backward.String(),
	}

	features := []*geojson.Feature{{
		ID:         fmt.Sprintf("path-%d", seed),
		Geometry:   geom.NewLineString(geom.XYZ).MustSetCoords(coords(curve.Path)),
		Properties: props,
	}}

	if len(curve.Samples) > 0 {
		features = append(features, &geojson.Feature{
			ID:         fmt.Sprintf("samples-%d", seed),
			Geometry:   geom.NewMultiPoint(geom.XYZ).MustSetCoords(coords(curve.Samples)),
			Properties: map[string]interface{}{"seed": seed},
		})
	}

	return features
}

// WriteFeatureCollection writes the features as one GeoJSON FeatureCollection.
func WriteFeatureCollection(w io.Writer, features []*geojson.Feature) error {
	fc := &geojson.FeatureCollection{Features: features}
	data, err := json.Marshal(fc)
	if err != nil {
		return errors.Wrap(err, "while encoding feature collection")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "while writing feature collection")
	}
	return nil
}

// point converts a 2D or 3D GeoJSON position; a missing z is 0.
func point(pos []float64) (vec3.T, error) {
	if len(pos) < 2 {
		return vec3.T{}, errors.Errorf("position needs at least 2 coordinates, got %d", len(pos))
	}
	p := vec3.T{pos[0], pos[1], 0}
	if len(pos) > 2 {
		p[2] = pos[2]
	}
	return p, nil
}
