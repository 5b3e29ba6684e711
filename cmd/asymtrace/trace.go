package main

import (
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/geojson"
	"golang.org/x/sync/errgroup"

	"github.com/alexozer/asymtrace"
	"github.com/alexozer/asymtrace/export"
	makemesh "github.com/alexozer/asymtrace/make"
	"github.com/alexozer/asymtrace/mesh"
)

var Trace SubCommand

func initTrace() {
	Trace.Cmd = &cobra.Command{
		Use:   "trace",
		Short: "Trace asymptotic paths from seed vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(Trace.Conf)
		},
	}
	Trace.EnvPrefix = "ASYMTRACE"

	flag := Trace.Cmd.Flags()
	flag.String("mesh", "", "Wavefront OBJ file to trace on.")
	flag.String("surface", "saddle",
		"Generated surface used when --mesh is empty, one of [saddle, plane, sphere].")
	flag.Int("resolution", 32, "Cells per side of a generated surface.")
	flag.IntSlice("seed", nil, "Seed vertex index. Repeat for several paths.")
	flag.String("seeds", "", "GeoJSON file of seed points, snapped to their nearest vertex.")
	flag.Int("steps", asymtrace.DefaultOptions.NumSteps, "Maximum points per trace direction.")
	flag.Float64("step_size", asymtrace.DefaultOptions.StepSize, "Length of each projected step.")
	flag.Int("neighbors", asymtrace.DefaultOptions.NumNeighbors,
		"Vertices averaged for the curvature frame.")
	flag.Float64("sampling", 0, "Arc length between sampled points. 0 disables sampling.")
	flag.Bool("second", false, "Trace the second asymptotic family.")
	flag.String("out", "", "Output GeoJSON file. Defaults to stdout.")
	flag.Int("parallel", 4, "Number of seeds traced concurrently.")
}

type conf interface {
	GetString(key string) string
	GetInt(key string) int
	GetIntSlice(key string) []int
	GetFloat64(key string) float64
	GetBool(key string) bool
}

func loadMesh(c conf) (*mesh.Mesh, error) {
	if path := c.GetString("mesh"); path != "" {
		glog.Infof("Reading mesh from %s", path)
		return mesh.ReadOBJFile(path)
	}

	n := c.GetInt("resolution")
	switch surface := c.GetString("surface"); surface {
	case "saddle":
		return makemesh.Saddle(n, n, 1)
	case "plane":
		return makemesh.Plane(n, n, 1)
	case "sphere":
		return makemesh.SphereCap(1, 1, n, 2*n)
	default:
		return nil, errors.Errorf("unknown surface %q", surface)
	}
}

func traceOptions(c conf) asymtrace.Options {
	return asymtrace.Options{
		NumSteps:                c.GetInt("steps"),
		StepSize:                c.GetFloat64("step_size"),
		FirstPrincipalDirection: !c.GetBool("second"),
		NumNeighbors:            c.GetInt("neighbors"),
		SamplingDist:            c.GetFloat64("sampling"),
	}
}

// seedVertices merges --seed indices with the vertices nearest the points of
// the --seeds file.
func seedVertices(c conf, m *mesh.Mesh) ([]int, error) {
	seeds := append([]int(nil), c.GetIntSlice("seed")...)

	if path := c.GetString("seeds"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "while opening seeds file %s", path)
		}
		defer f.Close()

		points, err := export.ReadSeedPoints(f)
		if err != nil {
			return nil, err
		}
		for _, p := range points {
			_, idx := m.ClosestVertices(p, 1)
			seeds = append(seeds, idx...)
		}
	}

	if len(seeds) == 0 {
		return nil, errors.New("no seeds given, use --seed or --seeds")
	}
	return seeds, nil
}

// traceAll traces every seed, at most parallel at a time. Results keep the
// order of seeds.
func traceAll(m asymtrace.Mesh, seeds []int, opts asymtrace.Options, parallel int) ([]*asymtrace.Curve, error) {
	if parallel < 1 {
		parallel = 1
	}

	curves := make([]*asymtrace.Curve, len(seeds))
	var g errgroup.Group
	g.SetLimit(parallel)

	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			curve, err := asymtrace.AsymptoticPath(m, seed, opts)
			if err != nil {
				return errors.Wrapf(err, "while tracing seed %d", seed)
			}
			curves[i] = curve
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return curves, nil
}

func writeCurves(w io.Writer, seeds []int, curves []*asymtrace.Curve) error {
	var features []*geojson.Feature
	for i, curve := range curves {
		features = append(features, export.Features(seeds[i], curve)...)
	}
	return export.WriteFeatureCollection(w, features)
}

func runTrace(c conf) error {
	m, err := loadMesh(c)
	if err != nil {
		return err
	}

	seeds, err := seedVertices(c, m)
	if err != nil {
		return err
	}

	opts := traceOptions(c)
	if err := opts.Validate(); err != nil {
		return err
	}

	glog.Infof("Tracing %d seeds on a mesh of %d vertices", len(seeds), m.NumVertices())
	curves, err := traceAll(m, seeds, opts, c.GetInt("parallel"))
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if path := c.GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "while creating %s", path)
		}
		defer f.Close()
		out = f
	}

	if err := writeCurves(out, seeds, curves); err != nil {
		return err
	}
	glog.Infof("Wrote %d paths", len(curves))
	return nil
}
