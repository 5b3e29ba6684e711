package asymtrace

import "github.com/golang/glog"

// AsymptoticPath traces from a seed vertex in both directions and joins the
// walks: the forward walk without its seed, reversed, followed by the backward
// walk, which starts at the seed. Angles and samples are joined in the same
// order, so the seed appears exactly once.
func AsymptoticPath(m Mesh, seed int, opts Options) (*Curve, error) {
	forward, err := Trace(m, seed, opts, false)
	if err != nil {
		return nil, err
	}
	backward, err := Trace(m, seed, opts, true)
	if err != nil {
		return nil, err
	}

	curve := Join(forward, backward)

	glog.V(2).Infof("Asymptotic path from vertex %d: %d points, length %.4g",
		seed, len(curve.Path), curve.Path.Length())

	return curve, nil
}

// Join merges a forward and a backward walk that start at the same seed.
func Join(forward, backward *Walk) *Curve {
	fwdPath, fwdAngles := forward.Path, forward.Angles
	if len(fwdPath) > 0 {
		fwdPath = fwdPath[1:]
	}
	if len(fwdAngles) > 0 {
		fwdAngles = fwdAngles[1:]
	}

	curve := &Curve{
		Path:     append(fwdPath.Reversed(), backward.Path...),
		Angles:   append(fwdAngles.Reversed(), backward.Angles...),
		Samples:  append(forward.Samples.Reversed(), backward.Samples...),
		Forward:  forward.Termination,
		Backward: backward.Termination,
	}

	return curve
}
