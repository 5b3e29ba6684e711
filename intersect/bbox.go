package intersect

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// The zero value for BoundingBox is ready to use
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Adds a point to the bounding box, expanding the bounding box if the point is outside of it.
// If the bounding box is not initialized, this method has that side effect.
//
// **params**
// + A length-n array of numbers
//
// **returns**
// + This BoundingBox for chaining
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.initialized {
		this.Min = *point
		this.Max = *point
		this.initialized = true

		return this
	}

	for i, val := range point {
		if val > this.Max[i] {
			this.Max[i] = val
		}
		if val < this.Min[i] {
			this.Min[i] = val
		}
	}

	return this
}

// Squared distance from a point to the box, zero inside.
// An uninitialized box is infinitely far away.
func (this *BoundingBox) DistanceSquared(point *vec3.T) float64 {
	if !this.initialized {
		return math.Inf(1)
	}

	var d2 float64
	for i, val := range point {
		var d float64
		if val < this.Min[i] {
			d = this.Min[i] - val
		} else if val > this.Max[i] {
			d = val - this.Max[i]
		}
		d2 += d * d
	}

	return d2
}

// Get longest axis of bounding box
//
// **returns**
// + Index of longest axis
func (this *BoundingBox) LongestAxis() int {
	id, max := 0, 0.0

	for i := range this.Min {
		l := this.AxisLength(i)
		if l > max {
			max = l
			id = i
		}
	}

	return id
}

// Get length of given axis.
//
// **params**
// + Index of axis to inspect (between 0 and 2)
//
// **returns**
// + Length of the given axis.  If axis is out of bounds, returns 0.
func (this *BoundingBox) AxisLength(i int) float64 {
	if i < 0 || i > len(this.Min)-1 {
		return 0
	}
	return math.Abs(this.Min[i] - this.Max[i])
}
