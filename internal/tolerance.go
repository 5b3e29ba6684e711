package internal

const (
	// Epsilon is the distance below which two points are considered coincident.
	Epsilon = 1e-6

	// Tolerance guards divisions by lengths and determinants.
	Tolerance = 1e-12
)
