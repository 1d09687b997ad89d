package dashline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tolerance constants for approximate floating-point comparison.
// Two values compare equal when their difference does not exceed
// max(relTol*max(|a|,|b|), absTol): the relative term handles large
// magnitudes, the absolute term handles comparisons near zero.
const (
	absTol = 1e-12
	relTol = 1e-9
)

// isClose reports whether a and b are equal within the combined
// relative/absolute tolerance.
func isClose(a, b float64) bool {
	return math.Abs(a-b) <= math.Max(relTol*math.Max(math.Abs(a), math.Abs(b)), absTol)
}

// vecIsClose reports whether the points a and b coincide within tolerance.
// The comparison is on the magnitude of the difference vector, scaled
// against the larger of the two input magnitudes.
func vecIsClose(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() <= math.Max(relTol*math.Max(a.Len(), b.Len()), absTol)
}
