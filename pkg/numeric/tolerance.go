package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// RelTolerance is the relative bound used by Real and Complex equality
	RelTolerance = 1e-9
	// AbsTolerance is the absolute floor used near zero
	AbsTolerance = 1e-12
)

// withinTolerance reports whether diff is negligible next to scale,
// the larger magnitude of the two compared values.
func withinTolerance[F constraints.Float](diff, scale F) bool {
	if diff <= F(AbsTolerance) {
		return true
	}
	return diff <= F(RelTolerance)*scale
}

func floatsEqual(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return withinTolerance(math.Abs(a-b), math.Max(math.Abs(a), math.Abs(b)))
}
