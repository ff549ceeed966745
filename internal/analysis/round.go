package analysis

import "math"

// Rounding happens once, when a profile is assembled. Intermediate
// computations stay at full precision so chained derivations don't compound
// rounding error.

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
