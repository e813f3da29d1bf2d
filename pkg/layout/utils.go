package layout

import "math"

// MinCompressedLength is the smallest main-axis length a stack compresses a
// non-stretching child to when its children overflow the bound.
const MinCompressedLength = 20.0

// nonNegative clamps v to [0, +Inf). NaN becomes 0.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// clamp restricts v to [lo, hi]. If lo > hi, lo wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
