// Package mathutil holds float guards shared by the curve and matching code.
package mathutil

import "math"

// NearlyZeroTolerance is the default tolerance used by IsNearlyZero.
const NearlyZeroTolerance = 1e-8

// ClampFloat clamps v to [min, max].
func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// IsNearlyZero reports whether |v| is within NearlyZeroTolerance.
func IsNearlyZero(v float64) bool {
	return math.Abs(v) <= NearlyZeroTolerance
}

// SafeDiv returns num/den, or 0 when den is zero.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// WrapFloat wraps v into [min, max) using fmod on the span.
// A span <= 0 has no well-defined wrap, so v is returned unchanged.
func WrapFloat(v, min, max float64) float64 {
	span := max - min
	if span <= 0 {
		return v
	}
	r := math.Mod(v-min, span)
	if r < 0 {
		r += span
	}
	return min + r
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
