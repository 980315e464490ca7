// Package nice rounds arbitrary reals to "nice" numbers: values with few
// significant decimal digits (multiples of 1, 2, or 5 times a power of ten)
// that look clean on an axis label.
package nice

import "math"

// RoundUp returns the smallest nice number r with x <= r, using the default
// tolerance of |x|/10.
func RoundUp(x float64) float64 {
	return RoundUpWithin(x, defaultTolerance(x))
}

// RoundUpWithin returns the smallest nice number r with x <= r <= x+tolerance.
// Rounding up means toward +Inf, so negative inputs round toward zero.
// A zero x is already nice; a non-positive tolerance leaves x unchanged
// because no rounding can stay within it.
func RoundUpWithin(x, tolerance float64) float64 {
	if x == 0 {
		return 0
	}
	if tolerance <= 0 {
		return x
	}
	quantum := startingQuantum(tolerance)
	divisor := 2.0
	for {
		result := math.Ceil(x/quantum) * quantum
		if result-x <= tolerance {
			return result
		}
		quantum /= divisor
		divisor = nextDivisor(divisor)
	}
}

// RoundDown returns the largest nice number r with r <= x, using the default
// tolerance of |x|/10.
func RoundDown(x float64) float64 {
	return RoundDownWithin(x, defaultTolerance(x))
}

// RoundDownWithin returns the largest nice number r with x-tolerance <= r <= x.
func RoundDownWithin(x, tolerance float64) float64 {
	if x == 0 {
		return 0
	}
	if tolerance <= 0 {
		return x
	}
	quantum := startingQuantum(tolerance)
	divisor := 2.0
	for {
		result := math.Floor(x/quantum) * quantum
		if x-result <= tolerance {
			return result
		}
		quantum /= divisor
		divisor = nextDivisor(divisor)
	}
}

// Round returns whichever of RoundDownWithin and RoundUpWithin lands closer
// to x, using the default tolerance of |x|/10. Ties keep the lower candidate.
func Round(x float64) float64 {
	return RoundWithin(x, defaultTolerance(x))
}

// RoundWithin returns the nice number within tolerance that is closest to x.
func RoundWithin(x, tolerance float64) float64 {
	return nearest(x, RoundDownWithin(x, tolerance), RoundUpWithin(x, tolerance))
}

func defaultTolerance(x float64) float64 {
	return math.Abs(x / 10)
}

// startingQuantum is the smallest power of ten at or above the tolerance.
// Candidates are then visited on the shrinking 1-2-5 sequence of quanta.
func startingQuantum(tolerance float64) float64 {
	return math.Pow(10, math.Ceil(math.Log10(tolerance)))
}

func nextDivisor(d float64) float64 {
	if d == 2 {
		return 5
	}
	return 2
}

func nearest(x, a, b float64) float64 {
	if math.Abs(b-x) < math.Abs(a-x) {
		return b
	}
	return a
}
