package scoring

import "math"

// Round2 rounds half-up to two decimal places. The intermediate rounding to
// 1e-6 absorbs binary representation error so 2.675 becomes 2.68.
func Round2(x float64) float64 {
	scaled := math.Round(x*100*1e6) / 1e6
	return math.Floor(scaled+0.5) / 100
}

// Clamp limits x to [0,100].
func Clamp(x float64) float64 {
	return math.Max(0, math.Min(100, x))
}

// Cents converts a two-decimal score to integer hundredths for exact comparison.
func Cents(x float64) int64 {
	return int64(math.Round(x * 100))
}
