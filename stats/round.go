package stats

import "math"

// RoundTo rounds v to the given number of decimals, halves away from
// zero.
func RoundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

// Round2 rounds to 2 decimals, the usual presentation for percentages.
func Round2(v float64) float64 {
	return RoundTo(v, 2)
}

// Round4 rounds to 4 decimals, the usual presentation for ratios.
func Round4(v float64) float64 {
	return RoundTo(v, 4)
}
