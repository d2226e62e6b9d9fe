package service

import "math"

// roundTo rounds v to the given number of decimal places. Purchase
// amounts are stored at 2 dp and gram weights at 4 dp, matching the
// precision the provider reports.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
