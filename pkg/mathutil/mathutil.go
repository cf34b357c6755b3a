// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/sip-forecast/pkg/constants"
)

// WithinRelativeTolerance checks if two values agree to within tolerance
// relative to the larger magnitude. Two zeros are always equal.
func WithinRelativeTolerance(val1, val2, tolerance float64) bool {
	if val1 == val2 {
		return true
	}
	scale := math.Max(math.Abs(val1), math.Abs(val2))
	return math.Abs(val1-val2) <= tolerance*scale
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}
