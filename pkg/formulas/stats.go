// Package formulas provides the statistical primitives shared across the
// pipeline. All functions are pure and safe for concurrent use.
package formulas

import (
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of the values.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// StdDev calculates the sample standard deviation of the values.
// The sample form (n-1 divisor) is the convention the shipped models were
// calibrated against. Returns 0 for fewer than two values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// Variance calculates the sample variance of the values.
// Returns 0 for fewer than two values.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.Variance(values, nil)
}

// CoefficientOfVariation calculates the ratio of the sample standard
// deviation to the mean. Returns 0 for fewer than two values or a zero
// mean, where the ratio is undefined.
func CoefficientOfVariation(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := stat.Mean(values, nil)
	if mean == 0 {
		return 0
	}
	return stat.StdDev(values, nil) / mean
}
