package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// CalculateSMA returns the latest simple moving average over the given
// period. When fewer values than the period are available it falls back to
// the plain mean, so short histories still yield a usable trend value.
// Returns nil for empty input or a non-positive period.
func CalculateSMA(values []float64, period int) *float64 {
	if len(values) == 0 || period < 1 {
		return nil
	}

	if len(values) < period {
		mean := Mean(values)
		return &mean
	}

	sma := talib.Sma(values, period)
	if len(sma) > 0 && !math.IsNaN(sma[len(sma)-1]) {
		result := sma[len(sma)-1]
		return &result
	}

	mean := Mean(values[len(values)-period:])
	return &mean
}

// CalculateEMA returns the latest exponential moving average over the given
// period, weighting recent values more heavily. Falls back the same way as
// CalculateSMA. Returns nil for empty input or a non-positive period.
func CalculateEMA(values []float64, period int) *float64 {
	if len(values) == 0 || period < 1 {
		return nil
	}

	if len(values) < period {
		mean := Mean(values)
		return &mean
	}

	ema := talib.Ema(values, period)
	if len(ema) > 0 && !math.IsNaN(ema[len(ema)-1]) {
		result := ema[len(ema)-1]
		return &result
	}

	mean := Mean(values[len(values)-period:])
	return &mean
}
