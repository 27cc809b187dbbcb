package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Mean([]float64{}))
	assert.Equal(t, 5.0, Mean([]float64{5}))
	assert.InDelta(t, 70.0, Mean([]float64{60, 70, 80}), 1e-9)
}

func TestStdDev_SampleForm(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{42}))

	// Sample standard deviation of 2 and 4 is sqrt(2), not 1.
	assert.InDelta(t, 1.4142135623730951, StdDev([]float64{2, 4}), 1e-12)

	// Ten consecutive integers: sample variance 82.5/9.
	values := []float64{60, 61, 62, 63, 64, 65, 66, 67, 68, 69}
	assert.InDelta(t, 3.0276503540974917, StdDev(values), 1e-12)
	assert.InDelta(t, 9.166666666666666, Variance(values), 1e-12)
}

func TestCoefficientOfVariation(t *testing.T) {
	assert.Equal(t, 0.0, CoefficientOfVariation(nil))
	assert.Equal(t, 0.0, CoefficientOfVariation([]float64{70}))
	assert.Equal(t, 0.0, CoefficientOfVariation([]float64{0, 0, 0}))

	values := []float64{60, 70, 80}
	expected := StdDev(values) / Mean(values)
	assert.InDelta(t, expected, CoefficientOfVariation(values), 1e-12)
}

func TestCalculateSMA(t *testing.T) {
	assert.Nil(t, CalculateSMA(nil, 5))
	assert.Nil(t, CalculateSMA([]float64{1, 2, 3}, 0))

	// Shorter than the period: plain mean fallback.
	short := CalculateSMA([]float64{70, 72, 74}, 5)
	require.NotNil(t, short)
	assert.InDelta(t, 72.0, *short, 1e-9)

	// Latest 3-period window of the sequence is 4, 5, 6.
	full := CalculateSMA([]float64{1, 2, 3, 4, 5, 6}, 3)
	require.NotNil(t, full)
	assert.InDelta(t, 5.0, *full, 1e-9)
}

func TestCalculateEMA(t *testing.T) {
	assert.Nil(t, CalculateEMA(nil, 5))

	// Shorter than the period: plain mean fallback.
	short := CalculateEMA([]float64{80, 82}, 5)
	require.NotNil(t, short)
	assert.InDelta(t, 81.0, *short, 1e-9)

	// A constant series has a constant EMA.
	constant := CalculateEMA([]float64{65, 65, 65, 65, 65, 65}, 3)
	require.NotNil(t, constant)
	assert.InDelta(t, 65.0, *constant, 1e-9)
}
