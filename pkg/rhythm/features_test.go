package rhythm

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJavaPython/TelemetryHealthCare/pkg/healthkit"
)

func buildWindow(t *testing.T, rateValues []float64, varSamples []healthkit.Sample) healthkit.Window {
	t.Helper()
	end := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rateSamples := make([]healthkit.Sample, 0, len(rateValues))
	for i, v := range rateValues {
		at := end.Add(-time.Duration(len(rateValues)-i) * time.Minute)
		s, err := healthkit.NewSample(at, at.Add(time.Second), v, healthkit.UnitCountPerMin)
		require.NoError(t, err)
		rateSamples = append(rateSamples, s)
	}

	return healthkit.Window{
		Primary:   healthkit.NewSignalSeries(healthkit.SignalHeartRate, rateSamples),
		Secondary: healthkit.NewSignalSeries(healthkit.SignalVariability, varSamples),
		Start:     end.Add(-24 * time.Hour),
		End:       end,
	}
}

func varSample(t *testing.T, value float64, kind healthkit.MetricKind) healthkit.Sample {
	t.Helper()
	at := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	s, err := healthkit.NewVariabilitySample(at, at.Add(time.Minute), value, kind)
	require.NoError(t, err)
	return s
}

func TestFeatureExtractor_SummaryStatistics(t *testing.T) {
	extractor := NewFeatureExtractor(zerolog.Nop())
	window := buildWindow(t, []float64{60, 61, 62, 63, 64, 65, 66, 67, 68, 69}, nil)

	features, err := extractor.Extract(window)
	require.NoError(t, err)

	assert.InDelta(t, 64.5, features.MeanRate, 1e-9)
	// Sample standard deviation, not the population form.
	assert.InDelta(t, 3.0276503540974917, features.RateStdDev, 1e-12)
	assert.Equal(t, 10, features.SampleCountPrimary)
	assert.Equal(t, 0, features.SampleCountSecondary)
	assert.True(t, features.WindowEnd.Equal(window.End))
}

func TestFeatureExtractor_RMSSDCurve(t *testing.T) {
	extractor := NewFeatureExtractor(zerolog.Nop())
	window := buildWindow(t, constantSeries(12, 70), []healthkit.Sample{
		varSample(t, 40, healthkit.MetricRMSSD),
		varSample(t, 50, healthkit.MetricRMSSD),
		varSample(t, 120, healthkit.MetricSDNN), // must not affect the proxy
	})

	features, err := extractor.Extract(window)
	require.NoError(t, err)

	assert.Equal(t, EstimatorRMSSDCurve, features.Estimator)
	// (45/150)^1.5 over the RMSSD samples only.
	assert.InDelta(t, 0.16431676725154983, features.VariabilityProxy, 1e-12)
	assert.Equal(t, 3, features.SampleCountSecondary)
}

func TestFeatureExtractor_RateStdDevFallback(t *testing.T) {
	extractor := NewFeatureExtractor(zerolog.Nop())
	window := buildWindow(t, []float64{60, 61, 62, 63, 64, 65, 66, 67, 68, 69}, []healthkit.Sample{
		varSample(t, 55, healthkit.MetricSDNN), // no RMSSD in the window
	})

	features, err := extractor.Extract(window)
	require.NoError(t, err)

	assert.Equal(t, EstimatorRateStdDevCurve, features.Estimator)
	assert.InDelta(t, 3.0276503540974917/50.0, features.VariabilityProxy, 1e-12)
}

func TestFeatureExtractor_ProxyCeilings(t *testing.T) {
	extractor := NewFeatureExtractor(zerolog.Nop())

	// RMSSD curve saturates at 0.6.
	high := buildWindow(t, constantSeries(12, 70), []healthkit.Sample{
		varSample(t, 200, healthkit.MetricRMSSD),
	})
	features, err := extractor.Extract(high)
	require.NoError(t, err)
	assert.Equal(t, 0.6, features.VariabilityProxy)

	// Dispersion fallback saturates at 0.4.
	wild := make([]float64, 12)
	for i := range wild {
		if i%2 == 0 {
			wild[i] = 40
		} else {
			wild[i] = 240
		}
	}
	features, err = extractor.Extract(buildWindow(t, wild, nil))
	require.NoError(t, err)
	assert.Equal(t, 0.4, features.VariabilityProxy)
}

func TestFeatureExtractor_QualityMatchesScorer(t *testing.T) {
	extractor := NewFeatureExtractor(zerolog.Nop())
	rateValues := constantSeries(25, 72)
	window := buildWindow(t, rateValues, []healthkit.Sample{
		varSample(t, 45, healthkit.MetricRMSSD),
	})

	features, err := extractor.Extract(window)
	require.NoError(t, err)

	assert.Equal(t, ScoreQuality(rateValues, []float64{45}), features.DataQualityScore)
}

func TestFeatureExtractor_InsufficientWindow(t *testing.T) {
	extractor := NewFeatureExtractor(zerolog.Nop())
	window := buildWindow(t, constantSeries(9, 70), nil)

	_, err := extractor.Extract(window)
	require.Error(t, err)

	var insufficientErr *healthkit.InsufficientDataError
	require.True(t, errors.As(err, &insufficientErr))
	assert.Equal(t, 9, insufficientErr.Observed)
	assert.Equal(t, healthkit.MinPrimarySamples, insufficientErr.Required)
}

func TestFeatureVector_ValuesOrder(t *testing.T) {
	features := FeatureVector{MeanRate: 72, RateStdDev: 4.5, VariabilityProxy: 0.12}
	assert.Equal(t, []float64{72, 4.5, 0.12}, features.Values())
}
