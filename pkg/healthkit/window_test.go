package healthkit

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rateSeries builds n in-order heart rate samples spaced one minute apart,
// ending at the given time.
func rateSeries(t *testing.T, end time.Time, n int, value float64) []Sample {
	t.Helper()
	samples := make([]Sample, 0, n)
	for i := n - 1; i >= 0; i-- {
		samples = append(samples, rateSample(t, end.Add(-time.Duration(i)*time.Minute), value))
	}
	return samples
}

func TestWindower_AnchorsOnLatestEndTime(t *testing.T) {
	windower := NewWindower(zerolog.Nop())
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	samples := rateSeries(t, base, 10, 72)
	// One long sample starts early but ends well after every other sample.
	long, err := NewSample(base.Add(-30*time.Minute), base.Add(2*time.Hour), 75, UnitCountPerMin)
	require.NoError(t, err)
	samples = append(samples, long)

	window, err := windower.Window(NewSignalSeries(SignalHeartRate, samples), SignalSeries{Kind: SignalVariability}, 24*time.Hour)
	require.NoError(t, err)

	assert.True(t, window.End.Equal(base.Add(2*time.Hour)))
	assert.True(t, window.Start.Equal(base.Add(2*time.Hour).Add(-24*time.Hour)))
	assert.Equal(t, 11, window.Primary.Len())
}

func TestWindower_InclusiveBoundaries(t *testing.T) {
	windower := NewWindower(zerolog.Nop())
	latest := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	length := 2 * time.Hour

	// rateSample spans one second, so the window anchors one second after
	// the newest start time.
	anchor := latest.Add(time.Second)
	windowStart := anchor.Add(-length)

	samples := rateSeries(t, latest, 9, 72)
	samples = append(samples,
		rateSample(t, windowStart, 75),                       // exactly on the lower boundary
		rateSample(t, windowStart.Add(-time.Nanosecond), 90), // just before it
	)

	window, err := windower.Window(NewSignalSeries(SignalHeartRate, samples), SignalSeries{Kind: SignalVariability}, length)
	require.NoError(t, err)

	assert.True(t, window.Start.Equal(windowStart))
	assert.True(t, window.End.Equal(anchor))
	assert.Equal(t, 10, window.Primary.Len())
	assert.Contains(t, window.Primary.Values(), 75.0)
	assert.NotContains(t, window.Primary.Values(), 90.0)
}

func TestWindower_InsufficientSamples(t *testing.T) {
	windower := NewWindower(zerolog.Nop())
	latest := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	samples := rateSeries(t, latest, 8, 70)

	_, err := windower.Window(NewSignalSeries(SignalHeartRate, samples), SignalSeries{Kind: SignalVariability}, 24*time.Hour)
	require.Error(t, err)

	var insufficientErr *InsufficientDataError
	require.True(t, errors.As(err, &insufficientErr))
	assert.Equal(t, 8, insufficientErr.Observed)
	assert.Equal(t, MinPrimarySamples, insufficientErr.Required)
	assert.Equal(t, 24*time.Hour, insufficientErr.WindowLength)
}

func TestWindower_EmptySeries(t *testing.T) {
	windower := NewWindower(zerolog.Nop())

	_, err := windower.Window(SignalSeries{Kind: SignalHeartRate}, SignalSeries{Kind: SignalVariability}, 24*time.Hour)
	require.Error(t, err)

	var insufficientErr *InsufficientDataError
	require.True(t, errors.As(err, &insufficientErr))
	assert.Equal(t, 0, insufficientErr.Observed)
}

func TestWindower_SlicesSecondarySeries(t *testing.T) {
	windower := NewWindower(zerolog.Nop())
	latest := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	length := 24 * time.Hour

	primary := NewSignalSeries(SignalHeartRate, rateSeries(t, latest, 12, 72))
	secondary := NewSignalSeries(SignalVariability, []Sample{
		variabilitySample(t, latest.Add(-time.Hour), 45, MetricRMSSD),
		variabilitySample(t, latest.Add(-25*time.Hour), 50, MetricRMSSD), // outside the window
	})

	window, err := windower.Window(primary, secondary, length)
	require.NoError(t, err)

	assert.Equal(t, 1, window.Secondary.Len())
	assert.Equal(t, []float64{45}, window.Secondary.Values())
}
