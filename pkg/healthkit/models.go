// Package healthkit models raw physiological samples exported from a
// wearable health store and prepares them for feature extraction: type
// normalization, plausibility filtering, and time windowing.
package healthkit

import (
	"fmt"
	"sort"
	"time"
)

// Unit identifies the measurement unit of a sample value.
type Unit string

const (
	// UnitCountPerMin is beats per minute, used by heart rate samples.
	UnitCountPerMin Unit = "count/min"
	// UnitMillisecond is used by heart rate variability samples.
	UnitMillisecond Unit = "ms"
)

// MetricKind distinguishes the variability metric a sample carries.
type MetricKind string

const (
	MetricSDNN  MetricKind = "SDNN"
	MetricRMSSD MetricKind = "RMSSD"
)

// SignalKind identifies which physiological signal a series belongs to.
type SignalKind string

const (
	SignalHeartRate   SignalKind = "heart_rate"
	SignalVariability SignalKind = "heart_rate_variability"
)

// Sample is one physiological reading covering the span from StartTime to
// EndTime. Heart rate samples use UnitCountPerMin and leave MetricKind
// empty; variability samples use UnitMillisecond and carry the metric kind.
type Sample struct {
	StartTime  time.Time
	EndTime    time.Time
	Value      float64
	Unit       Unit
	MetricKind MetricKind
}

// NewSample builds a heart rate sample. The end time must not precede the
// start time.
func NewSample(start, end time.Time, value float64, unit Unit) (Sample, error) {
	if end.Before(start) {
		return Sample{}, fmt.Errorf("sample end time %s precedes start time %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return Sample{StartTime: start, EndTime: end, Value: value, Unit: unit}, nil
}

// NewVariabilitySample builds a variability sample carrying its metric kind.
func NewVariabilitySample(start, end time.Time, value float64, kind MetricKind) (Sample, error) {
	s, err := NewSample(start, end, value, UnitMillisecond)
	if err != nil {
		return Sample{}, err
	}
	s.MetricKind = kind
	return s, nil
}

// SignalSeries is a run of samples of one signal kind, ordered ascending
// by start time.
type SignalSeries struct {
	Kind    SignalKind
	Samples []Sample
}

// NewSignalSeries copies the samples and sorts them ascending by start
// time. The input slice is not modified.
func NewSignalSeries(kind SignalKind, samples []Sample) SignalSeries {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return SignalSeries{Kind: kind, Samples: sorted}
}

// Values extracts the numeric values in series order.
func (s SignalSeries) Values() []float64 {
	values := make([]float64, len(s.Samples))
	for i, sample := range s.Samples {
		values[i] = sample.Value
	}
	return values
}

// Len returns the number of samples in the series.
func (s SignalSeries) Len() int {
	return len(s.Samples)
}
