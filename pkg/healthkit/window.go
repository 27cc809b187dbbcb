package healthkit

import (
	"time"

	"github.com/rs/zerolog"
)

// MinPrimarySamples is the smallest number of heart rate samples a window
// must hold before inference is attempted.
const MinPrimarySamples = 10

// Window is the most recent fixed-duration slice of both signals. The
// boundaries are inclusive on both ends.
type Window struct {
	Primary   SignalSeries
	Secondary SignalSeries
	Start     time.Time
	End       time.Time
}

// Windower selects the most recent span of samples across both signals
// and enforces the minimum heart rate sample count. Stateless across
// calls.
type Windower struct {
	log zerolog.Logger
}

// NewWindower creates a windower.
func NewWindower(log zerolog.Logger) *Windower {
	return &Windower{
		log: log.With().Str("component", "windower").Logger(),
	}
}

// Window slices both series to [latest-length, latest], where latest is
// the greatest sample end time across both series. A sample belongs to the
// window when its start time falls inside the boundaries, inclusive. The
// resulting window must hold at least MinPrimarySamples heart rate
// samples, otherwise an InsufficientDataError is returned.
func (w *Windower) Window(primary, secondary SignalSeries, length time.Duration) (Window, error) {
	latest := latestEndTime(primary, secondary)
	start := latest.Add(-length)

	p := sliceWindow(primary, start, latest)
	s := sliceWindow(secondary, start, latest)

	if p.Len() < MinPrimarySamples {
		return Window{}, &InsufficientDataError{
			Observed:     p.Len(),
			Required:     MinPrimarySamples,
			WindowLength: length,
		}
	}

	w.log.Debug().
		Time("window_start", start).
		Time("window_end", latest).
		Int("primary_samples", p.Len()).
		Int("secondary_samples", s.Len()).
		Msg("Windowed signal series")

	return Window{Primary: p, Secondary: s, Start: start, End: latest}, nil
}

// latestEndTime finds the greatest sample end time across the series.
// Zero when every series is empty.
func latestEndTime(series ...SignalSeries) time.Time {
	var latest time.Time
	for _, sr := range series {
		for _, s := range sr.Samples {
			if s.EndTime.After(latest) {
				latest = s.EndTime
			}
		}
	}
	return latest
}

// sliceWindow keeps samples whose start time falls in [start, end].
func sliceWindow(series SignalSeries, start, end time.Time) SignalSeries {
	kept := make([]Sample, 0, len(series.Samples))
	for _, s := range series.Samples {
		if s.StartTime.Before(start) || s.StartTime.After(end) {
			continue
		}
		kept = append(kept, s)
	}
	return SignalSeries{Kind: series.Kind, Samples: kept}
}
