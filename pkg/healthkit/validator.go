package healthkit

import (
	"github.com/rs/zerolog"
)

// Physiologically plausible bounds per signal kind. Values outside the
// closed interval are dropped, not clamped.
const (
	MinHeartRateBPM  = 30.0  // below this is sensor noise, not bradycardia
	MaxHeartRateBPM  = 250.0 // above this is sensor noise, not tachycardia
	MinVariabilityMs = 1.0
	MaxVariabilityMs = 200.0
)

// Validator filters physiologically implausible samples and normalizes
// sample order. Stateless across calls.
type Validator struct {
	log zerolog.Logger
}

// NewValidator creates a sample validator.
func NewValidator(log zerolog.Logger) *Validator {
	return &Validator{
		log: log.With().Str("component", "sample_validator").Logger(),
	}
}

// Validate returns the samples within the plausible interval for the
// signal kind, sorted ascending by start time. An entirely empty input is
// an EmptyInputError; an input that filters down to nothing is not, so a
// later minimum-count check can tell "too few good samples" apart from
// "no samples at all".
func (v *Validator) Validate(samples []Sample, kind SignalKind) (SignalSeries, error) {
	if len(samples) == 0 {
		return SignalSeries{}, &EmptyInputError{Signal: kind}
	}

	kept := make([]Sample, 0, len(samples))
	for _, s := range samples {
		ok, reason := v.plausible(s, kind)
		if !ok {
			v.log.Debug().
				Str("signal", string(kind)).
				Float64("value", s.Value).
				Str("reason", reason).
				Msg("Dropping implausible sample")
			continue
		}
		kept = append(kept, s)
	}

	if removed := len(samples) - len(kept); removed > 0 {
		v.log.Warn().
			Str("signal", string(kind)).
			Int("removed", removed).
			Int("kept", len(kept)).
			Msg("Removed implausible samples")
	}

	return NewSignalSeries(kind, kept), nil
}

// plausible checks a sample against the bounds for its signal kind.
// Returns (false, reason) for values outside the closed interval.
func (v *Validator) plausible(s Sample, kind SignalKind) (bool, string) {
	min, max := MinHeartRateBPM, MaxHeartRateBPM
	if kind == SignalVariability {
		min, max = MinVariabilityMs, MaxVariabilityMs
	}

	if s.Value < min {
		return false, "below_minimum"
	}
	if s.Value > max {
		return false, "above_maximum"
	}
	return true, ""
}
