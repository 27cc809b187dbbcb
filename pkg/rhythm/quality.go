// Package rhythm derives the model-input features for rhythm
// classification from windowed signal series: summary statistics, a
// variability proxy, and a data quality score.
package rhythm

import (
	"math"

	"github.com/LeJavaPython/TelemetryHealthCare/pkg/formulas"
)

// ============================================================================
// DATA QUALITY SCORING
// ============================================================================

// Quality score contributions. Each dimension is independent and capped;
// the total is clamped to 1.0.
const (
	// Heart rate sample adequacy
	rateCountGood            = 50
	rateCountAcceptable      = 20
	rateCountGoodScore       = 0.4
	rateCountAcceptableScore = 0.2

	// Variability sample availability
	variabilityCountGood      = 5
	variabilityCountGoodScore = 0.3
	variabilityCountAnyScore  = 0.1

	// Heart rate stability, measured as coefficient of variation
	stabilityCVLow      = 0.3
	stabilityCVMid      = 0.5
	stabilityLowCVScore = 0.3
	stabilityMidCVScore = 0.1
)

// ScoreQuality rates how trustworthy a window of samples is, on a 0 to 1
// scale. Three dimensions contribute: heart rate sample count, variability
// sample availability, and heart rate stability. The stability dimension
// needs at least two heart rate values, since the coefficient of variation
// is undefined for fewer. More samples or a steadier signal never lower
// the score.
func ScoreQuality(heartRate, variability []float64) float64 {
	score := 0.0

	if len(heartRate) >= rateCountGood {
		score += rateCountGoodScore
	} else if len(heartRate) >= rateCountAcceptable {
		score += rateCountAcceptableScore
	}

	if len(variability) >= variabilityCountGood {
		score += variabilityCountGoodScore
	} else if len(variability) >= 1 {
		score += variabilityCountAnyScore
	}

	if len(heartRate) > 1 {
		cv := formulas.CoefficientOfVariation(heartRate)
		if cv < stabilityCVLow {
			score += stabilityLowCVScore
		} else if cv < stabilityCVMid {
			score += stabilityMidCVScore
		}
	}

	return math.Min(1.0, score)
}
